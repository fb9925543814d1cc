package display

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosNun/displayreset/internal/logger"
)

// fakeProvider returns canned records or an error.
type fakeProvider struct {
	records []Record
	err     error
}

func (f *fakeProvider) ListDisplays() ([]Record, error) {
	return f.records, f.err
}

func TestListDisplays_EmptyOnProviderFailure(t *testing.T) {
	buf := logger.NewBufferLogger()
	inv := NewInventory(&fakeProvider{err: errors.New("cannot open display")}, buf)

	records := inv.ListDisplays()

	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.True(t, buf.HasLevel("error"))
}

func TestListDisplays_GenericNameFallback(t *testing.T) {
	inv := NewInventory(&fakeProvider{records: []Record{
		{ID: 1, IsBuiltIn: true},
		{ID: 2, IsMain: true},
		{ID: 3},
		{ID: 4, Name: "DP-1"},
	}}, logger.Noop())

	records := inv.ListDisplays()
	require.Len(t, records, 4)
	assert.Equal(t, "Built-in Display", records[0].Name)
	assert.Equal(t, "Main Display", records[1].Name)
	assert.Equal(t, "External Display", records[2].Name)
	assert.Equal(t, "DP-1", records[3].Name)
}

func TestListDisplays_AssignsDDCNumbersToExternalsOnly(t *testing.T) {
	inv := NewInventory(&fakeProvider{records: []Record{
		{ID: 1, Name: "eDP-1", IsBuiltIn: true},
		{ID: 2, Name: "DP-1"},
		{ID: 3, Name: "HDMI-1"},
	}}, logger.Noop())

	records := inv.ListDisplays()
	require.Len(t, records, 3)
	assert.Equal(t, 0, records[0].DDCNumber)
	assert.Equal(t, 1, records[1].DDCNumber)
	assert.Equal(t, 2, records[2].DDCNumber)
}

func TestFind_ByID(t *testing.T) {
	inv := NewInventory(&fakeProvider{records: []Record{
		{ID: 68, Name: "eDP-1", IsBuiltIn: true},
		{ID: 71, Name: "DP-1"},
	}}, logger.Noop())

	rec, err := inv.Find("71")
	require.NoError(t, err)
	assert.Equal(t, "DP-1", rec.Name)
}

func TestFind_ByNameCaseInsensitive(t *testing.T) {
	inv := NewInventory(&fakeProvider{records: []Record{
		{ID: 68, Name: "eDP-1", IsBuiltIn: true},
		{ID: 71, Name: "DP-1"},
	}}, logger.Noop())

	rec, err := inv.Find("dp-1")
	require.NoError(t, err)
	assert.Equal(t, ID(71), rec.ID)
}

func TestFind_ByListPosition(t *testing.T) {
	inv := NewInventory(&fakeProvider{records: []Record{
		{ID: 68, Name: "eDP-1", IsBuiltIn: true},
		{ID: 71, Name: "DP-1"},
	}}, logger.Noop())

	// "2" is not a display ID here, so it falls through to position.
	rec, err := inv.Find("2")
	require.NoError(t, err)
	assert.Equal(t, ID(71), rec.ID)
}

func TestFind_UnknownIdentifier(t *testing.T) {
	inv := NewInventory(&fakeProvider{records: []Record{
		{ID: 68, Name: "eDP-1", IsBuiltIn: true},
	}}, logger.Noop())

	_, err := inv.Find("HDMI-9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFind_EmptyIdentifier(t *testing.T) {
	inv := NewInventory(&fakeProvider{records: []Record{{ID: 1}}}, logger.Noop())

	_, err := inv.Find("  ")
	require.Error(t, err)
}

func TestFind_NoDisplays(t *testing.T) {
	inv := NewInventory(&fakeProvider{}, logger.Noop())

	_, err := inv.Find("1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No active displays")
}

func TestParseMethod(t *testing.T) {
	for _, valid := range []string{"auto", "DDC", " refresh ", "resolution", "Soft"} {
		m, err := ParseMethod(valid)
		require.NoError(t, err, valid)
		assert.NotEmpty(t, m)
	}

	_, err := ParseMethod("power-cycle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown method")
}
