package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosNun/displayreset/internal/errors"
)

func TestWriteJSONSuccess_BasicData(t *testing.T) {
	var buf bytes.Buffer

	data := map[string]string{"key": "value"}
	err := WriteJSONSuccess(&buf, data)
	require.NoError(t, err)

	var env JSONEnvelope
	err = json.Unmarshal(buf.Bytes(), &env)
	require.NoError(t, err)

	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.NotNil(t, env.Data)

	dataMap, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "value", dataMap["key"])
}

func TestWriteJSONSuccess_NilData(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSONSuccess(&buf, nil)
	require.NoError(t, err)

	var env JSONEnvelope
	err = json.Unmarshal(buf.Bytes(), &env)
	require.NoError(t, err)

	assert.True(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Nil(t, env.Error)
}

func TestWriteJSONOutcome_Failure(t *testing.T) {
	var buf bytes.Buffer

	data := struct {
		Message string `json:"message"`
	}{Message: "power cycle failed"}

	err := WriteJSONOutcome(&buf, false, data)
	require.NoError(t, err)

	var env JSONEnvelope
	err = json.Unmarshal(buf.Bytes(), &env)
	require.NoError(t, err)

	assert.False(t, env.Success)
	dataMap, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "power cycle failed", dataMap["message"])
}

func TestWriteJSONFromError_GenericError(t *testing.T) {
	var buf bytes.Buffer

	goErr := fmt.Errorf("something went wrong")
	err := WriteJSONFromError(&buf, goErr)
	require.NoError(t, err)

	var env JSONEnvelope
	err = json.Unmarshal(buf.Bytes(), &env)
	require.NoError(t, err)

	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeUnknown, env.Error.Code)
	assert.Equal(t, "something went wrong", env.Error.Message)
}

func TestWriteJSONFromError_StructuredError(t *testing.T) {
	var buf bytes.Buffer

	drErr := errors.New(errors.ErrDisplay, "Display 'HDMI-5' not found", "Run 'displayreset list' to see available displays")
	err := WriteJSONFromError(&buf, drErr)
	require.NoError(t, err)

	var env JSONEnvelope
	err = json.Unmarshal(buf.Bytes(), &env)
	require.NoError(t, err)

	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeDisplayNotFound, env.Error.Code)
	assert.Equal(t, "Display 'HDMI-5' not found", env.Error.Message)
	assert.Equal(t, "Run 'displayreset list' to see available displays", env.Error.Suggestion)
}

func TestErrorToJSON_NilError(t *testing.T) {
	assert.Nil(t, ErrorToJSON(nil))
}

func TestMapErrorCode(t *testing.T) {
	tests := []struct {
		internal string
		want     string
	}{
		{errors.ErrConfig, ErrCodeConfigInvalid},
		{errors.ErrDisplay, ErrCodeDisplayNotFound},
		{errors.ErrProbe, ErrCodeProbeFailed},
		{errors.ErrTool, ErrCodeToolMissing},
		{errors.ErrTxn, ErrCodeTxnFailed},
		{errors.ErrExec, ErrCodeExecFailed},
		{"BOGUS", ErrCodeUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mapErrorCode(tt.internal), "code %s", tt.internal)
	}
}
