package qr

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolPayload(t *testing.T) {
	assert.Equal(t, "TOOL:abc-123", ToolPayload("abc-123"))
}

func TestDataURI(t *testing.T) {
	uri, err := DataURI(ToolPayload("3f9a2c1e-0000-0000-0000-000000000000"))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)

	// PNG magic bytes.
	require.GreaterOrEqual(t, len(raw), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

func TestDataURI_EmptyPayload(t *testing.T) {
	_, err := DataURI("")
	assert.Error(t, err)
}
