package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2025, 6, 15, 10, 30, 0, 123456789, time.UTC)
	id := "a2f1c9e0-1111-2222-3333-444455556666"

	token := EncodeCursor(createdAt, id)
	require.NotEmpty(t, token)

	gotTime, gotID, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime), "decoded time should equal original")
	assert.Equal(t, id, gotID)
}

func TestDecodeCursor_PreservesNanosecondPrecision(t *testing.T) {
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 987654321, time.UTC)

	token := EncodeCursor(createdAt, "row-1")
	gotTime, _, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, createdAt.Nanosecond(), gotTime.Nanosecond())
}

func TestDecodeCursor_IDContainingSeparator(t *testing.T) {
	createdAt := time.Now().UTC()
	id := "odd|id|with|pipes"

	token := EncodeCursor(createdAt, id)
	_, gotID, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
}

func TestDecodeCursor_InvalidBase64(t *testing.T) {
	_, _, err := DecodeCursor("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeCursor_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2025-06-15T10:30:00Z"))
	_, _, err := DecodeCursor(token)
	assert.Error(t, err)
}

func TestDecodeCursor_BadTimestamp(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|some-id"))
	_, _, err := DecodeCursor(token)
	assert.Error(t, err)
}

func TestDecodeCursor_EmptyID(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte(time.Now().Format(time.RFC3339Nano) + "|"))
	_, _, err := DecodeCursor(token)
	assert.Error(t, err)
}
