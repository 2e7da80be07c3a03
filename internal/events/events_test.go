package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	b, err := encode(SkillsUpdated{UserID: "u1", FileURL: "/uploads/x.pdf", At: at})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "u1", got["user_id"])
	assert.Equal(t, []any{}, got["skills"])
	assert.Equal(t, "2025-01-02T03:04:05Z", got["at"])
}

func TestEncode_StampsTime(t *testing.T) {
	b, err := encode(SkillsUpdated{UserID: "u1"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"at":"0001-01-01T00:00:00Z"`)
}
