package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply(t *testing.T) {
	reply, err := parseReply(`{"intent": "room_booking", "confidence": 0.9}`)
	require.NoError(t, err)
	assert.Equal(t, "room_booking", reply.Intent)
	assert.Equal(t, 0.9, reply.Confidence)
}

func TestParseReplyTrimsSurroundingProse(t *testing.T) {
	reply, err := parseReply("Sure, here is the classification:\n" +
		`{"intent": "greeting", "confidence": 0.8}` + "\nLet me know if you need more.")
	require.NoError(t, err)
	assert.Equal(t, "greeting", reply.Intent)
}

func TestParseReplyRejectsGarbage(t *testing.T) {
	_, err := parseReply("no json here")
	assert.Error(t, err)

	_, err = parseReply(`{"confidence": 0.8}`)
	assert.Error(t, err)

	_, err = parseReply(`{"intent": `)
	assert.Error(t, err)
}
