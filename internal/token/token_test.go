package token

import (
	"errors"
	"testing"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip_AllActions(t *testing.T) {
	goalID := uuid.New().String()
	actions := []Action{
		ActionIncrement, ActionDecrement, ActionSetCount,
		ActionDeleteRequest, ActionConfirmDelete, ActionCancelDelete,
	}
	for _, a := range actions {
		t.Run(string(a), func(t *testing.T) {
			tok := Token{Action: a, ChatID: 42, MessageID: 1337, GoalID: goalID}
			decoded, err := Decode(tok.Encode())
			require.NoError(t, err)
			assert.Equal(t, tok, decoded)
		})
	}
}

func TestEncode_WireFormat(t *testing.T) {
	goalID := "a81bc81b-dead-4e5d-abff-90865d1e13b1"
	tok := Token{Action: ActionIncrement, ChatID: 7, MessageID: 21, GoalID: goalID}
	assert.Equal(t, "+_7_21_"+goalID, tok.Encode())
}

func TestDecode_Malformed(t *testing.T) {
	goalID := uuid.New().String()
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"missing field", "+_7_" + goalID},
		{"extra field", "+_7_21_9_" + goalID},
		{"unknown marker", "z_7_21_" + goalID},
		{"non-numeric chat id", "+_seven_21_" + goalID},
		{"non-numeric message id", "+_7_twenty_" + goalID},
		{"invalid goal id", "+_7_21_not-a-goal-id"},
		{"foreign payload", "hello world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedToken), "want ErrMalformedToken, got %v", err)
		})
	}
}

func TestDecode_NegativeIDs(t *testing.T) {
	// Group chats on some platforms use negative chat ids.
	goalID := uuid.New().String()
	tok := Token{Action: ActionCancelDelete, ChatID: -100500, MessageID: 3, GoalID: goalID}
	decoded, err := Decode(tok.Encode())
	require.NoError(t, err)
	assert.Equal(t, int64(-100500), decoded.ChatID)
}
