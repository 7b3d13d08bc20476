// Package token implements the compact action-identifier protocol carried
// by inline controls. The wire format is four fields joined by underscores:
//
//	<marker>_<chatID>_<messageID>_<goalID>
//
// Goal ids are UUIDs, whose alphabet is disjoint from the delimiter, so a
// valid token always splits into exactly four fields.
package token

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/google/uuid"
)

type Action string

const (
	ActionIncrement     Action = "+"
	ActionDecrement     Action = "-"
	ActionSetCount      Action = "="
	ActionDeleteRequest Action = "x"
	ActionConfirmDelete Action = "y"
	ActionCancelDelete  Action = "n"
)

const delimiter = "_"

var validActions = map[Action]bool{
	ActionIncrement:     true,
	ActionDecrement:     true,
	ActionSetCount:      true,
	ActionDeleteRequest: true,
	ActionConfirmDelete: true,
	ActionCancelDelete:  true,
}

// Token addresses an action, the message it originated from, and the goal
// it targets. It is decoded at the boundary and never persisted.
type Token struct {
	Action    Action
	ChatID    int64
	MessageID int64
	GoalID    string
}

// Encode serializes the token into its wire form.
func (t Token) Encode() string {
	return strings.Join([]string{
		string(t.Action),
		strconv.FormatInt(t.ChatID, 10),
		strconv.FormatInt(t.MessageID, 10),
		t.GoalID,
	}, delimiter)
}

// Decode parses a wire-form token. Any structural problem (wrong field
// count, unknown marker, non-numeric chat or message id, syntactically
// invalid goal id) wraps domain.ErrMalformedToken.
func Decode(s string) (Token, error) {
	parts := strings.Split(s, delimiter)
	if len(parts) != 4 {
		return Token{}, fmt.Errorf("%w: expected 4 fields, got %d", domain.ErrMalformedToken, len(parts))
	}

	action := Action(parts[0])
	if !validActions[action] {
		return Token{}, fmt.Errorf("%w: unknown action marker %q", domain.ErrMalformedToken, parts[0])
	}

	chatID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Token{}, fmt.Errorf("%w: chat id %q is not numeric", domain.ErrMalformedToken, parts[1])
	}
	messageID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Token{}, fmt.Errorf("%w: message id %q is not numeric", domain.ErrMalformedToken, parts[2])
	}
	if _, err := uuid.Parse(parts[3]); err != nil {
		return Token{}, fmt.Errorf("%w: goal id %q is not a valid identifier", domain.ErrMalformedToken, parts[3])
	}

	return Token{
		Action:    action,
		ChatID:    chatID,
		MessageID: messageID,
		GoalID:    parts[3],
	}, nil
}
