// Package transport defines the chat-platform contract the dialog engine
// speaks. Implementations are thin collaborators: the terminal adapter in
// this package for local use, or a real chat-platform binding.
package transport

import "context"

// Button is one inline control attached to a message. Data carries the
// encoded action token.
type Button struct {
	Label string
	Data  string
}

// TextEvent is an inbound free-text message.
type TextEvent struct {
	ChatID    int64
	UserID    int64
	MessageID int64
	Text      string
}

// ActionEvent is an inbound tap on an inline control. MessageID identifies
// the message the tapped control was attached to; ActionID is the transport
// handle used to acknowledge the tap.
type ActionEvent struct {
	ChatID    int64
	UserID    int64
	MessageID int64
	ActionID  string
	Data      string
}

// Transport sends, edits and deletes chat messages. DeleteMessage is
// fallible-but-ignorable: callers routinely swallow its error because the
// message may already be gone.
type Transport interface {
	SendMessage(ctx context.Context, chatID int64, text string, buttons []Button) (int64, error)
	EditMessageText(ctx context.Context, chatID, messageID int64, text string, buttons []Button) error
	DeleteMessage(ctx context.Context, chatID, messageID int64) error
	AnswerAction(ctx context.Context, actionID, notice string) error
}
