package engine

import (
	"github.com/alexanderramin/stride/internal/token"
	"github.com/alexanderramin/stride/internal/transport"
)

// goalKeyboard builds the four-button control row for a goal card. Every
// button re-encodes the card's own message id, since edits replace the card
// in place rather than sending a new message.
func goalKeyboard(chatID, messageID int64, goalID string) []transport.Button {
	mk := func(a token.Action, label string) transport.Button {
		return transport.Button{
			Label: label,
			Data:  token.Token{Action: a, ChatID: chatID, MessageID: messageID, GoalID: goalID}.Encode(),
		}
	}
	return []transport.Button{
		mk(token.ActionDecrement, "-"),
		mk(token.ActionSetCount, "🔢"),
		mk(token.ActionDeleteRequest, "🗑️"),
		mk(token.ActionIncrement, "+"),
	}
}

// confirmKeyboard builds the confirm/cancel row for a deletion prompt.
// cardMessageID is the id of the original goal card so confirmation can
// remove it.
func confirmKeyboard(chatID, cardMessageID int64, goalID string) []transport.Button {
	mk := func(a token.Action, label string) transport.Button {
		return transport.Button{
			Label: label,
			Data:  token.Token{Action: a, ChatID: chatID, MessageID: cardMessageID, GoalID: goalID}.Encode(),
		}
	}
	return []transport.Button{
		mk(token.ActionConfirmDelete, "👍"),
		mk(token.ActionCancelDelete, "👎"),
	}
}
