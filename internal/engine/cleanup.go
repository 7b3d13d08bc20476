package engine

import (
	"context"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/transport"
	"go.uber.org/zap"
)

// CleanupTracker maintains the per-session range of scratch messages
// (prompts, echoes, superseded goal cards) to purge when the next flow
// starts. Purging is best effort: a message that is already gone is not an
// error, and the loop continues for the remaining ids.
type CleanupTracker struct {
	chat transport.Transport
	log  *zap.Logger
}

func NewCleanupTracker(chat transport.Transport, log *zap.Logger) *CleanupTracker {
	return &CleanupTracker{chat: chat, log: log}
}

// Begin starts a fresh range [from, from) on the session, replacing any
// previous one. Callers purge the previous range first.
func (t *CleanupTracker) Begin(sess *domain.ConversationSession, from int64) {
	sess.PendingDelete = &domain.MessageRange{From: from, To: from}
}

// Extend grows the open end of the range. The range only ever grows; an
// older bound never shrinks it.
func (t *CleanupTracker) Extend(sess *domain.ConversationSession, to int64) {
	if sess.PendingDelete == nil {
		return
	}
	if to > sess.PendingDelete.To {
		sess.PendingDelete.To = to
	}
}

// Purge deletes every message in the session's pending range and clears it.
// Delete failures are logged at debug and swallowed.
func (t *CleanupTracker) Purge(ctx context.Context, chatID int64, sess *domain.ConversationSession) {
	rng := sess.PendingDelete
	if rng == nil {
		return
	}
	for id := rng.From; id < rng.To; id++ {
		if err := t.chat.DeleteMessage(ctx, chatID, id); err != nil {
			t.log.Debug("skipping message that could not be deleted",
				zap.Int64("chat_id", chatID),
				zap.Int64("message_id", id),
				zap.Error(err))
		}
	}
	sess.PendingDelete = nil
}
