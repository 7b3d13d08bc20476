package domain

import "time"

type FlowState string

const (
	StateDefault               FlowState = "default"
	StateAwaitingName          FlowState = "awaiting_name"
	StateAwaitingTarget        FlowState = "awaiting_target"
	StateAwaitingDeadline      FlowState = "awaiting_deadline"
	StateAwaitingPriority      FlowState = "awaiting_priority"
	StateAwaitingCount         FlowState = "awaiting_count"
	StateAwaitingDeleteConfirm FlowState = "awaiting_delete_confirm"
)

// GoalDraft holds the partially collected creation fields while the
// creation flow is in progress.
type GoalDraft struct {
	Name     string
	Target   int
	Deadline time.Time
	Priority int
}

// MessageRange is a half-open range [From, To) of transport message ids
// scheduled for best-effort deletion when the next flow starts.
type MessageRange struct {
	From int64
	To   int64
}

// ConversationSession is the per-chat ephemeral state of the dialog engine.
// It is created lazily on first interaction and reset, never destroyed, when
// a flow completes or a new one begins.
type ConversationSession struct {
	State         FlowState
	Draft         GoalDraft
	PendingDelete *MessageRange

	// Set-count sub-flow bookkeeping: the targeted goal, the card message
	// to re-render, and the one live prompt to replace on re-prompt.
	ActiveGoalID    string
	ActiveMessageID int64
	CountPromptID   int64
}

// NewSession returns a session in the default state.
func NewSession() *ConversationSession {
	return &ConversationSession{State: StateDefault}
}

// ResetFlow returns the session to the default state and clears all
// flow-scoped fields. The pending delete range is left alone; it is owned
// by the cleanup tracker.
func (s *ConversationSession) ResetFlow() {
	s.State = StateDefault
	s.Draft = GoalDraft{}
	s.ActiveGoalID = ""
	s.ActiveMessageID = 0
	s.CountPromptID = 0
}
