// Package engine implements the conversation/state machine behind the goal
// tracker: the multi-step creation dialog, inline-action dispatch, and the
// bookkeeping that purges stale chat messages when a new flow starts.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/render"
	"github.com/alexanderramin/stride/internal/repository"
	"github.com/alexanderramin/stride/internal/token"
	"github.com/alexanderramin/stride/internal/transport"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine interprets inbound chat events against per-chat session state.
// Events for one chat must arrive serialized; use Dispatcher for that.
type Engine struct {
	goals    repository.GoalRepo
	chat     transport.Transport
	sessions *SessionStore
	cleanup  *CleanupTracker
	now      func() time.Time
	log      *zap.Logger
}

func New(goals repository.GoalRepo, chat transport.Transport, log *zap.Logger) *Engine {
	return &Engine{
		goals:    goals,
		chat:     chat,
		sessions: NewSessionStore(),
		cleanup:  NewCleanupTracker(chat, log),
		now:      time.Now,
		log:      log,
	}
}

// HandleText processes one inbound free-text message.
func (e *Engine) HandleText(ctx context.Context, ev transport.TextEvent) error {
	sess := e.sessions.Get(ev.ChatID)
	text := strings.TrimSpace(ev.Text)

	// Commands interrupt whatever flow is in progress.
	switch text {
	case CmdStart:
		sess.ResetFlow()
		_, err := e.chat.SendMessage(ctx, ev.ChatID, msgHello, nil)
		return err
	case CmdList, LabelList:
		return e.listGoals(ctx, ev, sess)
	case CmdNew, LabelNew:
		return e.beginCreate(ctx, ev, sess)
	}

	switch sess.State {
	case domain.StateAwaitingName:
		return e.nameChosen(ctx, ev, sess, text)
	case domain.StateAwaitingTarget:
		return e.targetChosen(ctx, ev, sess, text)
	case domain.StateAwaitingDeadline:
		return e.deadlineChosen(ctx, ev, sess, text)
	case domain.StateAwaitingPriority:
		return e.priorityChosen(ctx, ev, sess, text)
	case domain.StateAwaitingCount:
		return e.countChosen(ctx, ev, sess, text)
	default:
		_, err := e.chat.SendMessage(ctx, ev.ChatID, msgHint, nil)
		return err
	}
}

// beginCreate purges the previous flow's scratch messages and opens the
// creation dialog. The inbound command message becomes the start of the new
// cleanup range.
func (e *Engine) beginCreate(ctx context.Context, ev transport.TextEvent, sess *domain.ConversationSession) error {
	e.cleanup.Purge(ctx, ev.ChatID, sess)
	sess.ResetFlow()
	e.cleanup.Begin(sess, ev.MessageID)
	sess.State = domain.StateAwaitingName
	return e.prompt(ctx, ev, sess, msgAskName)
}

func (e *Engine) nameChosen(ctx context.Context, ev transport.TextEvent, sess *domain.ConversationSession, text string) error {
	if text == "" {
		return e.prompt(ctx, ev, sess, msgNameError)
	}
	sess.Draft.Name = text
	sess.State = domain.StateAwaitingTarget
	return e.prompt(ctx, ev, sess, msgAskTarget)
}

func (e *Engine) targetChosen(ctx context.Context, ev transport.TextEvent, sess *domain.ConversationSession, text string) error {
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return e.prompt(ctx, ev, sess, msgTargetError)
	}
	sess.Draft.Target = n
	sess.State = domain.StateAwaitingDeadline
	suggestion := e.now().AddDate(0, 0, n).Format(domain.DateLayout)
	return e.prompt(ctx, ev, sess, fmt.Sprintf(msgAskDeadline, suggestion))
}

func (e *Engine) deadlineChosen(ctx context.Context, ev transport.TextEvent, sess *domain.ConversationSession, text string) error {
	d, err := time.Parse(domain.DateLayout, text)
	if err != nil {
		return e.prompt(ctx, ev, sess, msgDeadlineError)
	}
	sess.Draft.Deadline = d
	sess.State = domain.StateAwaitingPriority
	return e.prompt(ctx, ev, sess, msgAskPriority)
}

// priorityChosen completes the creation flow: the goal is persisted, every
// intermediate prompt and echo is purged, and a confirmation is sent that
// is deliberately outside the cleanup range.
func (e *Engine) priorityChosen(ctx context.Context, ev transport.TextEvent, sess *domain.ConversationSession, text string) error {
	p, err := strconv.Atoi(text)
	if err != nil || p < 0 || p > 100 {
		return e.prompt(ctx, ev, sess, msgPriorityError)
	}
	sess.Draft.Priority = p

	now := e.now().UTC()
	g := &domain.Goal{
		ID:        uuid.New().String(),
		OwnerID:   ev.UserID,
		Name:      sess.Draft.Name,
		Target:    sess.Draft.Target,
		Completed: 0,
		Deadline:  sess.Draft.Deadline,
		Priority:  sess.Draft.Priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := g.Validate(); err != nil {
		return e.prompt(ctx, ev, sess, msgPriorityError)
	}
	if err := e.goals.Create(ctx, g); err != nil {
		// Session state stays as-is so the user may retry.
		return e.reportStoreFailure(ctx, ev.ChatID, err)
	}

	e.cleanup.Extend(sess, ev.MessageID+1)
	e.cleanup.Purge(ctx, ev.ChatID, sess)
	sess.ResetFlow()

	created := fmt.Sprintf(msgCreated, g.Name, g.Deadline.Format(domain.DateLayout), g.Priority)
	_, err = e.chat.SendMessage(ctx, ev.ChatID, created, nil)
	return err
}

// listGoals supersedes any in-progress flow: it purges the previous cleanup
// range, sends one card per goal ordered by priority, and records the new
// message range for the next transition.
func (e *Engine) listGoals(ctx context.Context, ev transport.TextEvent, sess *domain.ConversationSession) error {
	e.cleanup.Purge(ctx, ev.ChatID, sess)
	sess.ResetFlow()
	e.cleanup.Begin(sess, ev.MessageID)

	goals, err := e.goals.ListByOwner(ctx, ev.UserID)
	if err != nil {
		return e.reportStoreFailure(ctx, ev.ChatID, err)
	}
	if len(goals) == 0 {
		return e.prompt(ctx, ev, sess, msgNoGoals)
	}

	today := e.now()
	for _, g := range goals {
		if err := e.sendCard(ctx, ev.ChatID, g, today, sess); err != nil {
			return err
		}
	}
	return nil
}

// sendCard sends a goal card and then swaps in the control row, which must
// encode the card's own message id.
func (e *Engine) sendCard(ctx context.Context, chatID int64, g *domain.Goal, today time.Time, sess *domain.ConversationSession) error {
	card := render.Card(g, today)
	id, err := e.chat.SendMessage(ctx, chatID, card, nil)
	if err != nil {
		return err
	}
	e.cleanup.Extend(sess, id+1)
	return e.chat.EditMessageText(ctx, chatID, id, card, goalKeyboard(chatID, id, g.ID))
}

// countChosen finishes the set-count sub-flow started by the 🔢 button.
func (e *Engine) countChosen(ctx context.Context, ev transport.TextEvent, sess *domain.ConversationSession, text string) error {
	g, err := e.goals.GetByID(ctx, sess.ActiveGoalID)
	if errors.Is(err, domain.ErrNotFound) {
		e.deleteQuietly(ctx, ev.ChatID, sess.CountPromptID)
		sess.ResetFlow()
		_, serr := e.chat.SendMessage(ctx, ev.ChatID, msgGone, nil)
		return serr
	}
	if err != nil {
		return e.reportStoreFailure(ctx, ev.ChatID, err)
	}

	n, perr := strconv.Atoi(text)
	if perr != nil || n < 0 || n > g.Target {
		// Replace the previous prompt: only one is alive at a time.
		e.deleteQuietly(ctx, ev.ChatID, ev.MessageID)
		e.deleteQuietly(ctx, ev.ChatID, sess.CountPromptID)
		id, serr := e.chat.SendMessage(ctx, ev.ChatID, fmt.Sprintf(msgCountError, g.Target), nil)
		if serr != nil {
			return serr
		}
		sess.CountPromptID = id
		return nil
	}

	changed, err := e.goals.SetCompleted(ctx, sess.ActiveGoalID, n)
	if err != nil {
		return e.reportStoreFailure(ctx, ev.ChatID, err)
	}

	e.deleteQuietly(ctx, ev.ChatID, ev.MessageID)
	e.deleteQuietly(ctx, ev.ChatID, sess.CountPromptID)

	if !changed {
		// The goal vanished between the read and the write.
		sess.ResetFlow()
		_, serr := e.chat.SendMessage(ctx, ev.ChatID, msgGone, nil)
		return serr
	}

	g.Completed = n
	card := render.Card(g, e.now())
	cardID := sess.ActiveMessageID
	sess.ResetFlow()
	return e.chat.EditMessageText(ctx, ev.ChatID, cardID, card, goalKeyboard(ev.ChatID, cardID, g.ID))
}

// HandleAction processes one inline-control tap. A corrupt token is never
// allowed to crash the handler: it is answered with a generic notice.
func (e *Engine) HandleAction(ctx context.Context, ev transport.ActionEvent) error {
	sess := e.sessions.Get(ev.ChatID)

	tok, err := token.Decode(ev.Data)
	if err != nil {
		e.log.Warn("ignoring malformed action token",
			zap.String("data", ev.Data),
			zap.Error(err))
		return e.chat.AnswerAction(ctx, ev.ActionID, msgBadAction)
	}

	switch tok.Action {
	case token.ActionIncrement, token.ActionDecrement:
		return e.stepGoal(ctx, ev, tok)
	case token.ActionSetCount:
		return e.beginSetCount(ctx, ev, sess, tok)
	case token.ActionDeleteRequest:
		return e.beginDelete(ctx, ev, sess, tok)
	case token.ActionConfirmDelete, token.ActionCancelDelete:
		if sess.State != domain.StateAwaitingDeleteConfirm {
			return e.chat.AnswerAction(ctx, ev.ActionID, msgBadAction)
		}
		return e.finishDelete(ctx, ev, sess, tok)
	}
	return e.chat.AnswerAction(ctx, ev.ActionID, msgBadAction)
}

// stepGoal applies the saturating +1/-1 rule. At a boundary nothing is
// mutated or re-rendered; the boundary is only reported back.
func (e *Engine) stepGoal(ctx context.Context, ev transport.ActionEvent, tok token.Token) error {
	g, err := e.goals.GetByID(ctx, tok.GoalID)
	if errors.Is(err, domain.ErrNotFound) {
		return e.chat.AnswerAction(ctx, ev.ActionID, msgGone)
	}
	if err != nil {
		return e.answerStoreFailure(ctx, ev, err)
	}

	boundary := msgAlreadyDone
	next := g.StepUp()
	step := e.goals.IncrementCompleted
	if tok.Action == token.ActionDecrement {
		boundary = msgAlreadyZero
		next = g.StepDown()
		step = e.goals.DecrementCompleted
	}
	if next == g.Completed {
		return e.chat.AnswerAction(ctx, ev.ActionID, boundary)
	}

	changed, err := step(ctx, tok.GoalID)
	if err != nil {
		return e.answerStoreFailure(ctx, ev, err)
	}
	if !changed {
		// A concurrent tap got there first.
		return e.chat.AnswerAction(ctx, ev.ActionID, boundary)
	}

	g, err = e.goals.GetByID(ctx, tok.GoalID)
	if errors.Is(err, domain.ErrNotFound) {
		return e.chat.AnswerAction(ctx, ev.ActionID, msgGone)
	}
	if err != nil {
		return e.answerStoreFailure(ctx, ev, err)
	}

	card := render.Card(g, e.now())
	if err := e.chat.EditMessageText(ctx, tok.ChatID, tok.MessageID, card, goalKeyboard(tok.ChatID, tok.MessageID, g.ID)); err != nil {
		return err
	}
	return e.chat.AnswerAction(ctx, ev.ActionID, msgCounted)
}

// beginSetCount opens the explicit-count sub-flow for one goal. Any earlier
// count prompt is removed first so only one is alive.
func (e *Engine) beginSetCount(ctx context.Context, ev transport.ActionEvent, sess *domain.ConversationSession, tok token.Token) error {
	g, err := e.goals.GetByID(ctx, tok.GoalID)
	if errors.Is(err, domain.ErrNotFound) {
		return e.chat.AnswerAction(ctx, ev.ActionID, msgGone)
	}
	if err != nil {
		return e.answerStoreFailure(ctx, ev, err)
	}

	if sess.CountPromptID != 0 {
		e.deleteQuietly(ctx, ev.ChatID, sess.CountPromptID)
	}
	id, err := e.chat.SendMessage(ctx, ev.ChatID, fmt.Sprintf(msgAskCount, g.Target), nil)
	if err != nil {
		return err
	}

	sess.State = domain.StateAwaitingCount
	sess.ActiveGoalID = tok.GoalID
	sess.ActiveMessageID = tok.MessageID
	sess.CountPromptID = id
	return e.chat.AnswerAction(ctx, ev.ActionID, "")
}

// beginDelete sends the confirm/cancel prompt with a snapshot of the goal.
func (e *Engine) beginDelete(ctx context.Context, ev transport.ActionEvent, sess *domain.ConversationSession, tok token.Token) error {
	g, err := e.goals.GetByID(ctx, tok.GoalID)
	if errors.Is(err, domain.ErrNotFound) {
		return e.chat.AnswerAction(ctx, ev.ActionID, msgGone)
	}
	if err != nil {
		return e.answerStoreFailure(ctx, ev, err)
	}

	prompt := fmt.Sprintf(msgConfirmDelete, render.Card(g, e.now()))
	if _, err := e.chat.SendMessage(ctx, ev.ChatID, prompt, confirmKeyboard(ev.ChatID, tok.MessageID, tok.GoalID)); err != nil {
		return err
	}
	sess.State = domain.StateAwaitingDeleteConfirm
	return e.chat.AnswerAction(ctx, ev.ActionID, msgEnsure)
}

// finishDelete resolves the confirmation prompt. Confirm removes the goal,
// its card and the prompt; cancel removes only the prompt. The tapped
// prompt's own id arrives as ev.MessageID, the original card's id inside
// the token.
func (e *Engine) finishDelete(ctx context.Context, ev transport.ActionEvent, sess *domain.ConversationSession, tok token.Token) error {
	g, err := e.goals.GetByID(ctx, tok.GoalID)
	if errors.Is(err, domain.ErrNotFound) {
		e.deleteQuietly(ctx, ev.ChatID, ev.MessageID)
		sess.ResetFlow()
		return e.chat.AnswerAction(ctx, ev.ActionID, msgGone)
	}
	if err != nil {
		return e.answerStoreFailure(ctx, ev, err)
	}

	if tok.Action == token.ActionCancelDelete {
		e.deleteQuietly(ctx, ev.ChatID, ev.MessageID)
		sess.ResetFlow()
		return e.chat.AnswerAction(ctx, ev.ActionID, fmt.Sprintf(msgKept, render.Header(g)))
	}

	if err := e.goals.Delete(ctx, tok.GoalID); err != nil {
		return e.answerStoreFailure(ctx, ev, err)
	}
	e.deleteQuietly(ctx, tok.ChatID, tok.MessageID) // the goal card
	e.deleteQuietly(ctx, ev.ChatID, ev.MessageID)   // the confirmation prompt
	sess.ResetFlow()
	return e.chat.AnswerAction(ctx, ev.ActionID, fmt.Sprintf(msgDeleted, render.Header(g)))
}

// prompt sends an intermediate dialog message and folds both the user's
// message and the prompt into the cleanup range.
func (e *Engine) prompt(ctx context.Context, ev transport.TextEvent, sess *domain.ConversationSession, text string) error {
	id, err := e.chat.SendMessage(ctx, ev.ChatID, text, nil)
	if err != nil {
		return err
	}
	e.cleanup.Extend(sess, ev.MessageID+1)
	e.cleanup.Extend(sess, id+1)
	return nil
}

func (e *Engine) deleteQuietly(ctx context.Context, chatID, messageID int64) {
	if messageID == 0 {
		return
	}
	if err := e.chat.DeleteMessage(ctx, chatID, messageID); err != nil {
		e.log.Debug("skipping message that could not be deleted",
			zap.Int64("chat_id", chatID),
			zap.Int64("message_id", messageID),
			zap.Error(err))
	}
}

func (e *Engine) reportStoreFailure(ctx context.Context, chatID int64, err error) error {
	e.log.Error("goal store failure", zap.Int64("chat_id", chatID), zap.Error(err))
	_, serr := e.chat.SendMessage(ctx, chatID, msgStoreFail, nil)
	return serr
}

func (e *Engine) answerStoreFailure(ctx context.Context, ev transport.ActionEvent, err error) error {
	e.log.Error("goal store failure", zap.Int64("chat_id", ev.ChatID), zap.Error(err))
	return e.chat.AnswerAction(ctx, ev.ActionID, msgStoreFail)
}
