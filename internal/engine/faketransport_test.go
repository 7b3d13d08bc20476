package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/stride/internal/transport"
)

// fakeChat records everything the engine does to the transport. User and
// bot messages share one monotonic id space per chat, the way a real chat
// platform numbers them.
type fakeChat struct {
	mu      sync.Mutex
	nextID  int64
	msgs    map[int64]*fakeMsg
	deleted []int64
	edits   int
	answers []string
}

type fakeMsg struct {
	id      int64
	text    string
	buttons []transport.Button
}

func newFakeChat() *fakeChat {
	return &fakeChat{nextID: 1, msgs: make(map[int64]*fakeMsg)}
}

func (f *fakeChat) SendMessage(ctx context.Context, chatID int64, text string, buttons []transport.Button) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.msgs[id] = &fakeMsg{id: id, text: text, buttons: buttons}
	return id, nil
}

func (f *fakeChat) EditMessageText(ctx context.Context, chatID, messageID int64, text string, buttons []transport.Button) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.msgs[messageID]
	if !ok {
		return fmt.Errorf("edit: message %d not found", messageID)
	}
	m.text = text
	m.buttons = buttons
	f.edits++
	return nil
}

func (f *fakeChat) DeleteMessage(ctx context.Context, chatID, messageID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.msgs[messageID]; !ok {
		return fmt.Errorf("delete: message %d not found", messageID)
	}
	delete(f.msgs, messageID)
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeChat) AnswerAction(ctx context.Context, actionID, notice string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, notice)
	return nil
}

// userMessage records an inbound user message in the shared id space and
// returns its id.
func (f *fakeChat) userMessage(text string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.msgs[id] = &fakeMsg{id: id, text: text}
	return id
}

// lastAnswer returns the most recent action notice, or "".
func (f *fakeChat) lastAnswer() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.answers) == 0 {
		return ""
	}
	return f.answers[len(f.answers)-1]
}

// lastMessage returns the live message with the highest id.
func (f *fakeChat) lastMessage() *fakeMsg {
	f.mu.Lock()
	defer f.mu.Unlock()
	var last *fakeMsg
	for _, m := range f.msgs {
		if last == nil || m.id > last.id {
			last = m
		}
	}
	return last
}

// liveContaining returns live messages whose text contains substr, in id
// order.
func (f *fakeChat) liveContaining(substr string) []*fakeMsg {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*fakeMsg
	for id := int64(1); id < f.nextID; id++ {
		if m, ok := f.msgs[id]; ok && strings.Contains(m.text, substr) {
			out = append(out, m)
		}
	}
	return out
}

// buttonData returns the encoded token of the button with the given label
// on the given message.
func (f *fakeChat) buttonData(messageID int64, label string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.msgs[messageID]
	if !ok {
		return "", false
	}
	for _, b := range m.buttons {
		if b.Label == label {
			return b.Data, true
		}
	}
	return "", false
}

func (f *fakeChat) isLive(messageID int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.msgs[messageID]
	return ok
}

func (f *fakeChat) wasDeleted(messageID int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.deleted {
		if id == messageID {
			return true
		}
	}
	return false
}
