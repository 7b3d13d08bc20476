package engine

import (
	"context"
	"sync"

	"github.com/alexanderramin/stride/internal/transport"
	"go.uber.org/zap"
)

// chatEvent is either a text or an action event; exactly one field is set.
type chatEvent struct {
	text   *transport.TextEvent
	action *transport.ActionEvent
}

// Handler consumes inbound chat events. *Engine is the production
// implementation.
type Handler interface {
	HandleText(ctx context.Context, ev transport.TextEvent) error
	HandleAction(ctx context.Context, ev transport.ActionEvent) error
}

// Dispatcher serializes events per chat: one goroutine drains one channel
// per chat id, so no two events for the same session ever run concurrently,
// while different chats proceed in parallel.
type Dispatcher struct {
	handler Handler
	log     *zap.Logger

	mu     sync.Mutex
	queues map[int64]chan chatEvent
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(handler Handler, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		handler: handler,
		log:     log,
		queues:  make(map[int64]chan chatEvent),
	}
}

// SubmitText enqueues a text event for its chat's worker.
func (d *Dispatcher) SubmitText(ev transport.TextEvent) {
	d.submit(ev.ChatID, chatEvent{text: &ev})
}

// SubmitAction enqueues an action event for its chat's worker.
func (d *Dispatcher) SubmitAction(ev transport.ActionEvent) {
	d.submit(ev.ChatID, chatEvent{action: &ev})
}

func (d *Dispatcher) submit(chatID int64, ev chatEvent) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	q, ok := d.queues[chatID]
	if !ok {
		q = make(chan chatEvent, 16)
		d.queues[chatID] = q
		d.wg.Add(1)
		go d.drain(chatID, q)
	}
	d.mu.Unlock()
	q <- ev
}

func (d *Dispatcher) drain(chatID int64, q chan chatEvent) {
	defer d.wg.Done()
	for ev := range q {
		ctx := context.Background()
		var err error
		switch {
		case ev.text != nil:
			err = d.handler.HandleText(ctx, *ev.text)
		case ev.action != nil:
			err = d.handler.HandleAction(ctx, *ev.action)
		}
		if err != nil {
			d.log.Error("event handler failed",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
		}
	}
}

// Close stops accepting events and waits for in-flight ones to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, q := range d.queues {
		close(q)
	}
	d.mu.Unlock()
	d.wg.Wait()
}
