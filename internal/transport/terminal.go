package transport

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Terminal is a local chat adapter: it renders the conversation in the
// terminal through a bubbletea program and assigns monotonically increasing
// message ids the way a chat platform would. Inline buttons are shown as
// numbered hotkeys; typing "!3" presses button 3.
type Terminal struct {
	program *tea.Program

	mu     sync.Mutex
	nextID int64
}

// NewTerminal creates the adapter. Wire the returned model into a bubbletea
// program via Run before using the Transport methods.
func NewTerminal() *Terminal {
	return &Terminal{nextID: 1}
}

func (t *Terminal) allocID() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	return id
}

// Run starts the chat UI and blocks until the user quits. onText and
// onAction receive inbound events; they are called from the UI goroutine
// and should hand off to a dispatcher immediately.
func (t *Terminal) Run(chatID, userID int64, onText func(TextEvent), onAction func(ActionEvent)) error {
	m := newChatModel(t, chatID, userID, onText, onAction)
	p := tea.NewProgram(m)
	t.mu.Lock()
	t.program = p
	t.mu.Unlock()
	_, err := p.Run()
	return err
}

func (t *Terminal) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func (t *Terminal) SendMessage(ctx context.Context, chatID int64, text string, buttons []Button) (int64, error) {
	id := t.allocID()
	t.send(msgAdded{id: id, from: fromBot, text: text, buttons: buttons})
	return id, nil
}

func (t *Terminal) EditMessageText(ctx context.Context, chatID, messageID int64, text string, buttons []Button) error {
	t.send(msgEdited{id: messageID, text: text, buttons: buttons})
	return nil
}

func (t *Terminal) DeleteMessage(ctx context.Context, chatID, messageID int64) error {
	t.send(msgDeleted{id: messageID})
	return nil
}

func (t *Terminal) AnswerAction(ctx context.Context, actionID, notice string) error {
	if notice != "" {
		t.send(msgNotice{text: notice})
	}
	return nil
}

const (
	fromBot  = "stride"
	fromUser = "you"
)

type chatLine struct {
	id      int64
	from    string
	text    string
	buttons []Button
}

type (
	msgAdded struct {
		id      int64
		from    string
		text    string
		buttons []Button
	}
	msgEdited struct {
		id      int64
		text    string
		buttons []Button
	}
	msgDeleted struct{ id int64 }
	msgNotice  struct{ text string }
)

var (
	styleBot    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleUser   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	styleNotice = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true)
	styleButton = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

// chatModel is the bubbletea model for the terminal chat.
type chatModel struct {
	term     *Terminal
	chatID   int64
	userID   int64
	onText   func(TextEvent)
	onAction func(ActionEvent)

	input    textinput.Model
	lines    []chatLine
	notice   string
	quitting bool
}

func newChatModel(term *Terminal, chatID, userID int64, onText func(TextEvent), onAction func(ActionEvent)) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = "> "
	ti.CharLimit = 300
	return &chatModel{
		term:     term,
		chatID:   chatID,
		userID:   userID,
		onText:   onText,
		onAction: onAction,
		input:    ti,
	}
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case msgAdded:
		m.lines = append(m.lines, chatLine{id: msg.id, from: msg.from, text: msg.text, buttons: msg.buttons})
		return m, nil
	case msgEdited:
		for i := range m.lines {
			if m.lines[i].id == msg.id {
				m.lines[i].text = msg.text
				m.lines[i].buttons = msg.buttons
			}
		}
		return m, nil
	case msgDeleted:
		kept := m.lines[:0]
		for _, l := range m.lines {
			if l.id != msg.id {
				kept = append(kept, l)
			}
		}
		m.lines = kept
		return m, nil
	case msgNotice:
		m.notice = msg.text
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit turns the typed line into an inbound event: "!N" presses button N,
// anything else is a text message echoed into the log with its own id.
func (m *chatModel) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.notice = ""
	if text == "" {
		return nil
	}

	if rest, ok := strings.CutPrefix(text, "!"); ok {
		n, err := strconv.Atoi(rest)
		if err == nil {
			if msgID, btn, found := m.buttonAt(n); found {
				m.onAction(ActionEvent{
					ChatID:    m.chatID,
					UserID:    m.userID,
					MessageID: msgID,
					ActionID:  fmt.Sprintf("term-%d", msgID),
					Data:      btn.Data,
				})
				return nil
			}
		}
		m.notice = "no such button"
		return nil
	}

	id := m.term.allocID()
	m.lines = append(m.lines, chatLine{id: id, from: fromUser, text: text})
	m.onText(TextEvent{ChatID: m.chatID, UserID: m.userID, MessageID: id, Text: text})
	return nil
}

// buttonAt resolves hotkey n against the buttons currently on screen,
// numbered top to bottom, left to right.
func (m *chatModel) buttonAt(n int) (int64, Button, bool) {
	idx := 1
	for _, l := range m.lines {
		for _, b := range l.buttons {
			if idx == n {
				return l.id, b, true
			}
			idx++
		}
	}
	return 0, Button{}, false
}

func (m *chatModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	idx := 1
	for _, l := range m.lines {
		who := styleBot.Render(l.from)
		if l.from == fromUser {
			who = styleUser.Render(l.from)
		}
		fmt.Fprintf(&b, "%s: %s\n", who, l.text)
		if len(l.buttons) > 0 {
			parts := make([]string, 0, len(l.buttons))
			for _, btn := range l.buttons {
				parts = append(parts, styleButton.Render(fmt.Sprintf("[!%d %s]", idx, btn.Label)))
				idx++
			}
			fmt.Fprintf(&b, "  %s\n", strings.Join(parts, " "))
		}
	}
	if m.notice != "" {
		fmt.Fprintf(&b, "%s\n", styleNotice.Render("· "+m.notice))
	}
	b.WriteString("\n" + m.input.View() + "\n")
	return b.String()
}
