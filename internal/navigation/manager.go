// Package navigation keeps the app's back-stack: which screen is showing and
// which screens lead back to the root. Going back pops the current entry for
// good; there is no forward/redo.
package navigation

import (
	"encoding/json"
	"sync"
)

// Topic is the change topic published after every navigation move.
const Topic = "navigation"

// Notifier receives change events. *hub.Hub satisfies it.
type Notifier interface {
	Broadcast(topic string, data []byte)
}

// Entry is one screen in the history, with the parameters it was opened with.
type Entry struct {
	Screen string            `json:"screen"`
	Params map[string]string `json:"params,omitempty"`
}

// Manager is the back-stack. The last entry is always the current screen.
// It is safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	entries  []Entry
	notifier Notifier
}

// NewManager returns a Manager whose history holds just the home screen.
// notifier may be nil.
func NewManager(notifier Notifier) *Manager {
	return &Manager{
		entries:  []Entry{{Screen: ScreenHome}},
		notifier: notifier,
	}
}

// NavigateTo pushes screen onto the history and makes it current.
// Navigating to the current screen again still adds an entry.
func (m *Manager) NavigateTo(screen string, params map[string]string) {
	m.mu.Lock()
	m.entries = append(m.entries, Entry{Screen: screen, Params: copyParams(params)})
	current := m.entries[len(m.entries)-1]
	m.mu.Unlock()

	m.publish(current)
}

// NavigateBack drops the current entry and returns to the one before it.
// At the root it does nothing and returns false.
func (m *Manager) NavigateBack() bool {
	m.mu.Lock()
	if len(m.entries) <= 1 {
		m.mu.Unlock()
		return false
	}
	m.entries = m.entries[:len(m.entries)-1]
	current := m.entries[len(m.entries)-1]
	m.mu.Unlock()

	m.publish(current)
	return true
}

// CurrentScreen returns the screen on top of the history, or home when the
// history is empty.
func (m *Manager) CurrentScreen() string {
	return m.Current().Screen
}

// Current returns the top entry, or a bare home entry when the history is empty.
func (m *Manager) Current() Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.entries) == 0 {
		return Entry{Screen: ScreenHome}
	}
	e := m.entries[len(m.entries)-1]
	e.Params = copyParams(e.Params)
	return e
}

// CanGoBack reports whether there is a screen to go back to.
func (m *Manager) CanGoBack() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries) > 1
}

// History returns a copy of every entry, root first.
func (m *Manager) History() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, len(m.entries))
	for i, e := range m.entries {
		out[i] = Entry{Screen: e.Screen, Params: copyParams(e.Params)}
	}
	return out
}

// Reset discards the history and returns to the home screen.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.entries = []Entry{{Screen: ScreenHome}}
	m.mu.Unlock()

	m.publish(Entry{Screen: ScreenHome})
}

func (m *Manager) publish(current Entry) {
	if m.notifier == nil {
		return
	}
	data, err := json.Marshal(struct {
		Topic string `json:"topic"`
		Entry
	}{Topic: Topic, Entry: current})
	if err != nil {
		return
	}
	m.notifier.Broadcast(Topic, data)
}

func copyParams(p map[string]string) map[string]string {
	if p == nil {
		return nil
	}
	out := make(map[string]string, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
