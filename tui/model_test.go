package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sat8bit/cheatsheet/topic"
)

func testTopics() []*topic.Topic {
	return []*topic.Topic{
		{Title: "Stacks", CPP: "stack<int> s;", Java: "Stack<Integer> s;", Differences: []string{"C++ top() vs Java peek()"}},
		{Title: "Queues", CPP: "queue<int> q;", Java: "Queue<Integer> q;", Differences: []string{"C++ front() vs Java peek()"}},
		{Title: "Deque", CPP: "deque<int> dq;", Java: "ArrayDeque<Integer> dq;", Differences: []string{"C++ deque allows random access"}},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigation_Clamps(t *testing.T) {
	m := New("Guide", testTopics())
	assert.Equal(t, 0, m.Current())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.Current(), "no wrap before the first topic")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Current())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 2, m.Current())
	m = update(t, m, runes("l"))
	assert.Equal(t, 2, m.Current(), "no wrap after the last topic")

	m = update(t, m, runes("h"))
	assert.Equal(t, 1, m.Current())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, m.Current())
}

func TestToggleDifferences(t *testing.T) {
	m := New("Guide", testTopics())
	assert.NotContains(t, m.View(), "C++ top() vs Java peek()")
	assert.Contains(t, m.View(), "▸ Key Differences Explanation")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Expanded(0))
	assert.Contains(t, m.View(), "▾ Key Differences Explanation")
	assert.Contains(t, m.View(), "C++ top() vs Java peek()")

	// state is kept per topic
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.False(t, m.Expanded(1))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.True(t, m.Expanded(0))

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, m.Expanded(0))
}

func TestToggleAll(t *testing.T) {
	m := New("Guide", testTopics())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, runes("a"))
	for i := range testTopics() {
		assert.True(t, m.Expanded(i), "topic %d", i)
	}

	m = update(t, m, runes("a"))
	for i := range testTopics() {
		assert.False(t, m.Expanded(i), "topic %d", i)
	}
}

func TestView_Layout(t *testing.T) {
	m := New("Guide", testTopics())
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Guide")
	assert.Contains(t, view, "1/3  Stacks")
	assert.Contains(t, view, "stack<int> s;")
	assert.Contains(t, view, "Stack<Integer> s;")

	var sideBySide bool
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "C++ Implementation") && strings.Contains(line, "Java Implementation") {
			sideBySide = true
		}
	}
	assert.True(t, sideBySide, "wide terminals show the panes side by side")

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	for _, line := range strings.Split(m.View(), "\n") {
		assert.False(t, strings.Contains(line, "C++ Implementation") && strings.Contains(line, "Java Implementation"))
	}
}

func TestQuit(t *testing.T) {
	m := New("Guide", testTopics())
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestEmptyCatalog(t *testing.T) {
	m := New("Guide", nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, m.View(), "No topics.")
}

func TestHighlight(t *testing.T) {
	m := New("Guide", testTopics(), WithHighlight(true))
	assert.Contains(t, m.View(), "\x1b[", "highlighted code carries ANSI escapes")
}
