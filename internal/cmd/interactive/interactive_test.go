package interactive

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/zen-cli/pkg/abbr"
)

func typeRunes(t *testing.T, m model, s string) model {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(model)
	}
	return m
}

func TestModel_TypingUpdatesPreview(t *testing.T) {
	m := newModel(abbr.New(abbr.Options{}), "", "", nil)

	m = typeRunes(t, m, "div")
	require.True(t, m.preview.applied)
	assert.Equal(t, "<div></div>", m.preview.text)

	m = typeRunes(t, m, ">p")
	assert.Contains(t, m.preview.text, "<p>")
}

func TestModel_InvalidInputClearsPreview(t *testing.T) {
	m := newModel(abbr.New(abbr.Options{}), "", "", nil)

	m = typeRunes(t, m, "div")
	require.True(t, m.preview.applied)

	// Trailing operator is invalid mid-typing; preview empties.
	m = typeRunes(t, m, ">")
	assert.False(t, m.preview.applied)
	assert.Empty(t, m.preview.text)
}

func TestModel_EnterAccepts(t *testing.T) {
	m := newModel(abbr.New(abbr.Options{}), "", "", nil)
	m = typeRunes(t, m, "a")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)

	assert.True(t, m.accepted)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_EscCancels(t *testing.T) {
	m := newModel(abbr.New(abbr.Options{}), "", "", nil)
	m = typeRunes(t, m, "a")
	require.True(t, m.preview.applied)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)

	assert.False(t, m.accepted)
	assert.False(t, m.preview.applied, "cancel undoes the applied preview")
}

func TestModel_WrapMode(t *testing.T) {
	m := newModel(abbr.New(abbr.Options{}), "", "hello", nil)

	m = typeRunes(t, m, "em")
	require.True(t, m.preview.applied)
	assert.Equal(t, "<em>hello</em>", m.preview.text)
}

func TestModel_View(t *testing.T) {
	m := newModel(abbr.New(abbr.Options{}), "", "", nil)
	m = typeRunes(t, m, "div")

	view := m.View()
	assert.Contains(t, view, "zen")
	assert.Contains(t, view, "<div></div>")
}

func TestModel_TabStopCount(t *testing.T) {
	m := newModel(abbr.New(abbr.Options{}), "", "", nil)
	m = typeRunes(t, m, "a")

	require.True(t, m.preview.applied)
	assert.Equal(t, 2, m.preview.stops, "href stop plus content fallback")
	assert.True(t, strings.Contains(m.View(), "tab stops"))
}

func TestPreviewApplier(t *testing.T) {
	a := &previewApplier{}
	a.Insert(&abbr.ExpansionResult{Text: "<p></p>", TabStops: []abbr.TabStop{{Order: 1}}})
	assert.True(t, a.applied)
	assert.Equal(t, 1, a.stops)

	a.Undo()
	assert.False(t, a.applied)
	assert.Empty(t, a.text)
}
