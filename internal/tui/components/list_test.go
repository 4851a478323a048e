package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakerskart/kart/internal/tui/styles"
)

func typeInto(l List, s string) List {
	for _, r := range s {
		l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return l
}

func TestListFilterNarrowsRows(t *testing.T) {
	l := NewList("catalog", styles.ForName("winter"))
	l.SetSize(80, 20)
	l.SetRows([]Row{
		{ID: "p1", Title: "Dark Rye Flour"},
		{ID: "p2", Title: "Dry Yeast 100g"},
	})

	l.ToggleFilter()
	l = typeInto(l, "yeast")

	require.Equal(t, 1, l.Len())
	sel := l.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, "p2", sel.ID)
}

func TestListFilterRanksBestMatchFirst(t *testing.T) {
	l := NewList("catalog", styles.ForName("winter"))
	l.SetSize(80, 20)
	l.SetRows([]Row{
		{ID: "p1", Title: "Almond Flour"},
		{ID: "p2", Title: "Flour Sifter"},
	})

	l.ToggleFilter()
	l = typeInto(l, "flour")

	require.Equal(t, 2, l.Len())
	// The title starting with the query outranks the mid-string match
	sel := l.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, "p2", sel.ID)
}

func TestListFilterEscRestoresAllRows(t *testing.T) {
	l := NewList("catalog", styles.ForName("winter"))
	l.SetSize(80, 20)
	l.SetRows([]Row{{ID: "p1", Title: "Bread Flour 5kg"}, {ID: "p2", Title: "Dry Yeast 100g"}})

	l.ToggleFilter()
	l = typeInto(l, "yeast")
	require.Equal(t, 1, l.Len())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 2, l.Len())
	assert.False(t, l.IsFiltering())
}
