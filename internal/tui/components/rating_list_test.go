package components

import (
	"strings"
	"testing"

	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/Veraticus/contractor-evaluation/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRatingListModel_Navigation(t *testing.T) {
	m := NewRatingListModel(themes.Default)
	assert.True(t, m.AtTop())
	assert.Equal(t, model.CategoryWorkQuality, m.Current())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.True(t, m.AtTop(), "cursor must not move above the first row")

	for i := 0; i < model.NumCategories+2; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.True(t, m.AtBottom())
	assert.Equal(t, model.CategoryOverallSatisfaction, m.Current())

	m, _ = m.Update(runeKey("k"))
	assert.Equal(t, model.CategoryPricing, m.Current())
}

func TestRatingListModel_RatingKeys(t *testing.T) {
	tests := []struct {
		key     tea.KeyMsg
		name    string
		current int
		want    int
		wantCmd bool
	}{
		{name: "digit sets value", key: runeKey("4"), current: 0, want: 4, wantCmd: true},
		{name: "right from unrated gives one star", key: tea.KeyMsg{Type: tea.KeyRight}, current: 0, want: 1, wantCmd: true},
		{name: "right increments", key: tea.KeyMsg{Type: tea.KeyRight}, current: 3, want: 4, wantCmd: true},
		{name: "right stops at five", key: tea.KeyMsg{Type: tea.KeyRight}, current: 5, wantCmd: false},
		{name: "left decrements", key: runeKey("h"), current: 3, want: 2, wantCmd: true},
		{name: "left stops at one", key: tea.KeyMsg{Type: tea.KeyLeft}, current: 1, wantCmd: false},
		{name: "other digits ignored", key: runeKey("7"), current: 2, wantCmd: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRatingListModel(themes.Default)
			var ratings model.RatingSet
			if tt.current > 0 {
				require.NoError(t, ratings.Set(model.CategoryWorkQuality, tt.current))
			}
			m.SetRatings(ratings)

			_, cmd := m.Update(tt.key)
			if !tt.wantCmd {
				assert.Nil(t, cmd)
				return
			}
			require.NotNil(t, cmd)
			msg, ok := cmd().(RatingChangedMsg)
			require.True(t, ok)
			assert.Equal(t, model.CategoryWorkQuality, msg.Category)
			assert.Equal(t, tt.want, msg.Value)
		})
	}
}

func TestRatingListModel_BlurredIgnoresKeys(t *testing.T) {
	m := NewRatingListModel(themes.Default)
	m.Blur()
	assert.False(t, m.Focused())

	m, cmd := m.Update(runeKey("3"))
	assert.Nil(t, cmd)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, m.AtTop())
}

func TestRatingListModel_View(t *testing.T) {
	m := NewRatingListModel(themes.Default)
	var ratings model.RatingSet
	require.NoError(t, ratings.Set(model.CategoryPricing, 3))
	m.SetRatings(ratings)

	view := m.View()
	for _, c := range model.AllCategories() {
		assert.Contains(t, view, c.Label())
	}

	lines := strings.Split(view, "\n")
	require.Len(t, lines, model.NumCategories)
	pricing := lines[model.CategoryPricing]
	assert.Equal(t, 3, strings.Count(pricing, themes.StarFilled))
	assert.Equal(t, 2, strings.Count(pricing, themes.StarEmpty))
	assert.Equal(t, 0, strings.Count(lines[model.CategoryWorkQuality], themes.StarFilled))
}
