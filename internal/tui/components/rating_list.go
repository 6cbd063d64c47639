package components

import (
	"strings"

	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/Veraticus/contractor-evaluation/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RatingChangedMsg is emitted when the user picks a star value.
type RatingChangedMsg struct {
	Category model.Category
	Value    int
}

// RatingListModel renders one star row per category with a row cursor.
type RatingListModel struct {
	theme      themes.Theme
	categories []model.Category
	ratings    model.RatingSet
	cursor     int
	width      int
	focused    bool
}

// NewRatingListModel creates a rating list over every category.
func NewRatingListModel(theme themes.Theme) RatingListModel {
	return RatingListModel{
		theme:      theme,
		categories: model.AllCategories(),
		focused:    true,
	}
}

// Update handles key presses while the list is focused.
func (m RatingListModel) Update(msg tea.Msg) (RatingListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	current := m.ratings.Get(m.Current())
	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.categories)-1 {
			m.cursor++
		}
	case "right", "l":
		if current < model.MaxStars {
			return m, m.rate(current + 1)
		}
	case "left", "h":
		if current > 1 {
			return m, m.rate(current - 1)
		}
	case "1", "2", "3", "4", "5":
		return m, m.rate(int(keyMsg.String()[0] - '0'))
	}
	return m, nil
}

func (m RatingListModel) rate(value int) tea.Cmd {
	c := m.Current()
	return func() tea.Msg {
		return RatingChangedMsg{Category: c, Value: value}
	}
}

// View renders the star rows.
func (m RatingListModel) View() string {
	rows := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		rows = append(rows, m.renderRow(i, c))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m RatingListModel) renderRow(i int, c model.Category) string {
	marker := " "
	if c.Required() {
		marker = m.theme.Required.Render("*")
	}

	var stars strings.Builder
	for _, on := range model.Stars(m.ratings.Get(c)) {
		if on {
			stars.WriteString(m.theme.StarOn.Render(themes.StarFilled))
		} else {
			stars.WriteString(m.theme.StarOff.Render(themes.StarEmpty))
		}
		stars.WriteString(" ")
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, marker, " ", m.theme.Label.Render(c.Label()), stars.String())
	if m.focused && i == m.cursor {
		return m.theme.Selected.Render("▸ " + row)
	}
	return "  " + row
}

// SetRatings replaces the displayed values.
func (m *RatingListModel) SetRatings(r model.RatingSet) {
	m.ratings = r
}

// Current returns the category under the cursor.
func (m RatingListModel) Current() model.Category {
	return m.categories[m.cursor]
}

// AtTop reports whether the cursor is on the first row.
func (m RatingListModel) AtTop() bool { return m.cursor == 0 }

// AtBottom reports whether the cursor is on the last row.
func (m RatingListModel) AtBottom() bool { return m.cursor == len(m.categories)-1 }

// Focus gives the list keyboard focus.
func (m *RatingListModel) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *RatingListModel) Blur() { m.focused = false }

// Focused reports whether the list has focus.
func (m RatingListModel) Focused() bool { return m.focused }

// Resize updates the rendering width.
func (m *RatingListModel) Resize(width int) {
	m.width = width
}
