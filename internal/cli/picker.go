package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"

	"github.com/cheets/pubg-observer-generator/pkg/pipeline"
	"github.com/cheets/pubg-observer-generator/pkg/roster"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Division identifies one selectable division in the content tree.
type Division struct {
	League    string
	Season    string
	Division  string
	TeamCount int
}

// String returns the content-relative path of the division.
func (d Division) String() string {
	return filepath.Join(d.League, d.Season, d.Division)
}

// scanDivisions walks contentRoot three levels deep and returns every
// directory holding a roster file, in lexical order. The generated output
// directory is skipped so previous runs never show up as input.
func scanDivisions(contentRoot string) ([]Division, error) {
	leagues, err := os.ReadDir(contentRoot)
	if err != nil {
		return nil, fmt.Errorf("read content root %s: %w", contentRoot, err)
	}

	var divisions []Division
	for _, league := range leagues {
		if !league.IsDir() || league.Name() == "generated" {
			continue
		}
		seasons, err := os.ReadDir(filepath.Join(contentRoot, league.Name()))
		if err != nil {
			continue
		}
		for _, season := range seasons {
			if !season.IsDir() {
				continue
			}
			divs, err := os.ReadDir(filepath.Join(contentRoot, league.Name(), season.Name()))
			if err != nil {
				continue
			}
			for _, div := range divs {
				if !div.IsDir() {
					continue
				}
				slots := filepath.Join(contentRoot, league.Name(), season.Name(), div.Name(), pipeline.SlotsFileName)
				if _, err := os.Stat(slots); err != nil {
					continue
				}
				divisions = append(divisions, Division{
					League:    league.Name(),
					Season:    season.Name(),
					Division:  div.Name(),
					TeamCount: countTeams(slots),
				})
			}
		}
	}

	sort.Slice(divisions, func(i, j int) bool {
		return divisions[i].String() < divisions[j].String()
	})
	return divisions, nil
}

// countTeams returns the roster size, or 0 when the file is unreadable.
func countTeams(slotsPath string) int {
	teams, err := roster.Load(slotsPath, log.NewWithOptions(io.Discard, log.Options{}))
	if err != nil {
		return 0
	}
	return len(teams.Teams)
}

// pickDivision scans the content tree and lets the user choose a division
// interactively.
func pickDivision(contentRoot string) (Division, error) {
	sp := newSpinner("Scanning " + contentRoot)
	sp.Start()
	divisions, err := scanDivisions(contentRoot)
	sp.Stop()
	if err != nil {
		return Division{}, err
	}
	if len(divisions) == 0 {
		return Division{}, fmt.Errorf("no divisions with %s found under %s", pipeline.SlotsFileName, contentRoot)
	}

	model := NewDivisionListModel(divisions)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return Division{}, err
	}

	m, ok := final.(DivisionListModel)
	if !ok || m.Selected == nil {
		return Division{}, fmt.Errorf("no division selected")
	}
	return *m.Selected, nil
}

// =============================================================================
// DivisionListModel - Interactive division selection
// =============================================================================

// DivisionListModel is the bubbletea model for interactive division selection.
type DivisionListModel struct {
	Divisions []Division
	Cursor    int
	Selected  *Division
	Height    int
	Offset    int
}

// NewDivisionListModel creates a new division list model.
func NewDivisionListModel(divisions []Division) DivisionListModel {
	return DivisionListModel{
		Divisions: divisions,
		Cursor:    0,
		Height:    15,
		Offset:    0,
	}
}

func (m DivisionListModel) Init() tea.Cmd {
	return nil
}

func (m DivisionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Divisions)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			div := m.Divisions[m.Cursor]
			if div.TeamCount == 0 {
				return m, nil
			}
			m.Selected = &div
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DivisionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Division"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Divisions) {
		end = len(m.Divisions)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		d := m.Divisions[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		teams := "—"
		if d.TeamCount > 0 {
			teams = fmt.Sprintf("%d", d.TeamCount)
		}

		rows = append(rows, []string{cursor, d.League, d.Season, d.Division, teams})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "League", "Season", "Division", "Teams").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Divisions) {
				return lipgloss.NewStyle()
			}
			d := m.Divisions[actualIdx]

			if actualIdx == m.Cursor {
				if d.TeamCount > 0 {
					return listSelectedStyle
				}
				return listDimStyle.Bold(true)
			}
			if d.TeamCount == 0 {
				return listDimStyle
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Divisions))))

	return b.String()
}
