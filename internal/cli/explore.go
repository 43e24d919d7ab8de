package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	cube "github.com/PlayWeird/cube-combinatorics"
	"github.com/PlayWeird/cube-combinatorics/internal/render"
	"github.com/PlayWeird/cube-combinatorics/internal/statefile"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [state-file]",
	Short: "Interactive cube exploration",
	Long: `Start an interactive session. Type move sequences in standard
notation and watch the cube update live.

Keyboard shortcuts:
  Enter   - apply the typed sequence
  Ctrl+Z  - undo the last applied move
  Ctrl+R  - reset to solved
  Ctrl+S  - apply a random scramble
  Esc     - quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type exploreModel struct {
	state    cube.State
	history  []cube.Move
	input    string
	errMsg   string
	quitting bool
}

func newExploreModel(start cube.State) exploreModel {
	return exploreModel{state: start}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		if m.input == "" {
			return m, nil
		}
		moves, err := cube.ParseMoves(m.input)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.state = cube.ApplySequence(m.state, moves)
		m.history = append(m.history, moves...)
		m.input = ""
		m.errMsg = ""
		return m, nil

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	case tea.KeyCtrlZ:
		if n := len(m.history); n > 0 {
			last := m.history[n-1]
			m.state = cube.Apply(m.state, last.Inverse())
			m.history = m.history[:n-1]
			m.errMsg = ""
		}
		return m, nil

	case tea.KeyCtrlR:
		m.state = cube.Solved()
		m.history = nil
		m.input = ""
		m.errMsg = ""
		return m, nil

	case tea.KeyCtrlS:
		scramble := cube.NewScrambler(time.Now().UnixNano()).Scramble(25)
		m.state = cube.ApplySequence(m.state, scramble)
		m.history = append(m.history, scramble...)
		m.errMsg = ""
		return m, nil

	case tea.KeyRunes, tea.KeySpace:
		m.input += key.String()
		return m, nil
	}

	return m, nil
}

func (m exploreModel) View() string {
	if m.quitting {
		return ""
	}

	s := titleStyle.Render("cubecomb explore") + "\n\n"
	s += render.ColorNet(m.state) + "\n"

	if m.state.IsSolved() {
		s += solvedStyle.Render("SOLVED") + "\n"
	} else {
		v := cube.Validate(m.state)
		if v.Solvable {
			s += statusStyle.Render("solvable, not solved") + "\n"
		} else {
			s += errorStyle.Render(fmt.Sprintf("unsolvable: %v", v.Violations)) + "\n"
		}
	}

	if len(m.history) > 0 {
		s += statusStyle.Render(fmt.Sprintf("moves (%d): %s", len(m.history), cube.FormatMoves(m.history))) + "\n"
	}

	s += "\n> " + m.input + "\n"
	if m.errMsg != "" {
		s += errorStyle.Render(m.errMsg) + "\n"
	}
	s += "\n" + helpStyle.Render("enter: apply  ctrl+z: undo  ctrl+r: reset  ctrl+s: scramble  esc: quit") + "\n"

	return s
}

func runExplore(cmd *cobra.Command, args []string) error {
	start := cube.Solved()
	if len(args) == 1 {
		doc, err := statefile.Load(args[0])
		if err != nil {
			return err
		}
		start, err = doc.State()
		if err != nil {
			return err
		}
	}

	p := tea.NewProgram(newExploreModel(start))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("explore session failed: %w", err)
	}
	return nil
}
