// Package render draws cube states as colored terminal nets.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	cube "github.com/PlayWeird/cube-combinatorics"
)

var colorStyles = map[cube.Color]lipgloss.Style{
	cube.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
	cube.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
	cube.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")),
	cube.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")),
	cube.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
	cube.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("208")),
}

const cellWidth = 3

// ColorNet renders the unfolded net with each facelet as a colored cell.
func ColorNet(s cube.State) string {
	return net(s, func(slot cube.Slot) string {
		c := s.ColorAt(slot)
		return colorStyles[c].Render(" " + c.String() + " ")
	})
}

// NumberedNet renders the net with slot numbers instead of colors, each cell
// styled with the facelet's current color. Useful when editing state files
// by hand.
func NumberedNet(s cube.State) string {
	return net(s, func(slot cube.Slot) string {
		n := int(slot)
		text := " " + string(rune('0'+n/10)) + string(rune('0'+n%10))
		return colorStyles[s.ColorAt(slot)].Render(text)
	})
}

func net(s cube.State, cell func(cube.Slot) string) string {
	var b strings.Builder
	indent := strings.Repeat(" ", 3*cellWidth)

	writeRow := func(f cube.Face, row int) {
		base := cube.Slot(int(f)*9 + 1)
		for col := 0; col < 3; col++ {
			b.WriteString(cell(base + cube.Slot(row*3+col)))
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		writeRow(cube.FaceU, row)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, f := range []cube.Face{cube.FaceL, cube.FaceF, cube.FaceR, cube.FaceB} {
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		writeRow(cube.FaceD, row)
		b.WriteByte('\n')
	}

	return b.String()
}
