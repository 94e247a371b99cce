package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matt-g-everett/ledcube/stream"
)

// shades runs from black through the 24-step greyscale ramp of the 256
// colour palette.
var shades = buildShades()

func buildShades() []lipgloss.Style {
	s := []lipgloss.Style{lipgloss.NewStyle().Foreground(lipgloss.Color("16"))}
	for i := 232; i <= 255; i++ {
		s = append(s, lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(i))))
	}
	return s
}

func shade(v uint8) lipgloss.Style {
	return shades[int(v)*(len(shades)-1)/255]
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	layerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

// renderLayer draws one layer, rows top to bottom.
func renderLayer(f *stream.Frame, y uint8) string {
	var b strings.Builder
	layer := f.Layer(y)
	for x := range layer {
		for _, v := range layer[x] {
			b.WriteString(shade(v).Render("██"))
		}
		if x < len(layer)-1 {
			b.WriteByte('\n')
		}
	}
	return layerStyle.Render(labelStyle.Render("y="+strconv.Itoa(int(y))) + "\n" + b.String())
}

// renderCube lays the layers out in two rows of four, top layer first.
func renderCube(f *stream.Frame) string {
	var top, bottom []string
	for y := stream.Size - 1; y >= 0; y-- {
		l := renderLayer(f, uint8(y))
		if y >= stream.Size/2 {
			top = append(top, l)
		} else {
			bottom = append(bottom, l)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, top...),
		lipgloss.JoinHorizontal(lipgloss.Top, bottom...),
	)
}
