package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/mabhi256/dquest/internal/suspect"
	"github.com/mabhi256/dquest/utils"
)

const (
	MinChartWidth  = 20
	MinChartHeight = 6
	MaxChartHeight = 14
)

// renderSuspectChart draws one bar per suspect, the most cited one in red.
// Terminals too small for a chart get a plain list.
func renderSuspectChart(suspects []suspect.Suspect, culprit string, width, height int) string {
	if width < MinChartWidth || height < MinChartHeight {
		return renderSuspectList(suspects, culprit)
	}

	data := make([]barchart.BarData, len(suspects))
	for i, s := range suspects {
		color := utils.InfoColor
		if s.Name == culprit {
			color = utils.CulpritColor
		}
		data[i] = barchart.BarData{
			Label: s.Name,
			Values: []barchart.BarValue{
				{Name: s.Name, Value: float64(s.Count), Style: lipgloss.NewStyle().Foreground(color)},
			},
		}
	}

	bc := barchart.New(width, min(height, MaxChartHeight))
	bc.PushAll(data)
	bc.Draw()
	return bc.View()
}

func renderSuspectList(suspects []suspect.Suspect, culprit string) string {
	var out string
	for _, s := range suspects {
		line := fmt.Sprintf("%s %d", utils.PadRight(s.Name, 12), s.Count)
		if s.Name == culprit {
			line = utils.CulpritStyle.Render(line)
		}
		out += line + "\n"
	}
	return out
}
