package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mabhi256/dquest/internal/association"
	"github.com/mabhi256/dquest/internal/estate"
	"github.com/mabhi256/dquest/internal/investigate"
	"github.com/mabhi256/dquest/utils"
)

const roomColumn = 16

func RenderWalk(walk []estate.Step) string {
	if len(walk) == 0 {
		return utils.MutedStyle.Render("This level has no guided walk. Press esc to pick another level.")
	}

	var b strings.Builder
	for i, step := range walk {
		fmt.Fprintf(&b, "%s %s\n", utils.MutedStyle.Render(fmt.Sprintf("%2d.", i+1)), utils.InfoStyle.Render(step.Room))
		switch step.Direction {
		case estate.GoLeft:
			b.WriteString("    ↙ left\n")
		case estate.GoRight:
			b.WriteString("    ↘ right\n")
		default:
			b.WriteString(utils.GoodStyle.Render("    ■ dead end reached") + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderClues(res *investigate.Result) string {
	if res == nil {
		return utils.MutedStyle.Render("This level collects no clues.")
	}

	var b strings.Builder
	b.WriteString(utils.SectionStyle.Render("Found during exploration") + "\n")
	for _, d := range res.Discoveries {
		fmt.Fprintf(&b, "  %s  %s\n", utils.PadRight(utils.TruncateString(d.Room, roomColumn), roomColumn), utils.ClueStyle.Render(d.Clue))
	}

	b.WriteString("\n" + utils.SectionStyle.Render("Alphabetical") + "\n")
	if res.Clues.IsEmpty() {
		b.WriteString(utils.MutedStyle.Render("  (no clues found)"))
		return b.String()
	}
	for _, c := range res.Clues.InOrder() {
		fmt.Fprintf(&b, "  • %s\n", c)
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderAssociations(table *association.Table) string {
	if table.Len() == 0 {
		return utils.MutedStyle.Render("(no associations)")
	}

	var boxes []string
	table.ForEachBucket(func(index int, entries []association.Association) {
		lines := []string{utils.SectionStyle.Render(fmt.Sprintf("Bucket %d", index))}
		for _, a := range entries {
			lines = append(lines, fmt.Sprintf("%s → %s", utils.ClueStyle.Render(a.Clue), a.Suspect))
		}
		boxes = append(boxes, utils.BoxStyle.Padding(0, 1).Render(strings.Join(lines, "\n")))
	})

	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func RenderSuspects(res *investigate.Result, width, height int) string {
	best, ok := res.MostCited()
	if !ok {
		return utils.MutedStyle.Render("No suspect was cited.")
	}

	verdict := fmt.Sprintf("🎯 Most cited suspect: %s (cited %d times)",
		utils.CulpritStyle.Render(best.Name), best.Count)

	chart := renderSuspectChart(res.Ledger.Suspects(), best.Name, width, height-2)
	return lipgloss.JoinVertical(lipgloss.Left, chart, "", verdict)
}
