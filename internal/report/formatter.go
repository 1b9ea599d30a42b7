package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mabhi256/dquest/internal/association"
	"github.com/mabhi256/dquest/internal/estate"
	"github.com/mabhi256/dquest/internal/game"
	"github.com/mabhi256/dquest/internal/investigate"
	"github.com/mabhi256/dquest/utils"
)

const barWidth = 20

type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintReport renders outcomes in the given format. Unknown formats fall
// back to cli.
func (p *Printer) PrintReport(outcomes []*game.Outcome, outputFormat string) error {
	switch outputFormat {
	case "cli":
		p.printText(outcomes)
	case "json":
		return p.printJSON(outcomes)
	default:
		fmt.Fprintf(p.w, "Unknown output format '%s', using cli format\n\n", outputFormat)
		p.printText(outcomes)
	}
	return nil
}

func (p *Printer) printText(outcomes []*game.Outcome) {
	for _, out := range outcomes {
		switch out.Level {
		case game.Novice:
			p.printWalk(out)
		case game.Adventurer:
			p.printCollection(out)
		case game.Master:
			p.printVerdict(out)
		}
	}
}

func (p *Printer) header(title, caseName string) {
	fmt.Fprintln(p.w, utils.SectionStyle.Render(title))
	fmt.Fprintf(p.w, "Case: %s\n", caseName)
	fmt.Fprintln(p.w, strings.Repeat("═", 65))
}

func (p *Printer) section(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, utils.SectionStyle.Render(title))
	fmt.Fprintln(p.w, utils.Rule(35))
}

func (p *Printer) printWalk(out *game.Outcome) {
	p.header("🚶 Novice: guided walk", out.Case)

	for _, step := range out.Walk {
		fmt.Fprintf(p.w, "You enter: %s\n", utils.InfoStyle.Render(step.Room))
		switch step.Direction {
		case estate.GoLeft:
			fmt.Fprintln(p.w, utils.MutedStyle.Render("  automatic choice: go LEFT"))
		case estate.GoRight:
			fmt.Fprintln(p.w, utils.MutedStyle.Render("  automatic choice: go RIGHT"))
		default:
			fmt.Fprintln(p.w, " -> Dead end reached: end of the path.")
		}
	}
	fmt.Fprintln(p.w)
}

func (p *Printer) printCollection(out *game.Outcome) {
	p.header("🔎 Adventurer: clue collection", out.Case)
	p.printDiscoveries(out.Result)
	p.printClues(out.Result)
	fmt.Fprintln(p.w)
}

func (p *Printer) printVerdict(out *game.Outcome) {
	p.header("🕵️ Master: clues and suspects", out.Case)
	p.printDiscoveries(out.Result)
	p.printClues(out.Result)
	p.printAssociations(out.Result.Associations)
	p.printSuspects(out.Result)
	fmt.Fprintln(p.w)
}

func (p *Printer) printDiscoveries(res *investigate.Result) {
	for _, d := range res.Discoveries {
		fmt.Fprintf(p.w, "Found clue in room %q: %s\n", d.Room, utils.ClueStyle.Render(fmt.Sprintf("%q", d.Clue)))
	}
}

func (p *Printer) printClues(res *investigate.Result) {
	p.section("📜 CLUES COLLECTED (alphabetical)")

	if res.Clues.IsEmpty() {
		fmt.Fprintln(p.w, " (no clues found)")
		return
	}
	for _, c := range res.Clues.InOrder() {
		fmt.Fprintf(p.w, " - %s\n", c)
	}
}

func (p *Printer) printAssociations(table *association.Table) {
	p.section("🗂️  CLUE → SUSPECT (hash table)")

	if table.Len() == 0 {
		fmt.Fprintln(p.w, " (no associations)")
		return
	}
	table.ForEachBucket(func(index int, entries []association.Association) {
		fmt.Fprintf(p.w, "Bucket %d:\n", index)
		for _, a := range entries {
			fmt.Fprintf(p.w, "  %q -> %s\n", a.Clue, a.Suspect)
		}
	})
}

func (p *Printer) printSuspects(res *investigate.Result) {
	p.section("👥 SUSPECTS")

	best, ok := res.MostCited()
	if !ok {
		fmt.Fprintln(p.w, "No suspect was cited.")
		return
	}

	nameWidth := 0
	for _, s := range res.Ledger.Suspects() {
		nameWidth = max(nameWidth, len([]rune(s.Name)))
	}

	for _, s := range res.Ledger.Suspects() {
		share := 0.0
		if best.Count > 0 {
			share = float64(s.Count) / float64(best.Count)
		}
		color := utils.InfoColor
		if s.Name == best.Name {
			color = utils.CulpritColor
		}
		fmt.Fprintf(p.w, "%s %s %d\n",
			utils.PadRight(s.Name, nameWidth),
			utils.CreateProgressBar(share, barWidth, color),
			s.Count)
	}

	fmt.Fprintf(p.w, "\n🎯 Most cited suspect: %s (cited %d times)\n",
		utils.CulpritStyle.Render(best.Name), best.Count)
}
