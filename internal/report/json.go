package report

import (
	"encoding/json"
	"fmt"

	"github.com/mabhi256/dquest/internal/association"
	"github.com/mabhi256/dquest/internal/estate"
	"github.com/mabhi256/dquest/internal/game"
	"github.com/mabhi256/dquest/internal/investigate"
	"github.com/mabhi256/dquest/internal/suspect"
)

// LevelReport is the JSON form of one played level. Sections a level does
// not produce are omitted.
type LevelReport struct {
	Level      string             `json:"level"`
	Case       string             `json:"case"`
	Walk       []estate.Step      `json:"walk,omitempty"`
	Collection *CollectionSection `json:"collection,omitempty"`
	Verdict    *VerdictSection    `json:"verdict,omitempty"`
}

type CollectionSection struct {
	Discoveries []investigate.Discovery `json:"discoveries"`
	Clues       []string                `json:"clues"`
}

type VerdictSection struct {
	Buckets   []association.Bucket `json:"buckets"`
	Suspects  []suspect.Suspect    `json:"suspects"`
	MostCited *suspect.Suspect     `json:"mostCited"`
}

func NewLevelReport(out *game.Outcome) LevelReport {
	lr := LevelReport{
		Level: out.Level.String(),
		Case:  out.Case,
		Walk:  out.Walk,
	}
	if out.Result == nil {
		return lr
	}

	discoveries := out.Result.Discoveries
	if discoveries == nil {
		discoveries = []investigate.Discovery{}
	}
	lr.Collection = &CollectionSection{
		Discoveries: discoveries,
		Clues:       out.Result.Clues.InOrder(),
	}

	if out.Level == game.Master {
		buckets := out.Result.Associations.Buckets()
		if buckets == nil {
			buckets = []association.Bucket{}
		}
		lr.Verdict = &VerdictSection{
			Buckets:  buckets,
			Suspects: out.Result.Ledger.Suspects(),
		}
		if best, ok := out.Result.MostCited(); ok {
			lr.Verdict.MostCited = &best
		}
	}
	return lr
}

func (p *Printer) printJSON(outcomes []*game.Outcome) error {
	reports := make([]LevelReport, len(outcomes))
	for i, out := range outcomes {
		reports[i] = NewLevelReport(out)
	}

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = fmt.Fprintln(p.w, string(data))
	return err
}
