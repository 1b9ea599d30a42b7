package game

import (
	"github.com/mabhi256/dquest/internal/casefile"
	"github.com/mabhi256/dquest/internal/estate"
	"github.com/mabhi256/dquest/internal/investigate"
	"github.com/mabhi256/dquest/internal/suspect"
	"go.uber.org/zap"
)

// Session ties a built estate to the suspects and resolver of its case.
// The estate is built once; every Play gets fresh clue, association and
// suspect structures.
type Session struct {
	Case     string
	Estate   *estate.Room
	suspects []string
	resolve  investigate.Resolver
	logger   *zap.Logger
}

// Outcome is the result of playing one level.
type Outcome struct {
	Level  Level
	Case   string
	Walk   []estate.Step
	Result *investigate.Result // nil for Novice
}

func NewSession(cf *casefile.CaseFile, logger *zap.Logger) (*Session, error) {
	root, err := cf.BuildEstate()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		Case:     cf.String(),
		Estate:   root,
		suspects: append([]string(nil), cf.Suspects...),
		resolve:  cf.Resolver(),
		logger:   logger,
	}, nil
}

// ReferenceSession plays the built-in mansion.
func ReferenceSession(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		Case:     casefile.MansionName,
		Estate:   casefile.BuildMansion(),
		suspects: casefile.ReferenceSuspects(),
		resolve:  investigate.MapResolver(casefile.ReferenceAssociations()),
		logger:   logger,
	}
}

// Play runs level and returns one outcome per single level it expands to.
func (s *Session) Play(level Level) []*Outcome {
	var outcomes []*Outcome
	for _, l := range level.Expand() {
		outcomes = append(outcomes, s.play(l))
	}
	return outcomes
}

func (s *Session) play(level Level) *Outcome {
	s.logger.Debug("playing level", zap.Stringer("level", level), zap.String("case", s.Case))

	out := &Outcome{Level: level, Case: s.Case}
	if level == Novice {
		out.Walk = s.Estate.GuidedWalk()
		return out
	}

	ledger := suspect.NewLedger(s.suspects)
	inv := investigate.New(ledger, s.resolve, investigate.WithLogger(s.logger))
	out.Result = inv.Run(s.Estate)
	return out
}
