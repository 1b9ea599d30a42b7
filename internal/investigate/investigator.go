package investigate

import (
	"github.com/mabhi256/dquest/internal/association"
	"github.com/mabhi256/dquest/internal/clue"
	"github.com/mabhi256/dquest/internal/estate"
	"github.com/mabhi256/dquest/internal/suspect"
	"go.uber.org/zap"
)

// Resolver names the suspect a clue points to. It must be a pure function of
// the clue text.
type Resolver func(clue string) (suspect string, ok bool)

// MapResolver resolves clues through a fixed clue -> suspect mapping.
func MapResolver(mapping map[string]string) Resolver {
	return func(clue string) (string, bool) {
		s, ok := mapping[clue]
		return s, ok
	}
}

// Discovery records a clue found while exploring, in traversal order.
type Discovery struct {
	Room string `json:"room"`
	Clue string `json:"clue"`
}

// Result holds everything a single run produced. The ledger is the one passed
// to New, mutated in place.
type Result struct {
	Clues        *clue.Index
	Associations *association.Table
	Ledger       *suspect.Ledger
	Discoveries  []Discovery
}

type Investigator struct {
	ledger  *suspect.Ledger
	resolve Resolver
	logger  *zap.Logger
}

type Option func(*Investigator)

func WithLogger(logger *zap.Logger) Option {
	return func(inv *Investigator) {
		if logger != nil {
			inv.logger = logger
		}
	}
}

func New(ledger *suspect.Ledger, resolve Resolver, opts ...Option) *Investigator {
	if ledger == nil {
		ledger = suspect.NewLedger(nil)
	}
	inv := &Investigator{
		ledger:  ledger,
		resolve: resolve,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Run explores the estate in pre-order. Every clue goes into the clue index;
// clues the resolver recognises are also recorded as associations and counted
// against their suspect. Rooms without a clue are passed through.
func (inv *Investigator) Run(root *estate.Room) *Result {
	res := &Result{
		Clues:        clue.NewIndex(),
		Associations: association.NewTable(),
		Ledger:       inv.ledger,
	}

	root.TraversePreOrder(func(room *estate.Room) {
		c, ok := room.Clue()
		if !ok {
			return
		}

		inv.logger.Debug("clue found", zap.String("room", room.Name()), zap.String("clue", c))
		res.Discoveries = append(res.Discoveries, Discovery{Room: room.Name(), Clue: c})
		res.Clues.Insert(c)

		if inv.resolve == nil {
			return
		}
		name, ok := inv.resolve(c)
		if !ok {
			inv.logger.Debug("no suspect for clue", zap.String("clue", c))
			return
		}

		res.Associations.Insert(c, name)
		if !inv.ledger.Increment(name) {
			inv.logger.Debug("suspect not in ledger", zap.String("suspect", name), zap.String("clue", c))
		}
	})

	inv.logger.Info("investigation finished",
		zap.Int("clues", res.Clues.Len()),
		zap.Int("associations", res.Associations.Len()))

	return res
}

// MostCited is a shorthand for the ledger's most cited suspect.
func (r *Result) MostCited() (suspect.Suspect, bool) {
	return r.Ledger.MostCited()
}
