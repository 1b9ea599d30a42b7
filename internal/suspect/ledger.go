package suspect

type Suspect struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Ledger keeps the citation count of each suspect in a fixed order.
// The order decides ties in MostCited.
type Ledger struct {
	suspects []Suspect
}

func NewLedger(names []string) *Ledger {
	suspects := make([]Suspect, len(names))
	for i, name := range names {
		suspects[i] = Suspect{Name: name}
	}
	return &Ledger{suspects: suspects}
}

// IndexOf returns the position of the first suspect with the given name.
func (l *Ledger) IndexOf(name string) (int, bool) {
	for i, s := range l.suspects {
		if s.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Increment adds one citation to name. Unknown names are ignored.
func (l *Ledger) Increment(name string) bool {
	i, ok := l.IndexOf(name)
	if !ok {
		return false
	}
	l.suspects[i].Count++
	return true
}

// MostCited returns the suspect with the highest count, the earliest one on
// ties. Only an empty ledger has no answer.
func (l *Ledger) MostCited() (Suspect, bool) {
	if len(l.suspects) == 0 {
		return Suspect{}, false
	}

	best := 0
	for i, s := range l.suspects[1:] {
		if s.Count > l.suspects[best].Count {
			best = i + 1
		}
	}
	return l.suspects[best], true
}

func (l *Ledger) Suspects() []Suspect {
	out := make([]Suspect, len(l.suspects))
	copy(out, l.suspects)
	return out
}

func (l *Ledger) Len() int {
	return len(l.suspects)
}
