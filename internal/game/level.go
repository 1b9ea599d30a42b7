package game

import (
	"fmt"
	"strings"
)

// Level selects which parts of the investigation run and get reported.
type Level int

const (
	Novice     Level = iota // guided walk only
	Adventurer              // clue collection
	Master                  // clues, associations and the most cited suspect
	All                     // every level in sequence
)

var levelNames = []string{"novice", "adventurer", "master", "all"}

func (l Level) String() string {
	if l < Novice || l > All {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

func (l Level) Title() string {
	switch l {
	case Novice:
		return "Novice: guided walk through the estate"
	case Adventurer:
		return "Adventurer: collect clues in alphabetical order"
	case Master:
		return "Master: link clues to suspects and name the culprit"
	case All:
		return "Full demonstration: all three levels in sequence"
	default:
		return l.String()
	}
}

// Levels returns the playable levels in menu order.
func Levels() []Level {
	return []Level{Novice, Adventurer, Master, All}
}

func LevelNames() []string {
	return append([]string(nil), levelNames...)
}

// ParseLevel accepts a level name or its menu number (1-3, 0 for all).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "novice", "1":
		return Novice, nil
	case "adventurer", "2":
		return Adventurer, nil
	case "master", "3":
		return Master, nil
	case "all", "0":
		return All, nil
	}
	return Novice, fmt.Errorf("invalid level: %s. Valid options: %v", s, levelNames)
}

// Expand lists the single levels a run of l consists of.
func (l Level) Expand() []Level {
	if l == All {
		return []Level{Novice, Adventurer, Master}
	}
	return []Level{l}
}
