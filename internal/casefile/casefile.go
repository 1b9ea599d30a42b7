package casefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mabhi256/dquest/internal/estate"
	"github.com/mabhi256/dquest/internal/investigate"
	"github.com/mabhi256/dquest/internal/suspect"
	"gopkg.in/yaml.v3"
)

// RoomSpec is the YAML form of a room and its subtrees.
type RoomSpec struct {
	Name  string    `yaml:"name"`
	Clue  string    `yaml:"clue,omitempty"`
	Left  *RoomSpec `yaml:"left,omitempty"`
	Right *RoomSpec `yaml:"right,omitempty"`
}

// CaseFile is a complete scenario: where to search, who to suspect and which
// clue points at whom.
type CaseFile struct {
	Name         string            `yaml:"name"`
	Suspects     []string          `yaml:"suspects"`
	Associations map[string]string `yaml:"associations"`
	Estate       *RoomSpec         `yaml:"estate"`
}

func Load(path string) (*CaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*CaseFile, error) {
	cf := &CaseFile{}
	if err := yaml.Unmarshal(data, cf); err != nil {
		return nil, fmt.Errorf("failed to parse case file: %w", err)
	}

	if err := cf.Validate(); err != nil {
		return nil, err
	}

	return cf, nil
}

func (cf *CaseFile) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create case file directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cf)
	if err != nil {
		return fmt.Errorf("failed to marshal case file: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write case file: %w", err)
	}

	return nil
}

// Validate checks the suspects and the estate shape.
func (cf *CaseFile) Validate() error {
	if len(cf.Suspects) == 0 {
		return ErrNoSuspects
	}

	seen := make(map[string]bool, len(cf.Suspects))
	for _, name := range cf.Suspects {
		if seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicateSuspect, name)
		}
		seen[name] = true
	}

	if cf.Estate == nil {
		return ErrNoEstate
	}

	return cf.Estate.validate(0, "")
}

func (s *RoomSpec) validate(depth int, path string) error {
	if s == nil {
		return nil
	}
	if depth > MaxDepth {
		return fmt.Errorf("%w: more than %d levels below %q", ErrEstateTooDeep, MaxDepth, path)
	}

	if strings.TrimSpace(s.Name) == "" {
		if path == "" {
			return fmt.Errorf("%w: estate root", ErrEmptyRoomName)
		}
		return fmt.Errorf("%w: child of %q", ErrEmptyRoomName, path)
	}

	if err := s.Left.validate(depth+1, s.Name); err != nil {
		return err
	}
	return s.Right.validate(depth+1, s.Name)
}

// BuildEstate builds the room tree described by the case file.
func (cf *CaseFile) BuildEstate() (*estate.Room, error) {
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	return cf.Estate.room(), nil
}

func (s *RoomSpec) room() *estate.Room {
	if s == nil {
		return nil
	}
	return estate.NewRoom(s.Name, s.Clue, s.Left.room(), s.Right.room())
}

// SpecFromRoom converts a room tree back into its YAML form.
func SpecFromRoom(r *estate.Room) *RoomSpec {
	if r == nil {
		return nil
	}
	clue, _ := r.Clue()
	return &RoomSpec{
		Name:  r.Name(),
		Clue:  clue,
		Left:  SpecFromRoom(r.Left()),
		Right: SpecFromRoom(r.Right()),
	}
}

func (cf *CaseFile) Resolver() investigate.Resolver {
	return investigate.MapResolver(cf.Associations)
}

// NewLedger returns a fresh ledger for one investigation run.
func (cf *CaseFile) NewLedger() *suspect.Ledger {
	return suspect.NewLedger(cf.Suspects)
}

func (cf *CaseFile) String() string {
	if cf.Name != "" {
		return cf.Name
	}
	return "Unnamed case"
}
