package casefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mabhi256/dquest/internal/estate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMansion(t *testing.T) {
	mansion := BuildMansion()

	assert.Equal(t, "Hall de Entrada", mansion.Name())
	assert.Equal(t, 11, mansion.Count())
	assert.Equal(t, 3, mansion.Height())
}

func TestMansionClues(t *testing.T) {
	var clues []string
	BuildMansion().TraversePreOrder(func(r *estate.Room) {
		if c, ok := r.Clue(); ok {
			clues = append(clues, c)
		}
	})

	want := []string{
		"cartao de visita",
		"pegada lama",
		"bilhete rasgado",
		"marca de prensa",
		"talher sujo",
		"pó dourado",
		"fio de seda",
	}
	if diff := cmp.Diff(want, clues); diff != "" {
		t.Errorf("clues in pre-order (-want +got):\n%s", diff)
	}

	for _, c := range clues {
		_, ok := referenceAssociations[c]
		assert.True(t, ok, "clue %q has a suspect", c)
	}
}

func TestMansionGuidedWalk(t *testing.T) {
	want := []string{"Hall de Entrada", "Sala de Estar", "Sala de Jantar", "Adega"}
	assert.Equal(t, want, BuildMansion().WalkGreedyLeft())
}

func TestReferenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases", "mansion.yaml")

	require.NoError(t, Reference().Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, MansionName, loaded.Name)
	assert.Equal(t, ReferenceSuspects(), loaded.Suspects)
	assert.Equal(t, ReferenceAssociations(), loaded.Associations)

	root, err := loaded.BuildEstate()
	require.NoError(t, err)
	if diff := cmp.Diff(SpecFromRoom(BuildMansion()), SpecFromRoom(root)); diff != "" {
		t.Errorf("estate mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	doc := `
name: Casa de Campo
suspects: [Ana, Bruno]
associations:
  luva: Ana
estate:
  name: Varanda
  left:
    name: Celeiro
    clue: luva
  right:
    name: Poço
    clue: corda
`
	cf, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Casa de Campo", cf.String())

	root, err := cf.BuildEstate()
	require.NoError(t, err)
	assert.Equal(t, []string{"Varanda", "Celeiro"}, root.WalkGreedyLeft())

	resolve := cf.Resolver()
	name, ok := resolve("luva")
	assert.True(t, ok)
	assert.Equal(t, "Ana", name)

	_, ok = resolve("corda")
	assert.False(t, ok)

	assert.Equal(t, 2, cf.NewLedger().Len())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"no suspects", "estate: {name: A}", ErrNoSuspects},
		{"duplicate suspect", "suspects: [A, A]\nestate: {name: X}", ErrDuplicateSuspect},
		{"no estate", "suspects: [A]", ErrNoEstate},
		{"unnamed root", "suspects: [A]\nestate: {clue: x}", ErrEmptyRoomName},
		{"unnamed child", "suspects: [A]\nestate: {name: X, right: {name: \" \"}}", ErrEmptyRoomName},
		{"too deep", "suspects: [A]\nestate:\n" + deepEstate(MaxDepth+2), ErrEstateTooDeep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("suspects: [unterminated"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func deepEstate(levels int) string {
	var b strings.Builder
	for i := range levels {
		indent := strings.Repeat("  ", i+1)
		if i > 0 {
			b.WriteString(strings.Repeat("  ", i) + "left:\n")
		}
		b.WriteString(indent + "name: room\n")
	}
	return b.String()
}
