package game

import (
	"testing"

	"github.com/mabhi256/dquest/internal/casefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"novice":     Novice,
		"1":          Novice,
		"Adventurer": Adventurer,
		"2":          Adventurer,
		" master ":   Master,
		"3":          Master,
		"all":        All,
		"0":          All,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("4")
	assert.ErrorContains(t, err, "invalid level")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "master", Master.String())
	assert.Equal(t, "level(9)", Level(9).String())
	assert.Equal(t, []Level{Novice, Adventurer, Master}, All.Expand())
}

func TestPlayNovice(t *testing.T) {
	outcomes := ReferenceSession(nil).Play(Novice)

	require.Len(t, outcomes, 1)
	assert.Nil(t, outcomes[0].Result)
	require.Len(t, outcomes[0].Walk, 4)
	assert.Equal(t, "Adega", outcomes[0].Walk[3].Room)
}

func TestPlayAllUsesFreshState(t *testing.T) {
	outcomes := ReferenceSession(nil).Play(All)

	require.Len(t, outcomes, 3)
	adventurer, master := outcomes[1].Result, outcomes[2].Result
	require.NotNil(t, adventurer)
	require.NotNil(t, master)

	assert.NotSame(t, adventurer.Ledger, master.Ledger)
	assert.Equal(t, 7, master.Associations.Len(), "second run does not see first run's entries")

	best, ok := master.MostCited()
	require.True(t, ok)
	assert.Equal(t, "Joaquim", best.Name)
	assert.Equal(t, 2, best.Count)
}

func TestNewSessionFromCaseFile(t *testing.T) {
	s, err := NewSession(casefile.Reference(), nil)
	require.NoError(t, err)
	assert.Equal(t, casefile.MansionName, s.Case)

	outcomes := s.Play(Master)
	assert.Equal(t, 7, outcomes[0].Result.Clues.Len())
}

func TestNewSessionRejectsInvalidCase(t *testing.T) {
	_, err := NewSession(&casefile.CaseFile{Suspects: []string{"A"}}, nil)
	assert.ErrorIs(t, err, casefile.ErrNoEstate)
}
