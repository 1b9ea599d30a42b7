package tui

import (
	"testing"

	"github.com/mabhi256/dquest/internal/clue"
	"github.com/mabhi256/dquest/internal/investigate"
	"github.com/stretchr/testify/assert"
)

func TestRenderCluesTruncatesLongRoomNames(t *testing.T) {
	idx := clue.NewIndex()
	idx.Insert("medalha")
	res := &investigate.Result{
		Clues:       idx,
		Discoveries: []investigate.Discovery{{Room: "Sala de Troféus do Coronel", Clue: "medalha"}},
	}

	view := RenderClues(res)
	assert.Contains(t, view, "Sala de Trofé...")
	assert.NotContains(t, view, "Coronel")
	assert.Contains(t, view, "medalha")
}
