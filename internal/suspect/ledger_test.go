package suspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedgerKeepsOrder(t *testing.T) {
	l := NewLedger([]string{"Joaquim", "Mariana", "Carlos", "Fernanda"})

	assert.Equal(t, []Suspect{
		{Name: "Joaquim"},
		{Name: "Mariana"},
		{Name: "Carlos"},
		{Name: "Fernanda"},
	}, l.Suspects())
}

func TestIndexOf(t *testing.T) {
	l := NewLedger([]string{"A", "B", "A"})

	i, ok := l.IndexOf("A")
	assert.True(t, ok)
	assert.Equal(t, 0, i, "first match wins")

	_, ok = l.IndexOf("a")
	assert.False(t, ok, "lookup is case sensitive")
}

func TestIncrement(t *testing.T) {
	l := NewLedger([]string{"A", "B"})

	assert.True(t, l.Increment("B"))
	assert.False(t, l.Increment("Z"))

	assert.Equal(t, []Suspect{{Name: "A"}, {Name: "B", Count: 1}}, l.Suspects())
}

func TestMostCited(t *testing.T) {
	tests := []struct {
		name   string
		names  []string
		cites  []string
		want   Suspect
		wantOK bool
	}{
		{
			name:   "empty ledger",
			wantOK: false,
		},
		{
			name:   "all zero picks first",
			names:  []string{"A", "B"},
			want:   Suspect{Name: "A"},
			wantOK: true,
		},
		{
			name:   "strict maximum",
			names:  []string{"A", "B", "C"},
			cites:  []string{"C", "B", "C"},
			want:   Suspect{Name: "C", Count: 2},
			wantOK: true,
		},
		{
			name:   "tie resolves to ledger order",
			names:  []string{"Joaquim", "Mariana", "Carlos", "Fernanda"},
			cites:  []string{"Carlos", "Mariana", "Joaquim", "Carlos", "Mariana", "Joaquim", "Fernanda"},
			want:   Suspect{Name: "Joaquim", Count: 2},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(tt.names)
			for _, c := range tt.cites {
				l.Increment(c)
			}

			got, ok := l.MostCited()
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuspectsReturnsCopy(t *testing.T) {
	l := NewLedger([]string{"A"})
	s := l.Suspects()
	s[0].Count = 99

	got, _ := l.MostCited()
	assert.Zero(t, got.Count)
}
