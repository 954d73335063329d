package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateEmptyBoard(t *testing.T) {
	require.Zero(t, newTestBoard(t).Evaluate())
}

func TestEvaluatePatterns(t *testing.T) {
	for _, tc := range []struct {
		name  string
		moves [][2]int
		want  int
	}{
		{
			name:  "computer pair",
			moves: [][2]int{{0, 2}, {1, 2}},
			want:  10,
		},
		{
			name:  "computer three",
			moves: [][2]int{{0, 2}, {1, 2}, {2, 2}},
			want:  2*10 + 100,
		},
		{
			name:  "player vertical four",
			moves: [][2]int{{0, 1}, {0, 1}, {0, 1}, {0, 1}},
			want:  -(3*10 + 2*100 + 10000),
		},
		{
			name:  "mixed window scores nothing",
			moves: [][2]int{{0, 2}, {1, 1}, {2, 2}},
			want:  0,
		},
		{
			name:  "both sides pair",
			moves: [][2]int{{0, 2}, {1, 2}, {5, 1}, {6, 1}},
			want:  0,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBoard(t)
			dropAll(t, b, tc.moves...)
			require.Equal(t, tc.want, b.Evaluate())
		})
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	b := newTestBoard(t)
	dropAll(t, b, [2]int{3, 1}, [2]int{3, 2}, [2]int{4, 1})
	before := b.Grid()
	b.Evaluate()
	require.Equal(t, before, b.Grid())
}

func TestEvaluateAntisymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for game := 0; game < 20; game++ {
		b := newTestBoard(t)
		disc := Player
		plies := rng.Intn(Rows * Columns)
		for i := 0; i < plies && !b.IsFull(); i++ {
			moves := b.ValidMoves()
			_, err := b.Drop(moves[rng.Intn(len(moves))], disc)
			require.NoError(t, err)
			disc = b.Opponent(disc)
		}

		swapped, err := NewBoardFromGrid(b.Grid(), Computer, Player)
		require.NoError(t, err)
		require.Equal(t, -b.Evaluate(), swapped.Evaluate())
	}
}
