package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(Player, Computer)
	require.NoError(t, err)
	return b
}

func TestNewBoardRejectsBadDiscs(t *testing.T) {
	for _, tc := range []struct {
		name             string
		player, computer Disc
	}{
		{"empty player", Empty, Computer},
		{"empty computer", Player, Empty},
		{"same identity", Player, Player},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBoard(tc.player, tc.computer)
			require.ErrorIs(t, err, ErrInvalidDisc)
		})
	}
}

func TestDropLandsOnBottom(t *testing.T) {
	b := newTestBoard(t)

	row, err := b.Drop(0, Player)
	require.NoError(t, err)
	require.Equal(t, Rows-1, row)
	require.Equal(t, Player, b.Cell(Rows-1, 0))

	row, err = b.Drop(0, Computer)
	require.NoError(t, err)
	require.Equal(t, Rows-2, row)
	require.Equal(t, Computer, b.Cell(Rows-2, 0))
}

func TestDropUndoRoundTrip(t *testing.T) {
	b := newTestBoard(t)
	_, err := b.Drop(3, Computer)
	require.NoError(t, err)
	_, err = b.Drop(4, Player)
	require.NoError(t, err)

	for col := 0; col < Columns; col++ {
		before := b.Grid()
		_, err := b.Drop(col, Player)
		require.NoError(t, err)
		require.NoError(t, b.Undo(col))
		require.Equal(t, before, b.Grid(), "column %d", col)
	}
}

func TestDropAndUndoBounds(t *testing.T) {
	b := newTestBoard(t)

	for _, col := range []int{-1, Columns} {
		_, err := b.Drop(col, Player)
		require.ErrorIs(t, err, ErrOutOfBounds)
		require.ErrorIs(t, b.Undo(col), ErrOutOfBounds)
	}

	require.ErrorIs(t, b.Undo(0), ErrEmptyColumn)
	require.Equal(t, [Rows][Columns]Disc{}, b.Grid())
}

func TestDropRejectsUnknownDisc(t *testing.T) {
	b := newTestBoard(t)

	_, err := b.Drop(0, Disc(7))
	require.ErrorIs(t, err, ErrInvalidDisc)
	_, err = b.Drop(0, Empty)
	require.ErrorIs(t, err, ErrInvalidDisc)
	require.Zero(t, b.MoveCount())
}

func TestDropIntoFullColumn(t *testing.T) {
	b := newTestBoard(t)
	for i := 0; i < Rows; i++ {
		_, err := b.Drop(0, Player)
		require.NoError(t, err)
	}
	before := b.Grid()

	_, err := b.Drop(0, Player)
	require.ErrorIs(t, err, ErrColumnFull)
	require.Equal(t, before, b.Grid(), "failed drop must not touch the grid")
	require.False(t, b.IsValidMove(0))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, b.ValidMoves())
}

func TestIsValidMove(t *testing.T) {
	b := newTestBoard(t)
	require.False(t, b.IsValidMove(-1))
	require.False(t, b.IsValidMove(Columns))
	for col := 0; col < Columns; col++ {
		require.True(t, b.IsValidMove(col))
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.ValidMoves())
}

func TestGravityAfterRandomDrops(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := newTestBoard(t)
	disc := Player

	for !b.IsFull() {
		moves := b.ValidMoves()
		_, err := b.Drop(moves[rng.Intn(len(moves))], disc)
		require.NoError(t, err)
		disc = b.Opponent(disc)

		for col := 0; col < Columns; col++ {
			seenDisc := false
			for row := 0; row < Rows; row++ {
				if b.Cell(row, col) != Empty {
					seenDisc = true
				} else {
					require.False(t, seenDisc, "floating disc in column %d", col)
				}
			}
		}
	}

	require.Empty(t, b.ValidMoves())
	require.Equal(t, Rows*Columns, b.MoveCount())
}

func TestIsFull(t *testing.T) {
	b := newTestBoard(t)
	require.False(t, b.IsFull())

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			_, err := b.Drop(col, Player)
			require.NoError(t, err)
		}
	}
	require.True(t, b.IsFull())

	require.NoError(t, b.Undo(6))
	require.False(t, b.IsFull())
}

func TestNewBoardFromGrid(t *testing.T) {
	var grid [Rows][Columns]Disc
	grid[5][0] = Player
	grid[4][0] = Computer
	grid[5][3] = Computer

	b, err := NewBoardFromGrid(grid, Player, Computer)
	require.NoError(t, err)
	require.Equal(t, grid, b.Grid())
	require.Equal(t, 3, b.MoveCount())

	t.Run("floating disc", func(t *testing.T) {
		bad := grid
		bad[2][6] = Player
		_, err := NewBoardFromGrid(bad, Player, Computer)
		require.ErrorIs(t, err, ErrFloatingDisc)
	})

	t.Run("unknown cell value", func(t *testing.T) {
		bad := grid
		bad[5][6] = Disc(9)
		_, err := NewBoardFromGrid(bad, Player, Computer)
		require.ErrorIs(t, err, ErrInvalidCell)
	})
}

func TestCloneIsIndependent(t *testing.T) {
	b := newTestBoard(t)
	_, err := b.Drop(2, Player)
	require.NoError(t, err)

	c := b.Clone()
	_, err = c.Drop(2, Computer)
	require.NoError(t, err)

	require.Equal(t, 1, b.MoveCount())
	require.Equal(t, 2, c.MoveCount())
	require.Equal(t, Player, c.PlayerDisc())
	require.Equal(t, Computer, c.ComputerDisc())
}

func TestOpponent(t *testing.T) {
	b := newTestBoard(t)
	require.Equal(t, Computer, b.Opponent(Player))
	require.Equal(t, Player, b.Opponent(Computer))
	require.Equal(t, Empty, b.Opponent(Empty))
}

func TestBoardString(t *testing.T) {
	b := newTestBoard(t)
	_, err := b.Drop(0, Player)
	require.NoError(t, err)
	_, err = b.Drop(6, Computer)
	require.NoError(t, err)

	want := "0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0\n" +
		"1 0 0 0 0 0 2\n"
	require.Equal(t, want, b.String())
}
