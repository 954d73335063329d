package domain

import (
	"fmt"
	"strings"
)

// Board is the 6x7 grid together with the two disc identities in play.
// Row 0 is the top row and row Rows-1 the bottom one. The grid is only ever
// written by Drop and Undo so that every column stays bottom-aligned.
type Board struct {
	grid         [Rows][Columns]Disc
	playerDisc   Disc
	computerDisc Disc
}

func NewBoard(playerDisc, computerDisc Disc) (*Board, error) {
	if playerDisc == Empty || computerDisc == Empty || playerDisc == computerDisc {
		return nil, ErrInvalidDisc
	}
	return &Board{playerDisc: playerDisc, computerDisc: computerDisc}, nil
}

// NewBoardFromGrid seeds a board with an existing position. Every cell must be
// empty or one of the two identities and no disc may float above an empty cell.
func NewBoardFromGrid(grid [Rows][Columns]Disc, playerDisc, computerDisc Disc) (*Board, error) {
	b, err := NewBoard(playerDisc, computerDisc)
	if err != nil {
		return nil, err
	}

	for col := 0; col < Columns; col++ {
		seenDisc := false
		for row := 0; row < Rows; row++ {
			cell := grid[row][col]
			switch {
			case cell == Empty:
				if seenDisc {
					return nil, fmt.Errorf("row %d column %d: %w", row, col, ErrFloatingDisc)
				}
			case b.owns(cell):
				seenDisc = true
			default:
				return nil, fmt.Errorf("row %d column %d: %w", row, col, ErrInvalidCell)
			}
		}
	}

	b.grid = grid
	return b, nil
}

func (b *Board) PlayerDisc() Disc   { return b.playerDisc }
func (b *Board) ComputerDisc() Disc { return b.computerDisc }

// Opponent returns the other identity, or Empty when disc is not in play.
func (b *Board) Opponent(disc Disc) Disc {
	switch disc {
	case b.playerDisc:
		return b.computerDisc
	case b.computerDisc:
		return b.playerDisc
	}
	return Empty
}

func (b *Board) owns(disc Disc) bool {
	return disc == b.playerDisc || disc == b.computerDisc
}

// Cell returns the value at (row, column). Callers must stay in bounds.
func (b *Board) Cell(row, column int) Disc {
	return b.grid[row][column]
}

// Grid returns a copy of the cells.
func (b *Board) Grid() [Rows][Columns]Disc {
	return b.grid
}

// Clone returns an independently owned copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here grid[0] represents the top row (0 -> top and 5 -> bottom)
	return b.grid[0][column] == Empty
}

// Drop places disc in the lowest empty cell of column and returns its row.
func (b *Board) Drop(column int, disc Disc) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrOutOfBounds
	}
	if !b.owns(disc) {
		return -1, ErrInvalidDisc
	}

	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][column] == Empty {
			b.grid[row][column] = disc
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// Undo removes the topmost disc of column. Callers undo in the reverse order
// of their drops; the board keeps no history of its own.
func (b *Board) Undo(column int) error {
	if column < 0 || column >= Columns {
		return ErrOutOfBounds
	}

	for row := 0; row < Rows; row++ {
		if b.grid[row][column] != Empty {
			b.grid[row][column] = Empty
			return nil
		}
	}

	return ErrEmptyColumn
}

// ValidMoves lists the playable columns in ascending order.
func (b *Board) ValidMoves() []int {
	validMoves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.IsValidMove(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

func (b *Board) IsFull() bool {
	// the top row is the last one to fill up in every column
	for c := 0; c < Columns; c++ {
		if b.grid[0][c] == Empty {
			return false
		}
	}

	return true
}

// MoveCount is the number of discs on the board.
func (b *Board) MoveCount() int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.grid[row][col] != Empty {
				count++
			}
		}
	}
	return count
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", b.grid[row][col])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
