package domain

// direction is a (deltaRow, deltaCol) step along one of the four axes a run
// can follow.
type direction struct {
	dRow, dCol int
}

var directions = [4]direction{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{-1, 1}, // diagonal /
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

// fullWindow reports whether the length cells starting at (row, col) along d
// are in bounds and all equal to disc.
func (b *Board) fullWindow(row, col int, d direction, length int, disc Disc) bool {
	endRow, endCol := row+d.dRow*(length-1), col+d.dCol*(length-1)
	if !inBounds(row, col) || !inBounds(endRow, endCol) {
		return false
	}
	for i := 0; i < length; i++ {
		if b.grid[row+d.dRow*i][col+d.dCol*i] != disc {
			return false
		}
	}
	return true
}

// countWindows counts every in-bounds window of the given length, in all four
// directions, made up only of disc. A window holding any other value is not
// a run and is skipped.
func (b *Board) countWindows(disc Disc, length int) int {
	count := 0
	for _, d := range directions {
		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				if b.fullWindow(row, col, d, length, disc) {
					count++
				}
			}
		}
	}
	return count
}

// IsWinner reports whether disc has ToWin in a row anywhere on the board.
func (b *Board) IsWinner(disc Disc) bool {
	if disc == Empty {
		return false
	}
	for _, d := range directions {
		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				if b.fullWindow(row, col, d, ToWin, disc) {
					return true
				}
			}
		}
	}
	return false
}

// CheckWinAt only looks at the lines passing through (row, column), which is
// enough right after a disc has been dropped there.
func (b *Board) CheckWinAt(row, column int, disc Disc) bool {
	if !inBounds(row, column) || disc == Empty || b.grid[row][column] != disc {
		return false
	}
	for _, d := range directions {
		total := 1 +
			b.CountDiskInDirection(row, column, d.dRow, d.dCol, disc) +
			b.CountDiskInDirection(row, column, -d.dRow, -d.dCol, disc)
		if total >= ToWin {
			return true
		}
	}
	return false
}

// this counts the number of disks in a specific direction
func (b *Board) CountDiskInDirection(row, column, deltaRow, deltaCol int, disc Disc) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for inBounds(r, c) && b.grid[r][c] == disc {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
