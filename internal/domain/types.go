package domain

// Disc is the value held by a single cell. Zero is an empty cell, the two
// non-zero identities belong to the player and the computer.
type Disc int

const (
	Empty    Disc = 0
	Player   Disc = 1
	Computer Disc = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// NoMove is returned by the search when no legal column exists.
const NoMove = -1

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfBounds  Error = "column out of bounds"
	ErrColumnFull   Error = "column is full"
	ErrEmptyColumn  Error = "column is empty"
	ErrInvalidDisc  Error = "invalid disc"
	ErrInvalidCell  Error = "invalid cell value"
	ErrFloatingDisc Error = "disc is not supported from below"
	ErrInvalidDepth Error = "invalid search depth"
	ErrGameOver     Error = "game is already finished"
	ErrNotYourTurn  Error = "not your turn"
	ErrInvalidGrid  Error = "invalid board shape"
)
