package domain

// Game tracks one live match on a single board: whose turn it is and whether
// the match has finished.
type Game struct {
	Board         *Board
	CurrentPlayer Disc
	Status        GameStatus
	Winner        Disc
	MoveCount     int
}

func NewGame(playerDisc, computerDisc, first Disc) (*Game, error) {
	board, err := NewBoard(playerDisc, computerDisc)
	if err != nil {
		return nil, err
	}
	if !board.owns(first) {
		return nil, ErrInvalidDisc
	}

	return &Game{
		Board:         board,
		CurrentPlayer: first,
		Status:        StatusActive,
		Winner:        Empty,
		MoveCount:     0,
	}, nil
}

// MakeMove drops the current player's disc into column, settles the game
// status and hands the turn over. It returns the row the disc landed on.
func (g *Game) MakeMove(column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameOver
	}

	row, err := g.Board.Drop(column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	g.MoveCount++

	if g.Board.CheckWinAt(row, column, g.CurrentPlayer) {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = g.Board.Opponent(g.CurrentPlayer)

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
