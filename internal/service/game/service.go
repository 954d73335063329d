package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/engine/pkg/uid"
	"github.com/rs/zerolog/log"
)

// Options configures the machine side of a session.
type Options struct {
	Depth    int
	Parallel bool
}

// GameSession is one human-versus-machine match: a single board, the engine
// that plays the computer's side and the bookkeeping around them.
type GameSession struct {
	GameID     string
	Game       *domain.Game
	Engine     *bot.Engine
	Options    Options
	Reason     string
	CreatedAt  time.Time
	FinishedAt time.Time
	mu         sync.Mutex
}

// MoveResult describes a move that has just been applied.
type MoveResult struct {
	Column   int
	Row      int
	Player   domain.Disc
	Score    int
	Elapsed  time.Duration
	Status   domain.GameStatus
	Winner   domain.Disc
	NextTurn domain.Disc
}

func NewGameSession(first domain.Disc, opts Options) (*GameSession, error) {
	if opts.Depth < 0 {
		return nil, domain.ErrInvalidDepth
	}

	g, err := domain.NewGame(domain.Player, domain.Computer, first)
	if err != nil {
		return nil, err
	}
	engine, err := bot.NewEngine(domain.Player, domain.Computer)
	if err != nil {
		return nil, err
	}

	gs := &GameSession{
		GameID:    uid.GenerateGameID(),
		Game:      g,
		Engine:    engine,
		Options:   opts,
		CreatedAt: time.Now(),
	}

	log.Info().
		Str("component", "session").
		Str("gameId", gs.GameID).
		Int("depth", opts.Depth).
		Bool("parallel", opts.Parallel).
		Int("first", int(first)).
		Msg("created session")

	return gs, nil
}

// HandleMove applies the human player's move.
func (gs *GameSession) HandleMove(column int) (MoveResult, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsFinished() {
		return MoveResult{}, domain.ErrGameOver
	}
	if gs.Game.CurrentPlayer != domain.Player {
		return MoveResult{}, domain.ErrNotYourTurn
	}

	return gs.applyLocked(column, 0, 0)
}

// HandleBotMove searches for the computer's move and applies it.
func (gs *GameSession) HandleBotMove(ctx context.Context) (MoveResult, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsFinished() {
		return MoveResult{}, domain.ErrGameOver
	}
	if gs.Game.CurrentPlayer != domain.Computer {
		return MoveResult{}, domain.ErrNotYourTurn
	}

	start := time.Now()
	var (
		res bot.Result
		err error
	)
	if gs.Options.Parallel {
		res, err = gs.Engine.ParallelSearch(ctx, gs.Game.Board, gs.Options.Depth, domain.Computer)
	} else {
		res, err = gs.Engine.BestMoveContext(ctx, gs.Game.Board, gs.Options.Depth)
	}
	if err != nil {
		return MoveResult{}, fmt.Errorf("search failed: %w", err)
	}
	elapsed := time.Since(start)

	if !res.HasMove() {
		// depth 0 leaves the search without a move on a live board
		moves := bot.OrderMoves(gs.Game.Board.ValidMoves())
		if len(moves) == 0 {
			return MoveResult{}, domain.ErrGameOver
		}
		res.Move = moves[0]
	}

	log.Debug().
		Str("component", "bot").
		Str("gameId", gs.GameID).
		Int("move", res.Move).
		Int("score", res.Score).
		Dur("elapsed", elapsed).
		Msg("computer move chosen")

	return gs.applyLocked(res.Move, res.Score, elapsed)
}

// applyLocked plays column for the current player (caller must hold mu).
func (gs *GameSession) applyLocked(column, score int, elapsed time.Duration) (MoveResult, error) {
	player := gs.Game.CurrentPlayer
	row, err := gs.Game.MakeMove(column)
	if err != nil {
		return MoveResult{}, err
	}

	result := MoveResult{
		Column:   column,
		Row:      row,
		Player:   player,
		Score:    score,
		Elapsed:  elapsed,
		Status:   gs.Game.Status,
		Winner:   gs.Game.Winner,
		NextTurn: gs.Game.CurrentPlayer,
	}

	switch gs.Game.Status {
	case domain.StatusWon:
		gs.finishLocked("connect_four")
	case domain.StatusDraw:
		gs.finishLocked("draw")
	}

	return result, nil
}

func (gs *GameSession) finishLocked(reason string) {
	gs.FinishedAt = time.Now()
	gs.Reason = reason

	log.Info().
		Str("component", "session").
		Str("gameId", gs.GameID).
		Str("reason", reason).
		Int("winner", int(gs.Game.Winner)).
		Int("moves", gs.Game.MoveCount).
		Dur("duration", gs.FinishedAt.Sub(gs.CreatedAt)).
		Msg("game over")
}

// CurrentTurn returns whose move it is.
func (gs *GameSession) CurrentTurn() domain.Disc {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.CurrentPlayer
}

func (gs *GameSession) IsFinished() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.IsFinished()
}

// Render returns the board as text.
func (gs *GameSession) Render() string {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.Board.String()
}

// IsValidMove reports whether column is playable right now.
func (gs *GameSession) IsValidMove(column int) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.Board.IsValidMove(column)
}
