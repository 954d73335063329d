package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/engine/pkg/uid"
	"github.com/rs/zerolog/log"
)

// Request asks for the best move in a position. Board rows run top to bottom;
// cells hold 0 (empty), 1 (player) or 2 (computer).
type Request struct {
	Board      [][]int `json:"board"`
	ToMove     int     `json:"toMove,omitempty"`
	Depth      *int    `json:"depth,omitempty"`
	Difficulty string  `json:"difficulty,omitempty"`
	Parallel   bool    `json:"parallel,omitempty"`
}

type Response struct {
	RequestID  string `json:"requestId"`
	Move       *int   `json:"move"`
	Score      int    `json:"score"`
	Evaluation int    `json:"evaluation"`
	Depth      int    `json:"depth"`
	ValidMoves []int  `json:"validMoves"`
	Terminal   bool   `json:"terminal"`
	Winner     int    `json:"winner"`
	ElapsedMs  int64  `json:"elapsedMs"`
}

// Service answers analysis requests. Every request gets its own board, so a
// single Service can be shared between concurrent handlers.
type Service struct {
	engine       *bot.Engine
	defaultDepth int
	maxDepth     int
	parallel     bool
}

func NewService(defaultDepth, maxDepth int, parallel bool) (*Service, error) {
	if defaultDepth < 0 || maxDepth < defaultDepth {
		return nil, fmt.Errorf("default depth %d, max depth %d: %w", defaultDepth, maxDepth, domain.ErrInvalidDepth)
	}
	// the identities are fixed by the wire format
	engine, err := bot.NewEngine(domain.Player, domain.Computer)
	if err != nil {
		return nil, err
	}
	return &Service{
		engine:       engine,
		defaultDepth: defaultDepth,
		maxDepth:     maxDepth,
		parallel:     parallel,
	}, nil
}

// IsClientError reports whether err was caused by a bad request rather than
// by the service itself.
func IsClientError(err error) bool {
	for _, target := range []error{
		domain.ErrInvalidGrid,
		domain.ErrInvalidCell,
		domain.ErrFloatingDisc,
		domain.ErrInvalidDisc,
		domain.ErrInvalidDepth,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (s *Service) Analyze(ctx context.Context, req Request) (*Response, error) {
	board, err := ParseBoard(req.Board)
	if err != nil {
		return nil, err
	}

	toMove := domain.Computer
	if req.ToMove != 0 {
		toMove = domain.Disc(req.ToMove)
		if toMove != domain.Player && toMove != domain.Computer {
			return nil, fmt.Errorf("toMove %d: %w", req.ToMove, domain.ErrInvalidDisc)
		}
	}

	depth, err := s.resolveDepth(req)
	if err != nil {
		return nil, err
	}

	requestID := uid.GenerateRequestID()
	start := time.Now()

	var res bot.Result
	if req.Parallel || s.parallel {
		res, err = s.engine.ParallelSearch(ctx, board, depth, toMove)
	} else {
		res, err = s.engine.SearchContext(ctx, board, bot.MinScore, bot.MaxScore, depth, toMove)
	}
	if err != nil {
		return nil, fmt.Errorf("analysis %s: %w", requestID, err)
	}
	elapsed := time.Since(start)

	winner := domain.Empty
	switch {
	case board.IsWinner(domain.Player):
		winner = domain.Player
	case board.IsWinner(domain.Computer):
		winner = domain.Computer
	}

	resp := &Response{
		RequestID:  requestID,
		Score:      res.Score,
		Evaluation: board.Evaluate(),
		Depth:      depth,
		ValidMoves: board.ValidMoves(),
		Terminal:   winner != domain.Empty || board.IsFull(),
		Winner:     int(winner),
		ElapsedMs:  elapsed.Milliseconds(),
	}
	if res.HasMove() {
		move := res.Move
		resp.Move = &move
	}

	log.Info().
		Str("component", "analysis").
		Str("requestId", requestID).
		Int("depth", depth).
		Int("toMove", int(toMove)).
		Interface("move", resp.Move).
		Int("score", res.Score).
		Dur("elapsed", elapsed).
		Msg("position analysed")

	return resp, nil
}

func (s *Service) resolveDepth(req Request) (int, error) {
	depth := s.defaultDepth
	switch {
	case req.Depth != nil:
		depth = *req.Depth
	case req.Difficulty != "":
		if !bot.IsKnownDifficulty(req.Difficulty) {
			return 0, fmt.Errorf("difficulty %q: %w", req.Difficulty, domain.ErrInvalidDepth)
		}
		depth = bot.DepthForDifficulty(req.Difficulty, s.defaultDepth)
	}

	if depth < 0 || depth > s.maxDepth {
		return 0, fmt.Errorf("depth %d not in [0, %d]: %w", depth, s.maxDepth, domain.ErrInvalidDepth)
	}
	return depth, nil
}

// ParseBoard turns a wire grid into a board owned by the caller.
func ParseBoard(cells [][]int) (*domain.Board, error) {
	if len(cells) != domain.Rows {
		return nil, fmt.Errorf("got %d rows, want %d: %w", len(cells), domain.Rows, domain.ErrInvalidGrid)
	}

	var grid [domain.Rows][domain.Columns]domain.Disc
	for row, line := range cells {
		if len(line) != domain.Columns {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", row, len(line), domain.Columns, domain.ErrInvalidGrid)
		}
		for col, v := range line {
			grid[row][col] = domain.Disc(v)
		}
	}

	return domain.NewBoardFromGrid(grid, domain.Player, domain.Computer)
}
