package bot

import (
	"context"
	"math"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ParallelSearch scores every root move in its own goroutine. Each branch gets
// a private copy of the board and a full window, so the reduction below picks
// the same move and score as Search does sequentially. The caller's board is
// only read. Cancelling ctx stops every branch mid-search.
func (e *Engine) ParallelSearch(ctx context.Context, board *domain.Board, depth int, toMove domain.Disc) (Result, error) {
	if err := e.validate(depth, toMove); err != nil {
		return Result{Move: domain.NoMove}, err
	}

	if depth == 0 || board.IsFull() || board.IsWinner(e.opponent(toMove)) {
		return Result{Move: domain.NoMove, Score: board.Evaluate()}, nil
	}

	moves := OrderMoves(board.ValidMoves())
	if len(moves) == 0 {
		return Result{Move: domain.NoMove, Score: board.Evaluate()}, nil
	}

	branches := make([]*domain.Board, len(moves))
	for i := range moves {
		branches[i] = board.Clone()
	}

	scores := make([]int, len(moves))
	g, gctx := errgroup.WithContext(ctx)
	for i, move := range moves {
		i, move := i, move
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			branch := branches[i]
			if _, err := branch.Drop(move, toMove); err != nil {
				return err
			}
			child, err := e.SearchContext(gctx, branch, MinScore, MaxScore, depth-1, e.opponent(toMove))
			if err != nil {
				return err
			}
			scores[i] = child.Score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{Move: domain.NoMove}, err
	}

	maximizing := toMove == e.computerDisc
	best := Result{Move: moves[0], Score: math.MinInt}
	if !maximizing {
		best.Score = math.MaxInt
	}
	for i, move := range moves {
		if (maximizing && scores[i] > best.Score) || (!maximizing && scores[i] < best.Score) {
			best = Result{Move: move, Score: scores[i]}
		}
	}

	log.Debug().
		Str("component", "bot").
		Int("depth", depth).
		Int("branches", len(moves)).
		Int("move", best.Move).
		Int("score", best.Score).
		Msg("parallel search finished")

	return best, nil
}
