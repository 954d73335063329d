package bot

import (
	"context"
	"math"
	"sort"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

const (
	// MinScore and MaxScore open the alpha-beta window at the root.
	MinScore = math.MinInt32
	MaxScore = math.MaxInt32
)

// Result is the column chosen by a search and the score backing it. Move is
// domain.NoMove when the searched position had nothing left to play.
type Result struct {
	Move  int
	Score int
}

// HasMove reports whether the result carries a column to play.
func (r Result) HasMove() bool {
	return r.Move != domain.NoMove
}

// Engine picks the computer's move with depth-limited minimax and alpha-beta
// pruning. It holds no board between calls; during a call it drops and undoes
// discs on the board it was given and leaves it as it found it.
type Engine struct {
	playerDisc   domain.Disc
	computerDisc domain.Disc
}

func NewEngine(playerDisc, computerDisc domain.Disc) (*Engine, error) {
	if playerDisc == domain.Empty || computerDisc == domain.Empty || playerDisc == computerDisc {
		return nil, domain.ErrInvalidDisc
	}
	return &Engine{playerDisc: playerDisc, computerDisc: computerDisc}, nil
}

func (e *Engine) opponent(disc domain.Disc) domain.Disc {
	if disc == e.computerDisc {
		return e.playerDisc
	}
	return e.computerDisc
}

func (e *Engine) validate(depth int, toMove domain.Disc) error {
	if toMove != e.playerDisc && toMove != e.computerDisc {
		return domain.ErrInvalidDisc
	}
	if depth < 0 {
		return domain.ErrInvalidDepth
	}
	return nil
}

// BestMove searches depth plies ahead for the computer with a full window.
func (e *Engine) BestMove(board *domain.Board, depth int) (Result, error) {
	return e.BestMoveContext(context.Background(), board, depth)
}

// BestMoveContext is BestMove that gives up once ctx is done.
func (e *Engine) BestMoveContext(ctx context.Context, board *domain.Board, depth int) (Result, error) {
	return e.SearchContext(ctx, board, MinScore, MaxScore, depth, e.computerDisc)
}

// Search runs minimax with alpha-beta pruning from the side of toMove. The
// computer maximises and the player minimises.
func (e *Engine) Search(board *domain.Board, alpha, beta, depth int, toMove domain.Disc) (Result, error) {
	return e.SearchContext(context.Background(), board, alpha, beta, depth, toMove)
}

// SearchContext is Search with cancellation. Every interior node checks ctx,
// and a cancelled search returns ctx.Err() with the board restored.
func (e *Engine) SearchContext(ctx context.Context, board *domain.Board, alpha, beta, depth int, toMove domain.Disc) (Result, error) {
	if err := e.validate(depth, toMove); err != nil {
		return Result{Move: domain.NoMove}, err
	}

	// only the side that just moved can have completed a line
	if depth == 0 || board.IsFull() || board.IsWinner(e.opponent(toMove)) {
		return Result{Move: domain.NoMove, Score: board.Evaluate()}, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{Move: domain.NoMove}, err
	}

	moves := OrderMoves(board.ValidMoves())
	if len(moves) == 0 {
		return Result{Move: domain.NoMove, Score: board.Evaluate()}, nil
	}

	if toMove == e.computerDisc {
		best := Result{Move: moves[0], Score: math.MinInt}
		for _, move := range moves {
			score, err := e.tryMove(ctx, board, move, alpha, beta, depth, toMove)
			if err != nil {
				return Result{Move: domain.NoMove}, err
			}
			if score > best.Score {
				best = Result{Move: move, Score: score}
			}
			alpha = max(alpha, best.Score)
			if alpha >= beta {
				break // Beta cutoff
			}
		}
		return best, nil
	}

	best := Result{Move: moves[0], Score: math.MaxInt}
	for _, move := range moves {
		score, err := e.tryMove(ctx, board, move, alpha, beta, depth, toMove)
		if err != nil {
			return Result{Move: domain.NoMove}, err
		}
		if score < best.Score {
			best = Result{Move: move, Score: score}
		}
		beta = min(beta, best.Score)
		if beta <= alpha {
			break // Alpha cutoff
		}
	}
	return best, nil
}

// tryMove plays move, scores the resulting position and takes the disc back
// on every return path.
func (e *Engine) tryMove(ctx context.Context, board *domain.Board, move, alpha, beta, depth int, toMove domain.Disc) (score int, err error) {
	if _, err := board.Drop(move, toMove); err != nil {
		return 0, err
	}
	defer func() {
		if undoErr := board.Undo(move); undoErr != nil && err == nil {
			err = undoErr
		}
	}()

	child, err := e.SearchContext(ctx, board, alpha, beta, depth-1, e.opponent(toMove))
	if err != nil {
		return 0, err
	}
	return child.Score, nil
}

// OrderMoves sorts columns centre first. Columns at the same distance from the
// centre keep their ascending order.
func OrderMoves(moves []int) []int {
	ordered := make([]int, len(moves))
	copy(ordered, moves)
	sort.SliceStable(ordered, func(i, j int) bool {
		return distanceFromCenter(ordered[i]) < distanceFromCenter(ordered[j])
	})
	return ordered
}

func distanceFromCenter(column int) int {
	d := column - domain.Columns/2
	if d < 0 {
		return -d
	}
	return d
}
