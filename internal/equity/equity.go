// Package equity estimates win/tie/lose probabilities for a hold'em hand
// against N opponents holding uniformly random cards, by Monte Carlo
// sampling of the unseen portion of the deck.
package equity

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/evaluator"
	"github.com/lox/holdem-advisor/internal/randutil"
)

const (
	// MinOpponents and MaxOpponents bound the simulated field size
	MinOpponents = 1
	MaxOpponents = 9

	// batchSize is how many trials a worker runs between cancellation and
	// deadline checks
	batchSize = 128

	// sequentialThreshold is the trial count under which worker fan-out
	// costs more than it saves
	sequentialThreshold = 512
)

// ErrInvalidParameter is returned for out-of-range simulation inputs
var ErrInvalidParameter = errors.New("invalid parameter")

// Result holds the estimated outcome probabilities. Win+Tie+Lose sums to
// 1 (within floating point) whenever Trials > 0. Trials is the number of
// trials actually completed, which is less than requested when the caller's
// context or the simulator's time budget expired first.
type Result struct {
	Win    float64
	Tie    float64
	Lose   float64
	Trials int
}

// Simulator runs Monte Carlo equity estimates. The zero value is not
// usable; construct with New.
type Simulator struct {
	workers int
	budget  time.Duration
	clock   quartz.Clock
	logger  *log.Logger
}

// Option configures a Simulator
type Option func(*Simulator)

// WithWorkers sets the number of parallel workers (default: NumCPU, capped at 8)
func WithWorkers(n int) Option {
	return func(s *Simulator) { s.workers = n }
}

// WithBudget sets a wall-clock time budget. When it expires the estimate
// is returned from the trials completed so far.
func WithBudget(d time.Duration) Option {
	return func(s *Simulator) { s.budget = d }
}

// WithClock injects the clock used for budget enforcement (tests use a mock)
func WithClock(c quartz.Clock) Option {
	return func(s *Simulator) { s.clock = c }
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) { s.logger = l.WithPrefix("equity") }
}

// New creates a Simulator
func New(opts ...Option) *Simulator {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	s := &Simulator{
		workers: workers,
		clock:   quartz.NewReal(),
		logger:  log.Default().WithPrefix("equity"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = 1
	}
	return s
}

// workerCounts accumulates one worker's outcomes. Counts from any subset of
// workers merge by addition.
type workerCounts struct {
	wins      int
	ties      int
	completed int
}

// Estimate runs trials Monte Carlo trials of the hand against opponents
// players each dealt two random unseen cards, completing the board to five
// cards per trial. The same seed with the same inputs always produces the
// same result.
//
// If ctx is cancelled (or the simulator's budget expires) before all trials
// finish, the result covers the trials completed so far and Result.Trials
// reports the achieved count.
func (s *Simulator) Estimate(ctx context.Context, hole, board []deck.Card, opponents, trials int, seed int64) (Result, error) {
	if len(hole) != 2 {
		return Result{}, fmt.Errorf("%w: need exactly 2 hole cards, got %d", ErrInvalidParameter, len(hole))
	}
	if len(board) > 5 {
		return Result{}, fmt.Errorf("%w: board has %d cards, maximum is 5", ErrInvalidParameter, len(board))
	}
	if opponents < MinOpponents || opponents > MaxOpponents {
		return Result{}, fmt.Errorf("%w: opponent count %d outside [%d,%d]", ErrInvalidParameter, opponents, MinOpponents, MaxOpponents)
	}
	if trials < 1 {
		return Result{}, fmt.Errorf("%w: trial count %d must be positive", ErrInvalidParameter, trials)
	}

	known := make([]deck.Card, 0, len(hole)+len(board))
	known = append(known, hole...)
	known = append(known, board...)
	if err := evaluator.ValidateUnique(known); err != nil {
		return Result{}, err
	}

	boardNeed := 5 - len(board)
	drawPerTrial := opponents*2 + boardNeed
	if drawPerTrial > 52-len(known) {
		return Result{}, fmt.Errorf("%w: trial needs %d cards but only %d are unseen",
			deck.ErrInsufficient, drawPerTrial, 52-len(known))
	}

	workers := s.workers
	if trials < sequentialThreshold {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}

	var deadline time.Time
	if s.budget > 0 {
		deadline = s.clock.Now().Add(s.budget)
	}

	perWorker := trials / workers
	remainder := trials % workers

	results := make([]workerCounts, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		quota := perWorker
		if w < remainder {
			quota++
		}
		rng := randutil.ForWorker(seed, w)
		counts := &results[w]

		g.Go(func() error {
			pool := deck.NewExcluding(rng, known...)
			drawn := make([]deck.Card, drawPerTrial)
			playerHand := make([]deck.Card, 0, 7)
			oppHand := make([]deck.Card, 0, 7)
			fullBoard := make([]deck.Card, 0, 5)

			for done := 0; done < quota; {
				// Bounded batch between cancellation checks
				batch := batchSize
				if rest := quota - done; rest < batch {
					batch = rest
				}

				select {
				case <-ctx.Done():
					return nil
				default:
				}
				if !deadline.IsZero() && !s.clock.Now().Before(deadline) {
					return nil
				}

				for i := 0; i < batch; i++ {
					if _, err := pool.SampleInto(drawn); err != nil {
						return err
					}

					fullBoard = append(fullBoard[:0], board...)
					fullBoard = append(fullBoard, drawn[opponents*2:]...)

					playerHand = append(playerHand[:0], hole...)
					playerHand = append(playerHand, fullBoard...)
					playerScore := evaluator.EvaluateBestUnchecked(playerHand)

					// Player outcome against the strongest opponent
					beaten := false
					tied := false
					for opp := 0; opp < opponents && !beaten; opp++ {
						oppHand = append(oppHand[:0], drawn[opp*2], drawn[opp*2+1])
						oppHand = append(oppHand, fullBoard...)
						switch playerScore.Compare(evaluator.EvaluateBestUnchecked(oppHand)) {
						case -1:
							beaten = true
						case 0:
							tied = true
						}
					}

					switch {
					case beaten:
						// lose
					case tied:
						counts.ties++
					default:
						counts.wins++
					}
					counts.completed++
				}
				done += batch
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total workerCounts
	for _, c := range results {
		total.wins += c.wins
		total.ties += c.ties
		total.completed += c.completed
	}

	if total.completed < trials {
		s.logger.Warn("simulation truncated",
			"requested", trials, "completed", total.completed)
	}

	res := Result{Trials: total.completed}
	if total.completed > 0 {
		n := float64(total.completed)
		res.Win = float64(total.wins) / n
		res.Tie = float64(total.ties) / n
		res.Lose = float64(total.completed-total.wins-total.ties) / n
	}
	return res, nil
}
