package equity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/evaluator"
)

func TestEstimateDeterministicPerSeed(t *testing.T) {
	sim := New(WithWorkers(4))
	hole := deck.MustParseCards("As Kd")
	board := deck.MustParseCards("7h 8h 9c")

	first, err := sim.Estimate(context.Background(), hole, board, 2, 2000, 42)
	require.NoError(t, err)
	second, err := sim.Estimate(context.Background(), hole, board, 2, 2000, 42)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed and inputs must reproduce exactly")
	assert.Equal(t, 2000, first.Trials)
}

func TestEstimateProbabilitiesSumToOne(t *testing.T) {
	sim := New(WithWorkers(4))
	hole := deck.MustParseCards("Qs Jh")

	res, err := sim.Estimate(context.Background(), hole, nil, 3, 5000, 7)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.Win+res.Tie+res.Lose, 1e-9)
	assert.GreaterOrEqual(t, res.Win, 0.0)
	assert.GreaterOrEqual(t, res.Tie, 0.0)
	assert.GreaterOrEqual(t, res.Lose, 0.0)
}

func TestEstimatePocketAcesHeadsUp(t *testing.T) {
	// Pocket aces against one random hand win roughly 85% of the time
	sim := New(WithWorkers(4))
	hole := deck.MustParseCards("As Ah")

	res, err := sim.Estimate(context.Background(), hole, nil, 1, 20000, 1)
	require.NoError(t, err)

	assert.Greater(t, res.Win, 0.82, "got %.4f", res.Win)
	assert.Less(t, res.Win, 0.88, "got %.4f", res.Win)
}

func TestEstimateMoreOpponentsLowerEquity(t *testing.T) {
	sim := New(WithWorkers(4))
	hole := deck.MustParseCards("As Ah")

	headsUp, err := sim.Estimate(context.Background(), hole, nil, 1, 10000, 3)
	require.NoError(t, err)
	multiway, err := sim.Estimate(context.Background(), hole, nil, 8, 10000, 3)
	require.NoError(t, err)

	assert.Greater(t, headsUp.Win, multiway.Win)
}

func TestEstimateFullBoardTie(t *testing.T) {
	// A royal flush on the board plays for everyone: every trial chops
	sim := New(WithWorkers(2))
	hole := deck.MustParseCards("2h 3d")
	board := deck.MustParseCards("As Ks Qs Js Ts")

	res, err := sim.Estimate(context.Background(), hole, board, 4, 1000, 9)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Win)
	assert.Equal(t, 1.0, res.Tie)
	assert.Equal(t, 0.0, res.Lose)
	assert.Equal(t, 1000, res.Trials)
}

func TestEstimateValidation(t *testing.T) {
	sim := New()
	ctx := context.Background()
	hole := deck.MustParseCards("As Kd")

	tests := []struct {
		name      string
		hole      []deck.Card
		board     []deck.Card
		opponents int
		trials    int
		wantErr   error
	}{
		{"one hole card", hole[:1], nil, 1, 100, ErrInvalidParameter},
		{"three hole cards", deck.MustParseCards("As Kd Qh"), nil, 1, 100, ErrInvalidParameter},
		{"six board cards", hole, deck.MustParseCards("2h 3h 4h 5h 6h 7h"), 1, 100, ErrInvalidParameter},
		{"zero opponents", hole, nil, 0, 100, ErrInvalidParameter},
		{"ten opponents", hole, nil, 10, 100, ErrInvalidParameter},
		{"zero trials", hole, nil, 1, 0, ErrInvalidParameter},
		{"hole card repeated on board", hole, deck.MustParseCards("As 7h 8h"), 1, 100, evaluator.ErrDuplicateCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.Estimate(ctx, tt.hole, tt.board, tt.opponents, tt.trials, 1)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestEstimateCancelledContext(t *testing.T) {
	sim := New(WithWorkers(2))
	hole := deck.MustParseCards("As Kd")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := sim.Estimate(ctx, hole, nil, 1, 10000, 5)
	require.NoError(t, err, "cancellation yields a partial result, not an error")
	assert.Equal(t, 0, res.Trials)
	assert.Equal(t, Result{}, res)
}

func TestEstimateBudgetTruncates(t *testing.T) {
	sim := New(WithWorkers(2), WithBudget(time.Nanosecond))
	hole := deck.MustParseCards("As Kd")

	res, err := sim.Estimate(context.Background(), hole, nil, 1, 100000, 5)
	require.NoError(t, err)
	assert.Less(t, res.Trials, 100000, "budget expiry must truncate the run")
}

func TestEstimateMockClockCompletesWithinBudget(t *testing.T) {
	// With a frozen clock the budget never elapses and every trial runs
	clock := quartz.NewMock(t)
	sim := New(WithWorkers(2), WithBudget(time.Second), WithClock(clock))
	hole := deck.MustParseCards("As Kd")

	res, err := sim.Estimate(context.Background(), hole, nil, 1, 2000, 5)
	require.NoError(t, err)
	assert.Equal(t, 2000, res.Trials)
}

func TestEstimateSequentialSmallRuns(t *testing.T) {
	// Below the fan-out threshold results must still be seed-stable
	sim := New(WithWorkers(8))
	hole := deck.MustParseCards("Th Td")

	first, err := sim.Estimate(context.Background(), hole, nil, 1, 100, 11)
	require.NoError(t, err)
	second, err := sim.Estimate(context.Background(), hole, nil, 1, 100, 11)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 100, first.Trials)
}
