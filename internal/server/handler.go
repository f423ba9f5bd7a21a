package server

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/evaluator"
)

// Handler dispatches advisory requests. It is shared by every connection;
// all state lives in the request.
type Handler struct {
	advisor  *advisor.Advisor
	defaults Defaults
	logger   *log.Logger
}

// Defaults fill in request fields the client omitted
type Defaults struct {
	Trials    int
	Opponents int
}

// NewHandler creates a request handler
func NewHandler(adv *advisor.Advisor, defaults Defaults, logger *log.Logger) *Handler {
	return &Handler{
		advisor:  adv,
		defaults: defaults,
		logger:   logger.WithPrefix("handler"),
	}
}

// Handle answers a single request. Errors become error responses; the
// connection stays usable.
func (h *Handler) Handle(ctx context.Context, req *Request) *Response {
	switch req.Type {
	case TypeEvaluate:
		return h.handleEvaluate(req)
	case TypeEquity:
		return h.handleEquity(ctx, req)
	case TypeAdvise:
		return h.handleAdvise(ctx, req)
	default:
		return errorResponse(req.ID, fmt.Sprintf("unknown request type %q", req.Type))
	}
}

func (h *Handler) handleEvaluate(req *Request) *Response {
	cards, err := deck.ParseCards(req.Cards)
	if err != nil {
		return errorResponse(req.ID, err.Error())
	}

	score, err := evaluator.EvaluateBest(cards)
	if err != nil {
		return errorResponse(req.ID, err.Error())
	}

	tiebreaks := make([]int, len(score.TieBreaks))
	for i, r := range score.TieBreaks {
		tiebreaks[i] = int(r)
	}

	return &Response{
		Type:        TypeEvaluateResult,
		ID:          req.ID,
		Category:    score.Category.String(),
		TieBreaks:   tiebreaks,
		Description: score.Describe(),
	}
}

func (h *Handler) handleEquity(ctx context.Context, req *Request) *Response {
	hole, board, err := h.parseHand(req)
	if err != nil {
		return errorResponse(req.ID, err.Error())
	}

	result, err := h.advisor.Equity(ctx, hole, board,
		h.orDefault(req.Opponents, h.defaults.Opponents),
		h.orDefault(req.Trials, h.defaults.Trials),
		req.Seed)
	if err != nil {
		return errorResponse(req.ID, err.Error())
	}

	return &Response{
		Type:   TypeEquityResult,
		ID:     req.ID,
		Win:    result.Win,
		Tie:    result.Tie,
		Lose:   result.Lose,
		Trials: result.Trials,
	}
}

func (h *Handler) handleAdvise(ctx context.Context, req *Request) *Response {
	hole, board, err := h.parseHand(req)
	if err != nil {
		return errorResponse(req.ID, err.Error())
	}

	advice, err := h.advisor.Advise(ctx, advisor.Request{
		Hole:      hole,
		Board:     board,
		Opponents: h.orDefault(req.Opponents, h.defaults.Opponents),
		Trials:    h.orDefault(req.Trials, h.defaults.Trials),
		Seed:      req.Seed,
		Pot:       req.Pot,
		Call:      req.Call,
		Raise:     req.Raise,
		FoldProb:  req.FoldProb,
		RiskStyle: req.RiskStyle,
	})
	if err != nil {
		return errorResponse(req.ID, err.Error())
	}

	d := advice.Decision
	return &Response{
		Type:        TypeAdvice,
		ID:          req.ID,
		Win:         advice.Equity.Win,
		Tie:         advice.Equity.Tie,
		Lose:        advice.Equity.Lose,
		Trials:      advice.Equity.Trials,
		Hand:        advice.HandDesc,
		EVFold:      d.EVFold,
		EVCall:      d.EVCall,
		EVRaise:     d.EVRaise,
		EUFold:      d.EUFold,
		EUCall:      d.EUCall,
		EURaise:     d.EURaise,
		Recommended: d.Recommended.String(),
	}
}

func (h *Handler) parseHand(req *Request) (hole, board []deck.Card, err error) {
	hole, err = deck.ParseCards(req.Hole)
	if err != nil {
		return nil, nil, fmt.Errorf("hole: %w", err)
	}
	if req.Board != "" {
		board, err = deck.ParseCards(req.Board)
		if err != nil {
			return nil, nil, fmt.Errorf("board: %w", err)
		}
	}
	return hole, board, nil
}

func (h *Handler) orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
