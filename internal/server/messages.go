package server

// Request types accepted on the advisory socket
const (
	TypeEvaluate = "evaluate"
	TypeEquity   = "equity"
	TypeAdvise   = "advise"
)

// Response types
const (
	TypeEvaluateResult = "evaluate_result"
	TypeEquityResult   = "equity_result"
	TypeAdvice         = "advice"
	TypeError          = "error"
)

// Request is a client query. Cards use compact notation ("AsKd"); which
// fields matter depends on Type.
type Request struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"` // echoed back for correlation

	// evaluate: 5-7 cards to score
	Cards string `json:"cards,omitempty"`

	// equity + advise
	Hole      string `json:"hole,omitempty"`
	Board     string `json:"board,omitempty"`
	Opponents int    `json:"opponents,omitempty"`
	Trials    int    `json:"trials,omitempty"`
	Seed      int64  `json:"seed,omitempty"`

	// advise
	Pot       float64 `json:"pot,omitempty"`
	Call      float64 `json:"call,omitempty"`
	Raise     float64 `json:"raise,omitempty"`
	FoldProb  float64 `json:"fold_prob,omitempty"`
	RiskStyle float64 `json:"risk_style,omitempty"`
}

// Response is the server's answer to one request
type Response struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`

	// evaluate_result
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	TieBreaks   []int  `json:"tie_breaks,omitempty"`

	// equity_result and advice
	Win    float64 `json:"win,omitempty"`
	Tie    float64 `json:"tie,omitempty"`
	Lose   float64 `json:"lose,omitempty"`
	Trials int     `json:"trials,omitempty"`

	// advice
	Hand        string  `json:"hand,omitempty"`
	EVFold      float64 `json:"ev_fold"`
	EVCall      float64 `json:"ev_call,omitempty"`
	EVRaise     float64 `json:"ev_raise,omitempty"`
	EUFold      float64 `json:"eu_fold"`
	EUCall      float64 `json:"eu_call,omitempty"`
	EURaise     float64 `json:"eu_raise,omitempty"`
	Recommended string  `json:"recommended,omitempty"`

	// error
	Error string `json:"error,omitempty"`
}

// errorResponse builds an error reply correlated to the request
func errorResponse(id, msg string) *Response {
	return &Response{Type: TypeError, ID: id, Error: msg}
}
