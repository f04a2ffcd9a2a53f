package clob

import "fmt"

// Side is the direction of an order
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Number returns the wire encoding of the side: BUY=0, SELL=1
func (s Side) Number() (int64, error) {
	switch s {
	case SideBuy:
		return 0, nil
	case SideSell:
		return 1, nil
	default:
		return 0, fmt.Errorf("unsupported side: %q", s)
	}
}

// SignatureType identifies how the order signature should be verified
type SignatureType int

const (
	// SignatureTypeEOA is a standard externally-owned account signature
	SignatureTypeEOA SignatureType = 0
	// SignatureTypePolyProxy is a Polymarket proxy wallet signature
	SignatureTypePolyProxy SignatureType = 1
	// SignatureTypePolyGnosisSafe is a Gnosis Safe proxy wallet signature
	SignatureTypePolyGnosisSafe SignatureType = 2
)

// TickSize is the minimum price increment of a market, as the venue
// reports it
type TickSize string

const (
	TickSize01    TickSize = "0.1"
	TickSize001   TickSize = "0.01"
	TickSize0001  TickSize = "0.001"
	TickSize00001 TickSize = "0.0001"
)

func (t TickSize) valid() bool {
	switch t {
	case TickSize01, TickSize001, TickSize0001, TickSize00001:
		return true
	}
	return false
}

// OrderKind is the time-in-force of an order.
// Good till cancelled | Fill or kill | Good till date | Fill and kill
type OrderKind string

const (
	OrderKindGTC OrderKind = "GTC"
	OrderKindFOK OrderKind = "FOK"
	OrderKindGTD OrderKind = "GTD"
	OrderKindFAK OrderKind = "FAK"
)

// Order is an unsigned exchange order. All numeric fields are decimal
// strings of raw integer magnitude; addresses are hex strings. The taker is
// the zero address when anyone may fill the order.
type Order struct {
	Salt          string
	Maker         string
	Signer        string
	Taker         string
	TokenID       string
	MakerAmount   string
	TakerAmount   string
	Expiration    string
	Nonce         string
	FeeRateBps    string
	Side          Side
	SignatureType SignatureType
}

// SignedOrder is an order plus its EIP-712 signature. Immutable: any field
// change invalidates the signature.
type SignedOrder struct {
	Order
	Signature string
}

// OrderResponse is the venue's reply to an order submission
type OrderResponse struct {
	Success            bool     `json:"success"`
	ErrorMsg           string   `json:"errorMsg,omitempty"`
	OrderID            string   `json:"orderID,omitempty"`
	TransactionsHashes []string `json:"transactionsHashes,omitempty"`
}

// CancelResponse is the venue's reply to a cancellation
type CancelResponse struct {
	Success  bool   `json:"success"`
	ErrorMsg string `json:"errorMsg,omitempty"`
}

// OpenOrder is a resting order as reported by the venue
type OpenOrder struct {
	ID           string    `json:"id"`
	Market       string    `json:"market"`
	AssetID      string    `json:"asset_id"`
	Owner        string    `json:"owner"`
	Side         Side      `json:"side"`
	Size         string    `json:"size"`
	OriginalSize string    `json:"original_size"`
	Price        string    `json:"price"`
	Type         OrderKind `json:"type"`
	FeeRateBps   string    `json:"fee_rate_bps"`
	Status       string    `json:"status"`
	CreatedAt    string    `json:"created_at,omitempty"`
	Expiration   string    `json:"expiration,omitempty"`
	MakerAddress string    `json:"maker_address,omitempty"`
	Outcome      string    `json:"outcome,omitempty"`
}

// Trade is a fill as reported by the venue
type Trade struct {
	ID              string `json:"id"`
	TakerOrderID    string `json:"taker_order_id"`
	Market          string `json:"market"`
	AssetID         string `json:"asset_id"`
	Side            Side   `json:"side"`
	Size            string `json:"size"`
	FeeRateBps      string `json:"fee_rate_bps"`
	Price           string `json:"price"`
	Status          string `json:"status"`
	MatchTime       string `json:"match_time,omitempty"`
	Outcome         string `json:"outcome,omitempty"`
	Owner           string `json:"owner,omitempty"`
	MakerAddress    string `json:"maker_address,omitempty"`
	TransactionHash string `json:"transaction_hash,omitempty"`
}

// Market is the venue's market metadata, reduced to the fields the trading
// flow consumes
type Market struct {
	ConditionID     string        `json:"condition_id"`
	QuestionID      string        `json:"question_id"`
	Question        string        `json:"question"`
	Active          bool          `json:"active"`
	Closed          bool          `json:"closed"`
	MinTickSize     string        `json:"minimum_tick_size"`
	MinOrderSize    string        `json:"minimum_order_size"`
	NegRisk         bool          `json:"neg_risk"`
	MakerBaseFee    float64       `json:"maker_base_fee"`
	TakerBaseFee    float64       `json:"taker_base_fee"`
	AcceptingOrders bool          `json:"accepting_orders"`
	Tokens          []MarketToken `json:"tokens"`
}

// MarketToken is one outcome token of a market
type MarketToken struct {
	TokenID string  `json:"token_id"`
	Outcome string  `json:"outcome"`
	Price   float64 `json:"price"`
	Winner  bool    `json:"winner"`
}

// ListMarketsResponse is one page of markets
type ListMarketsResponse struct {
	Data       []Market `json:"data"`
	NextCursor string   `json:"next_cursor"`
	Limit      int      `json:"limit"`
	Count      int      `json:"count"`
}

// OrderLevel is one price level of an order book
type OrderLevel struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}

// OrderBook is the venue's book snapshot for one token
type OrderBook struct {
	Market       string       `json:"market"`
	AssetID      string       `json:"asset_id"`
	Bids         []OrderLevel `json:"bids"`
	Asks         []OrderLevel `json:"asks"`
	Timestamp    string       `json:"timestamp"`
	Hash         string       `json:"hash"`
	MinOrderSize string       `json:"min_order_size"`
	TickSize     string       `json:"tick_size"`
	NegRisk      bool         `json:"neg_risk"`
}

// PriceResponse is the venue's best price for one token and side
type PriceResponse struct {
	Price string `json:"price"`
}

// MidpointResponse is the venue's midpoint price for one token
type MidpointResponse struct {
	Mid string `json:"mid"`
}

// BalanceAllowanceResponse reports collateral balance and exchange
// allowance
type BalanceAllowanceResponse struct {
	Balance   string `json:"balance"`
	Allowance string `json:"allowance"`
}

// ServerTimeResponse is the venue's clock, in Unix seconds
type ServerTimeResponse int64
