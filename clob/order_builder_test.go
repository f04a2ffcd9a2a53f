package clob

import (
	"strconv"
	"testing"
	"time"

	"github.com/maxatome/go-testdeep/td"

	"github.com/dicedhq/go-polymarket/rest"
)

func TestCalculateOrderAmounts(t *testing.T) {
	tests := []struct {
		name     string
		side     Side
		size     float64
		price    float64
		tickSize TickSize
		maker    string
		taker    string
	}{
		{
			name:     "buy at full price",
			side:     SideBuy,
			size:     2,
			price:    1.00,
			tickSize: TickSize001,
			maker:    "20000",
			taker:    "200",
		},
		{
			name:     "sell at full price mirrors buy",
			side:     SideSell,
			size:     2,
			price:    1.00,
			tickSize: TickSize001,
			maker:    "200",
			taker:    "20000",
		},
		{
			name:     "buy with fractional size",
			side:     SideBuy,
			size:     21.04,
			price:    0.56,
			tickSize: TickSize001,
			maker:    "117824",
			taker:    "2104",
		},
		{
			name:     "sell on a coarse tick",
			side:     SideSell,
			size:     100,
			price:    0.5,
			tickSize: TickSize01,
			maker:    "10000",
			taker:    "50000",
		},
		{
			name:     "buy rounds price to tick precision",
			side:     SideBuy,
			size:     3.33,
			price:    0.333,
			tickSize: TickSize001,
			maker:    "10989",
			taker:    "333",
		},
		{
			name:     "buy on a fine tick",
			side:     SideBuy,
			size:     10,
			price:    0.056,
			tickSize: TickSize0001,
			maker:    "56000",
			taker:    "1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amounts, err := calculateOrderAmounts(tt.side, tt.size, tt.price, tt.tickSize)
			td.CmpNoError(t, err)
			td.Cmp(t, amounts.maker, tt.maker)
			td.Cmp(t, amounts.taker, tt.taker)
		})
	}
}

func TestCalculateOrderAmountsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		side     Side
		size     float64
		price    float64
		tickSize TickSize
	}{
		{name: "zero price", side: SideBuy, size: 1, price: 0, tickSize: TickSize001},
		{name: "price above one", side: SideBuy, size: 1, price: 1.01, tickSize: TickSize001},
		{name: "negative price", side: SideSell, size: 1, price: -0.5, tickSize: TickSize001},
		{name: "zero size", side: SideBuy, size: 0, price: 0.5, tickSize: TickSize001},
		{name: "negative size", side: SideSell, size: -2, price: 0.5, tickSize: TickSize001},
		{name: "unknown side", side: Side("HOLD"), size: 1, price: 0.5, tickSize: TickSize001},
		{name: "unknown tick size", side: SideBuy, size: 1, price: 0.5, tickSize: TickSize("0.02")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calculateOrderAmounts(tt.side, tt.size, tt.price, tt.tickSize)
			td.CmpNotNil(t, err)

			clobErr := rest.AsError(err)
			if td.CmpNotNil(t, clobErr) {
				td.Cmp(t, clobErr.Kind, rest.KindValidation)
			}
		})
	}
}

func TestValidateTokenID(t *testing.T) {
	td.CmpNoError(t, validateTokenID("123456789012345678901234567890"))

	for _, tokenID := range []string{"", "   ", "0x1234", "12a34", "-"} {
		err := validateTokenID(tokenID)
		td.CmpNotNil(t, err, "tokenID %q", tokenID)

		clobErr := rest.AsError(err)
		if td.CmpNotNil(t, clobErr) {
			td.Cmp(t, clobErr.Kind, rest.KindValidation)
		}
	}
}

func TestGenerateSalt(t *testing.T) {
	for range 100 {
		salt, err := strconv.ParseInt(generateSalt(), 10, 64)
		td.CmpNoError(t, err)
		td.CmpGte(t, salt, int64(0))
		td.CmpLt(t, salt, time.Now().UnixMilli())
	}
}

func TestToWireOrder(t *testing.T) {
	order := SignedOrder{
		Order: Order{
			Salt:          "479249096354",
			Maker:         "0x1111111111111111111111111111111111111111",
			Signer:        "0x1111111111111111111111111111111111111111",
			Taker:         "0x0000000000000000000000000000000000000000",
			TokenID:       "71321045679252212594626385532706912750332728571942532289631379312455583992563",
			MakerAmount:   "20000",
			TakerAmount:   "200",
			Expiration:    "0",
			Nonce:         "0",
			FeeRateBps:    "0",
			Side:          SideSell,
			SignatureType: SignatureTypePolyProxy,
		},
		Signature: "0xdeadbeef",
	}

	wire, err := toWireOrder(order)
	td.CmpNoError(t, err)
	td.Cmp(t, wire, wireOrder{
		Salt:          479249096354,
		Maker:         order.Maker,
		Signer:        order.Signer,
		Taker:         order.Taker,
		TokenID:       order.TokenID,
		MakerAmount:   "20000",
		TakerAmount:   "200",
		Expiration:    "0",
		Nonce:         "0",
		FeeRateBps:    "0",
		Side:          "1",
		SignatureType: 1,
		Signature:     "0xdeadbeef",
	})
}

func TestToWireOrderRejectsBadSalt(t *testing.T) {
	order := SignedOrder{Order: Order{Salt: "not-a-number", Side: SideBuy}}
	_, err := toWireOrder(order)
	td.CmpNotNil(t, err)
}
