package provider

import (
	"math"
	"strings"

	"github.com/emzola/bookscout/data"
)

// cadRates is the fixed conversion table into the settlement currency. Live
// exchange-rate sourcing is out of scope; a static table is acceptable.
var cadRates = map[string]float64{
	"USD": 1.35,
	"EUR": 1.47,
	"GBP": 1.70,
}

// toCAD converts an amount to the settlement currency using the fixed rate
// table. Amounts already in CAD pass through unchanged. Unknown currencies
// also pass through unconverted; known reports whether the currency was
// recognized so the caller can log the data-quality signal instead of failing
// the offer.
func toCAD(amount float64, currency string) (converted float64, known bool) {
	cur := strings.ToUpper(currency)
	if cur == "" || cur == data.SettlementCurrency {
		return amount, true
	}
	rate, ok := cadRates[cur]
	if !ok {
		return amount, false
	}
	return amount * rate, true
}

// roundCents rounds to two decimal places, half away from zero on the cent
// value. Prices are non-negative, so this is round-half-up.
func roundCents(x float64) float64 {
	return math.Round(x*100) / 100
}
