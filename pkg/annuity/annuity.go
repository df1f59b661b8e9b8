package annuity

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTerm = errors.New("annuity: term must be a positive number of installments")
	ErrInvalidRate = errors.New("annuity: rate must not be negative")
)

// Quote holds the fixed installment and the total repaid over the term,
// both rounded to cents.
type Quote struct {
	Installment decimal.Decimal
	Total       decimal.Decimal
}

// Compute prices a fixed-payment (French amortization) schedule:
//
//	installment = P * (r * (1+r)^n) / ((1+r)^n - 1)
//
// The (1+r)^n factor is computed in float64, monetary results are rounded
// to 2 places as decimals. Total is installment * n so the per-cent
// identity total == installment*n always holds.
func Compute(principal decimal.Decimal, installments int, rate float64) (Quote, error) {
	if installments <= 0 {
		return Quote{}, ErrInvalidTerm
	}
	if rate < 0 {
		return Quote{}, ErrInvalidRate
	}

	n := decimal.NewFromInt(int64(installments))

	var installment decimal.Decimal
	if rate == 0 {
		// Zero-interest: even split.
		installment = principal.Div(n).Round(2)
	} else {
		factor := math.Pow(1+rate, float64(installments))
		payment := principal.InexactFloat64() * rate * factor / (factor - 1)
		installment = decimal.NewFromFloat(payment).Round(2)
	}

	return Quote{
		Installment: installment,
		Total:       installment.Mul(n),
	}, nil
}
