package gateway

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/apperr"
)

var (
	oneThousand = decimal.NewFromInt(1000)
	oneHundred  = decimal.NewFromInt(100)
)

// NormalizeAmount converts a caller-supplied amount into paise.
//
// The unit of the incoming amount is ambiguous across storefront clients, so
// the following rule is applied: a whole number of 1000 or more is treated as
// already being in paise; anything else is treated as rupees and multiplied
// by 100, rounded to the nearest paisa. Existing callers depend on the exact
// 1000 threshold, so it must not change. A legitimate rupee amount >= 1000
// will be misread as paise under this rule; that is the documented behavior.
func NormalizeAmount(v any) (int64, error) {
	d, err := toDecimal(v)
	if err != nil {
		return 0, err
	}
	if d.Sign() <= 0 {
		return 0, fmt.Errorf("amount must be positive: %w", apperr.ErrInvalidAmount)
	}
	if d.IsInteger() && d.Cmp(oneThousand) >= 0 {
		return d.IntPart(), nil
	}
	return d.Mul(oneHundred).Round(0).IntPart(), nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, fmt.Errorf("amount is not finite: %w", apperr.ErrInvalidAmount)
		}
		return decimal.NewFromFloat(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("amount %q: %w", x.String(), apperr.ErrInvalidAmount)
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(x)
		if err != nil {
			return decimal.Zero, fmt.Errorf("amount %q: %w", x, apperr.ErrInvalidAmount)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("amount missing or not numeric: %w", apperr.ErrInvalidAmount)
	}
}
