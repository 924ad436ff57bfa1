package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	errs "papertrader/internal/domain/error"
)

// Monetary values are carried as int64 cents so that cash arithmetic never
// accumulates floating point drift. Quote prices arrive from the wire as
// decimal strings and are converted at the boundary.

// MaxDecimalPlaces defines the number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseCents validates a decimal string amount and converts it to cents.
// "10" and "10.5" are normalized to 1000 and 1050; more than two decimal
// places or a negative sign is rejected.
func ParseCents(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// CentsToString converts an amount in cents to a decimal string with two
// decimal places. 1015 becomes "10.15", -50 becomes "-0.50".
func CentsToString(cents int64) string {
	isNegative := cents < 0
	if isNegative {
		cents = -cents
	}

	s := strconv.FormatInt(cents, 10)
	for len(s) < 3 {
		s = "0" + s
	}

	decimalPos := len(s) - 2
	whole := s[:decimalPos]
	frac := s[decimalPos:]

	if isNegative {
		return "-" + whole + "." + frac
	}
	return whole + "." + frac
}

// CentsFromDecimal converts a decimal price to cents, rounding half away from
// zero at the second decimal place. Negative and overflowing values are rejected.
func CentsFromDecimal(d decimal.Decimal) (int64, error) {
	if d.IsNegative() {
		return 0, errs.ErrNegativeAmount
	}

	scaled := d.Round(MaxDecimalPlaces).Mul(decimal.NewFromInt(100))
	if !scaled.IsInteger() || scaled.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, errs.ErrAmountOverflow
	}

	return scaled.IntPart(), nil
}

// DecimalFromCents converts cents to a decimal with two fractional digits.
func DecimalFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// MulShares returns shares * priceCents, guarding against int64 overflow.
func MulShares(shares, priceCents int64) (int64, error) {
	if shares == 0 || priceCents == 0 {
		return 0, nil
	}
	if shares > math.MaxInt64/priceCents {
		return 0, errs.ErrAmountOverflow
	}
	return shares * priceCents, nil
}
