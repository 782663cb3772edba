package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrAmountInvalid = errors.New("amount must be a positive whole number of currency units")

// AmountToMinorUnits converts a decimal-string amount into gateway minor
// units (x100) using integer math only. VND has no fractional unit, so a
// fractional part other than zeros is rejected rather than rounded.
func AmountToMinorUnits(amount string) (int64, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return 0, ErrAmountInvalid
	}

	if i := strings.IndexByte(s, '.'); i >= 0 {
		frac := s[i+1:]
		if frac == "" || strings.Trim(frac, "0") != "" {
			return 0, ErrAmountInvalid
		}
		s = s[:i]
	}

	units, err := strconv.ParseInt(s, 10, 64)
	if err != nil || units <= 0 {
		return 0, ErrAmountInvalid
	}
	if units > math.MaxInt64/100 {
		return 0, ErrAmountInvalid
	}
	return units * 100, nil
}
