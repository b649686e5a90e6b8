package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a money value in cents.
type Amount int64

// maxAmountUnits is the largest whole part that still fits with any cents.
const maxAmountUnits = (math.MaxInt64 - 99) / 100

// ParseAmount parses a decimal string with at most two fraction digits, e.g. "12", "12.5", "12.50".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && (!hasFrac || frac == "") {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	var units int64
	if whole != "" {
		w, err := strconv.ParseUint(whole, 10, 63)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
		if w > maxAmountUnits {
			return 0, fmt.Errorf("amount %q is out of range", s)
		}
		units = int64(w)
	}
	var cents int64
	if frac != "" {
		f, err := strconv.ParseUint(frac, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
		cents = int64(f)
		if len(frac) == 1 {
			cents *= 10
		}
	}
	v := units*100 + cents
	if neg {
		v = -v
	}
	return Amount(v), nil
}

// AmountFromUnits converts a whole currency value to an Amount.
func AmountFromUnits(units int64) Amount {
	return Amount(units * 100)
}

// String formats the amount with two decimals.
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Float64 returns the amount in currency units. Use it only for display ratios.
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	data = bytes.Trim(data, `"`)
	v, err := ParseAmount(string(data))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Sum adds amounts exactly.
func Sum(amounts ...Amount) Amount {
	var total Amount
	for _, a := range amounts {
		total += a
	}
	return total
}
