package usecase

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// amountCleaner strips currency symbols, digit-grouping separators, and
// interior whitespace from a loosely-formatted amount string.
var amountCleaner = strings.NewReplacer("₹", "", "$", "", "€", "", "£", "", ",", "", " ", "")

// ParseAmount normalizes a loosely-typed numeric value into a float pointer.
// The structured-intent service may hand back numbers as JSON numbers,
// formatted strings ("₹1,299", "$ 500"), or garbage; anything that does not
// clean up into a finite number yields nil. Never panics.
func ParseAmount(v interface{}) *float64 {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return finiteAmount(n)
	case float32:
		return finiteAmount(float64(n))
	case int:
		return finiteAmount(float64(n))
	case int64:
		return finiteAmount(float64(n))
	case json.Number:
		return parseAmountString(n.String())
	case string:
		return parseAmountString(n)
	default:
		return nil
	}
}

func parseAmountString(s string) *float64 {
	cleaned := strings.TrimSpace(amountCleaner.Replace(s))
	if cleaned == "" {
		return nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return finiteAmount(f)
}

func finiteAmount(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
