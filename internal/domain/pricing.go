package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// RatePerKg is the base price of one kilogram.
	RatePerKg = 5.0
	// MinimumCost is the floor applied to every estimate.
	MinimumCost = 10.0
)

// Multiplier returns the price multiplier of the delivery type.
// Unknown types are priced as standard.
func (t DeliveryType) Multiplier() float64 {
	switch t {
	case DeliveryExpress:
		return 1.5
	case DeliveryOvernight:
		return 2
	default:
		return 1
	}
}

// EstimateCost returns the price of shipping weight kilograms with the given delivery type.
func EstimateCost(weight float64, deliveryType DeliveryType) float64 {
	cost := weight * RatePerKg * deliveryType.Multiplier()
	return math.Max(cost, MinimumCost)
}

// ParseWeight reads the leading decimal number of a user-supplied weight, so
// "12kg" is 12. Input without a leading number, or one that is not finite,
// yields 0.
func ParseWeight(raw string) float64 {
	prefix := numericPrefix(strings.TrimSpace(raw))
	if prefix == "" {
		return 0
	}
	w, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return SanitizeWeight(w)
}

// numericPrefix returns the longest prefix of s shaped like
// [sign] digits [. digits] [e [sign] digits], with at least one digit in
// the mantissa.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for ; j < len(s) && isDigit(s[j]); j++ {
		}
		if j > start {
			end = j
		}
	}
	return s[:end]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// SanitizeWeight maps NaN and infinities to 0.
func SanitizeWeight(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w
}

// FormatMoney renders an amount the way it is shown to customers.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
