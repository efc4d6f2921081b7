package service

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatPrice renders prices below 1 with six decimals and larger ones
// grouped with at most three fraction digits.
func FormatPrice(price float64) string {
	if price < 1 {
		return fmt.Sprintf("$%.6f", price)
	}
	return "$" + grouped(price)
}

// FormatMarketCap abbreviates with T, B or M at the 1e12, 1e9 and 1e6
// thresholds and groups smaller values.
func FormatMarketCap(cap float64) string {
	switch {
	case cap >= 1e12:
		return fmt.Sprintf("$%.2fT", cap/1e12)
	case cap >= 1e9:
		return fmt.Sprintf("$%.2fB", cap/1e9)
	case cap >= 1e6:
		return fmt.Sprintf("$%.2fM", cap/1e6)
	default:
		return "$" + grouped(cap)
	}
}

// FormatChange returns the 24h change and its trend, up only when positive.
func FormatChange(change float64) (string, string) {
	trend := "down"
	if change > 0 {
		trend = "up"
	}
	return fmt.Sprintf("%.2f%%", change), trend
}

func grouped(v float64) string {
	return humanize.Commaf(math.Round(v*1000) / 1000)
}
