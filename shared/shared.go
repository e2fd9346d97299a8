package shared

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"venuequote/shared/constant"

	"github.com/rs/zerolog/log"
)

// QuoteSession resolves the persistence slot of the current request,
// falling back to the shared default slot.
func QuoteSession(ctx context.Context) string {
	session, ok := ctx.Value(constant.ContextKeyQuoteSession).(string)
	if !ok || session == "" {
		return constant.DefaultQuoteSession
	}

	return session
}

// BuildCacheKey joins the given parts into a single colon-separated cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// FormatMoney renders a currency amount with exactly two decimal places.
// Internal arithmetic keeps full precision; rounding happens here only.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatHours renders a duration in hours with one decimal place.
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1f", hours)
}

// ParseQuantity coerces a raw quantity string into a non-negative integer.
// Blank or non-numeric input yields 0, negative values are clamped to 0.
func ParseQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	qty, err := strconv.Atoi(raw)
	if err != nil {
		log.Debug().Str("quantity", raw).Msg("non-numeric quantity coerced to zero")

		return 0
	}

	if qty < 0 {
		return 0
	}

	return qty
}

// ClampQuantity clamps a parsed quantity to a non-negative value.
func ClampQuantity(qty int) int {
	if qty < 0 {
		return 0
	}

	return qty
}
