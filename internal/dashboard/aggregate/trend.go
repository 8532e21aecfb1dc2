package aggregate

import (
	"math"
	"strconv"

	"github.com/merchview/merchview/internal/dashboard/model"
)

// CalculateTrend fabricates a deterministic period-over-period change for a
// KPI. The upstream API carries no history, so a plausible prior value is
// derived from the KPI's field name: the seed length picks a noise factor
// in [0.05, 0.25) and the parity of the seed's first byte picks the
// direction. Same value and seed always produce the same output.
func CalculateTrend(current float64, seed string) model.TrendData {
	noise := float64(len(seed)%10)/50 + 0.05

	isPositive := len(seed) > 0 && seed[0]%2 == 0

	factor := 1 + noise
	if isPositive {
		factor = 1 - noise
	}
	prevValue := current * factor

	// Zero current value means zero prior value; report a flat change
	// instead of dividing by zero.
	percentage := 0.0
	if prevValue != 0 {
		percentage = math.Abs((current - prevValue) / prevValue * 100)
	}

	sign := "-"
	changeType := "negative"
	trend := "down"
	if isPositive {
		sign = "+"
		changeType = "positive"
		trend = "up"
	}

	return model.TrendData{
		Change:     sign + strconv.FormatFloat(percentage, 'f', 1, 64) + "%",
		ChangeType: changeType,
		Trend:      trend,
	}
}
