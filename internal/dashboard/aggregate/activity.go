package aggregate

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/merchview/merchview/internal/dashboard/model"
	"github.com/merchview/merchview/internal/locale"
	"github.com/merchview/merchview/pkg/storeapi"
)

// RecentActivity synthesizes a short narrative feed from the freshest carts
// and users: three payments, two new customers, two shipments. Relative
// time labels are derived from list position, not clocks, so the feed is
// stable across fetches of the same data.
//
// The final ordering is a lexical sort on the time label, kept byte-for-byte
// compatible with the dashboard frontend's expectations even though mixed
// minute and hour labels do not compare chronologically.
func RecentActivity(carts []model.EnrichedCart, users []storeapi.User, t locale.Translator) []model.Activity {
	activities := make([]model.Activity, 0, 7)

	for i, cart := range headCarts(carts, 0, 3) {
		amount := "$" + formatAmount(cart.Total)
		text := fmt.Sprintf("Payment received from %s: %s", cart.CustomerName, amount)
		if t != nil {
			text = t("paymentReceived", map[string]interface{}{
				"name":   cart.CustomerName,
				"amount": amount,
			})
		}
		activities = append(activities, model.Activity{
			Icon:      "CreditCard",
			Text:      text,
			Time:      fmt.Sprintf("%d min ago", i*15+2),
			IconBg:    "bg-emerald-500/10",
			IconColor: "text-emerald-500",
		})
	}

	for i, user := range headUsers(users, 5, 7) {
		name := user.FirstName + " " + user.LastName
		text := fmt.Sprintf("New customer: %s", name)
		if t != nil {
			text = t("newCustomer", map[string]interface{}{"name": name})
		}
		activities = append(activities, model.Activity{
			Icon:      "UserPlus",
			Text:      text,
			Time:      fmt.Sprintf("%d min ago", (i+1)*45),
			IconBg:    "bg-blue-500/10",
			IconColor: "text-blue-500",
		})
	}

	for i, cart := range headCarts(carts, 3, 5) {
		amount := "$" + formatAmount(cart.Total)
		text := fmt.Sprintf("Order shipped for %s: %s", cart.CustomerName, amount)
		if t != nil {
			text = t("orderShipped", map[string]interface{}{
				"name":   cart.CustomerName,
				"amount": amount,
			})
		}
		activities = append(activities, model.Activity{
			Icon:      "Package",
			Text:      text,
			Time:      fmt.Sprintf("%d hr ago", i+2),
			IconBg:    "bg-amber-500/10",
			IconColor: "text-amber-500",
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Time < activities[j].Time
	})
	return activities
}

func headCarts(carts []model.EnrichedCart, from, to int) []model.EnrichedCart {
	if from >= len(carts) {
		return nil
	}
	if to > len(carts) {
		to = len(carts)
	}
	return carts[from:to]
}

func headUsers(users []storeapi.User, from, to int) []storeapi.User {
	if from >= len(users) {
		return nil
	}
	if to > len(users) {
		to = len(users)
	}
	return users[from:to]
}

// formatAmount renders a money amount without trailing zeros, matching the
// frontend's plain number interpolation.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
