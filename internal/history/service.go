package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book keeps the session's completed orders, newest first. It is
// session-scoped only; nothing is persisted.
type Book struct {
	orders []Order
	now    func() time.Time
}

func NewBook() *Book {
	return &Book{now: time.Now}
}

// Record adds a completed order for the given tray totals and returns
// it.
func (b *Book) Record(itemsCount, totalCost, totalCalories int) Order {
	order := Order{
		ID:            newOrderID(),
		PlacedAt:      b.now(),
		ItemsCount:    itemsCount,
		TotalCost:     totalCost,
		TotalCalories: totalCalories,
		Status:        StatusCompleted,
	}
	b.orders = append([]Order{order}, b.orders...)
	return order
}

// List returns the orders within the period, newest first.
func (b *Book) List(period Period) []Order {
	cutoff, bounded := b.cutoff(period)

	var out []Order
	for _, o := range b.orders {
		if bounded && o.PlacedAt.Before(cutoff) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (b *Book) cutoff(period Period) (time.Time, bool) {
	now := b.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case PeriodToday:
		return midnight, true
	case PeriodThisWeek:
		// Weeks start on Monday.
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return midnight.AddDate(0, 0, -(weekday - 1)), true
	case PeriodThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// newOrderID renders a short display ID in the receipt style, e.g.
// "#ORD-1A2B3C4D".
func newOrderID() string {
	raw := strings.ToUpper(uuid.New().String())
	return fmt.Sprintf("#ORD-%s", raw[:8])
}
