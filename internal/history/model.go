package history

import "time"

// OrderStatus mirrors the transaction table's status column. Orders
// recorded at checkout are complete immediately; there is no payment
// flow behind them.
type OrderStatus string

const StatusCompleted OrderStatus = "completed"

// Order is one completed tray checkout.
type Order struct {
	ID            string
	PlacedAt      time.Time
	ItemsCount    int
	TotalCost     int
	TotalCalories int
	Status        OrderStatus
}

// Period filters the order list.
type Period string

const (
	PeriodAll       Period = "all"
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "week"
	PeriodThisMonth Period = "month"
)
