package tray

import (
	"fmt"
	"strings"
)

// State is the lifecycle position of the current tray.
type State string

const (
	StateEmpty     State = "empty"
	StateAnalyzing State = "analyzing"
	StatePopulated State = "populated"
)

// BillLineItem is one billed food entry. Price and calories always
// mirror the catalog entry named by ItemName; a mismatch is a bug.
type BillLineItem struct {
	ID            int
	ItemName      string
	Price         int
	Calories      int
	ImageRef      string
	ManuallyAdded bool
}

// DetectedItem is the recognition-layer record correlated 1:1 with a
// bill line by ID: the detector's raw class, the final resolved class,
// and the crop image reference.
type DetectedItem struct {
	ID              int
	RecognizedClass string
	ResolvedClass   string
	ImageRef        string
	ManuallyAdded   bool
}

// Analysis is the mutable aggregate for the current tray. Totals are
// always recomputed by summation over the full line-item sequence.
type Analysis struct {
	BillLineItems []BillLineItem
	DetectedItems []DetectedItem
	TotalCost     int
	TotalCalories int
	ItemsCount    int
}

// FoodImageRef derives the conventional image path for a food name:
// lowercased, whitespace to underscores, under the static food image
// directory. The file may not exist; presentation falls back to the
// placeholder.
func FoodImageRef(name string) string {
	slug := strings.ToLower(name)
	slug = strings.Join(strings.Fields(slug), "_")
	return fmt.Sprintf("/static/img/food/%s.jpg", slug)
}
