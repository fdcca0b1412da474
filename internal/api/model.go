package api

// AnalysisResult is the analyze endpoint's payload. Detected items
// carry recognition metadata and crop images; bill details carry the
// billable view. The two correlate by id, but detected items may be a
// superset.
type AnalysisResult struct {
	Success       bool           `json:"success"`
	Error         string         `json:"error,omitempty"`
	DetectedItems []DetectedItem `json:"detected_items"`
	BillDetails   []BillDetail   `json:"bill_details"`
	TotalCost     float64        `json:"total_cost"`
	TotalCalories float64        `json:"total_calories"`
	ItemsCount    int            `json:"items_count"`
}

// DetectedItem is one recognition record: the detector's class, the
// classifier's final class, and a crop image reference.
type DetectedItem struct {
	ID            int    `json:"id"`
	YoloClass     string `json:"yolo_class"`
	FinalClass    string `json:"final_class"`
	Image         string `json:"image"`
	ManuallyAdded bool   `json:"manuallyAdded,omitempty"`
}

// BillDetail is one billed line in the analyze response.
type BillDetail struct {
	ID            int     `json:"id"`
	Item          string  `json:"item"`
	Price         float64 `json:"price"`
	Calories      float64 `json:"calories"`
	Image         string  `json:"image"`
	ManuallyAdded bool    `json:"manuallyAdded,omitempty"`
}

type foodInfoResponse struct {
	Success  bool            `json:"success"`
	Error    string          `json:"error,omitempty"`
	FoodInfo []foodInfoEntry `json:"food_info"`
}

type foodInfoEntry struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Calories float64 `json:"calories"`
	Category string  `json:"category"`
}

type errorResponse struct {
	Error string `json:"error"`
}
