package catalog

// Entry is one known food item from the canteen menu. Entries are
// immutable once loaded; a refetch replaces the whole set.
type Entry struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Calories int    `json:"calories"`
	Category string `json:"category"`
}
