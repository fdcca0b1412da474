package metrics

import "strings"

// Food group keyword tables. These are fixed configuration, not
// derived data: Vietnamese food-name substrings that mark a dish as a
// protein, carbohydrate, or vegetable source.
var (
	proteinKeywords = []string{
		"ga", "thit", "ca", "trung", "tom", "suon", "bo", "dau hu",
		"ga chien", "ga kho", "thit chien", "thit luoc", "ca chien", "ca kho",
		"trung chien", "trung luoc", "kho tieu", "kho trung", "suon mieng", "suon xao",
	}

	carbKeywords = []string{
		"com", "bun", "pho", "banh", "banh mi",
	}

	vegetableKeywords = []string{
		"rau", "dau", "bap cai", "cai", "dua", "ot", "ca chua",
		"bap cai luoc", "bap cai xao", "ca chua", "ca rot", "canh bau",
		"canh bi do", "canh cai", "canh chua", "canh rong bien", "dau bap",
		"dau que", "dua hau", "dua leo", "oi", "rau muong", "rau ngo", "thanh long",
		"chuoi", "do chua",
	}
)

// BalanceReport records which food groups are present on the tray.
type BalanceReport struct {
	HasProtein    bool
	HasCarbs      bool
	HasVegetables bool
}

// Balanced reports full balance: all three groups present.
func (r BalanceReport) Balanced() bool {
	return r.HasProtein && r.HasCarbs && r.HasVegetables
}

// MissingGroups lists the absent groups in a fixed order.
func (r BalanceReport) MissingGroups() []string {
	var missing []string
	if !r.HasProtein {
		missing = append(missing, "protein")
	}
	if !r.HasCarbs {
		missing = append(missing, "carbohydrates")
	}
	if !r.HasVegetables {
		missing = append(missing, "vegetables")
	}
	return missing
}

// ClassifyBalance matches each item name case-insensitively against
// the group keyword tables. A group is present when any item name
// contains any of its keywords.
func ClassifyBalance(itemNames []string) BalanceReport {
	var r BalanceReport
	for _, name := range itemNames {
		lower := strings.ToLower(name)
		r.HasProtein = r.HasProtein || containsAny(lower, proteinKeywords)
		r.HasCarbs = r.HasCarbs || containsAny(lower, carbKeywords)
		r.HasVegetables = r.HasVegetables || containsAny(lower, vegetableKeywords)
	}
	return r
}

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
