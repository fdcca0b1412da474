package settings

// Currency display options. Prices are always stored in VND; USD is a
// display-time conversion only.
const (
	CurrencyVND = "vnd"
	CurrencyUSD = "usd"
)

// Language display options.
const (
	LanguageEN = "en"
	LanguageVI = "vi"
)

// Storage keys. All values are string-serialized.
const (
	KeyFullName         = "fullName"
	KeyEmail            = "email"
	KeyStudentID        = "studentId"
	KeyLanguage         = "language"
	KeyCurrency         = "currency"
	KeyCalorieGoal      = "calorieGoal"
	KeyCalorieThreshold = "calorieThreshold"
)

// Defaults applied when a key is missing or unparseable.
const (
	DefaultCalorieGoal      = 2000
	DefaultCalorieThreshold = 30
	DefaultCurrency         = CurrencyVND
	DefaultLanguage         = LanguageEN
)

// Settings is the decoded user configuration read by the derived
// metrics on every computation.
type Settings struct {
	FullName  string
	Email     string
	StudentID string
	Language  string
	Currency  string

	// CalorieGoal is the daily calorie goal in kcal.
	CalorieGoal int
	// CalorieThreshold is the share of the daily goal allotted to a
	// single meal, in percent (0-100).
	CalorieThreshold int
}

// Default returns the settings used when nothing has been saved yet.
func Default() Settings {
	return Settings{
		Language:         DefaultLanguage,
		Currency:         DefaultCurrency,
		CalorieGoal:      DefaultCalorieGoal,
		CalorieThreshold: DefaultCalorieThreshold,
	}
}
