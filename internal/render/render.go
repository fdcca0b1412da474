// Package render projects the analysis state and its derived metrics
// into read-only descriptors for a view layer. It never reaches back
// into the session.
package render

import (
	"fmt"
	"math"

	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/metrics"
	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/settings"
	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/tray"
)

// PlaceholderImageURL is shown for lines with no usable image.
const PlaceholderImageURL = "/static/img/placeholder.jpg"

// LineView is one render-ready bill line.
type LineView struct {
	Name          string
	PriceText     string
	CaloriesText  string
	ImageURL      string
	ManuallyAdded bool
}

// Summary is the bill summary block.
type Summary struct {
	ItemsCount        int
	TotalCostText     string
	TotalCaloriesText string
	ProgressPercent   float64
}

// Tone mirrors the info-card styling classes.
type Tone string

const (
	TonePrimary Tone = "primary"
	ToneSuccess Tone = "success"
	ToneDanger  Tone = "danger"
)

// Card is one notification descriptor.
type Card struct {
	Title       string
	Message     string
	Tone        Tone
	Suggestions []string
}

// Lines builds the detected-items list. Empty image refs fall back to
// the placeholder.
func Lines(a tray.Analysis, s settings.Settings) []LineView {
	lines := make([]LineView, len(a.BillLineItems))
	for i, item := range a.BillLineItems {
		imageURL := item.ImageRef
		if imageURL == "" {
			imageURL = PlaceholderImageURL
		}
		lines[i] = LineView{
			Name:          item.ItemName,
			PriceText:     metrics.FormatCurrency(item.Price, s.Currency),
			CaloriesText:  fmt.Sprintf("%d kcal", item.Calories),
			ImageURL:      imageURL,
			ManuallyAdded: item.ManuallyAdded,
		}
	}
	return lines
}

// BillSummary builds the totals block, including the calorie meter
// position.
func BillSummary(a tray.Analysis, s settings.Settings) Summary {
	band := metrics.CalorieBand(s)
	return Summary{
		ItemsCount:        a.ItemsCount,
		TotalCostText:     metrics.FormatCurrency(a.TotalCost, s.Currency),
		TotalCaloriesText: fmt.Sprintf("%d kcal", a.TotalCalories),
		ProgressPercent:   metrics.ProgressPercent(a.TotalCalories, band),
	}
}

// Notifications builds the calorie status card and the meal balance
// card. Wording is keyed off the classification enums only; thresholds
// are never re-derived here.
func Notifications(a tray.Analysis, s settings.Settings) []Card {
	band := metrics.CalorieBand(s)
	level := metrics.ClassifyCalories(a.TotalCalories, band)

	names := make([]string, len(a.BillLineItems))
	for i, item := range a.BillLineItems {
		names[i] = item.ItemName
	}
	balance := metrics.ClassifyBalance(names)

	return []Card{
		calorieCard(a.TotalCalories, band, level),
		balanceCard(balance),
	}
}

func calorieCard(totalCalories int, band metrics.Band, level metrics.CalorieLevel) Card {
	rangeText := fmt.Sprintf("Target: %d-%d kcal",
		int(math.Round(band.Lower)), int(math.Round(band.Upper)))

	switch level {
	case metrics.CalorieLow:
		pct := int(math.Round(float64(totalCalories) / band.Target * 100))
		return Card{
			Title: "Low Calorie Intake",
			Message: fmt.Sprintf(
				"Your meal is only %d%% of the recommended calorie intake for a meal. %s", pct, rangeText),
			Tone: TonePrimary,
			Suggestions: []string{
				"Consider adding a protein source like chicken or tofu.",
				"Add a small portion of carbs such as rice or bread.",
				"Include healthy fats like avocado or nuts for extra calories.",
			},
		}
	case metrics.CalorieHigh:
		pct := int(math.Round((float64(totalCalories) - band.Target) / band.Target * 100))
		return Card{
			Title: "High Calorie Intake",
			Message: fmt.Sprintf(
				"Your meal exceeds the recommended calorie intake by %d%%. %s", pct, rangeText),
			Tone: ToneDanger,
			Suggestions: []string{
				"Consider reducing portion sizes, especially of high-calorie items.",
				"Replace some high-calorie items with vegetables.",
				"Choose lean protein sources over fatty ones.",
			},
		}
	default:
		return Card{
			Title: "Optimal Calorie Intake",
			Message: fmt.Sprintf(
				"Your meal is within the recommended calorie range for a balanced diet. %s", rangeText),
			Tone: ToneSuccess,
			Suggestions: []string{
				"Good job maintaining a balanced meal!",
				"Ensure you're also getting a good mix of proteins, carbs, and vegetables.",
				"Stay hydrated by drinking water with your meal.",
			},
		}
	}
}

func balanceCard(balance metrics.BalanceReport) Card {
	if balance.Balanced() {
		return Card{
			Title:   "Meal Balance",
			Message: "Your meal has a great balance of proteins, carbohydrates, and vegetables.",
			Tone:    ToneSuccess,
		}
	}

	var suggestions []string
	if !balance.HasProtein {
		suggestions = append(suggestions, "Add a protein source like chicken, fish, eggs, or tofu.")
	}
	if !balance.HasCarbs {
		suggestions = append(suggestions, "Add some rice, noodles, or bread for energy.")
	}
	if !balance.HasVegetables {
		suggestions = append(suggestions, "Add vegetables for fiber, vitamins, and minerals.")
	}

	missing := balance.MissingGroups()
	message := "Your meal is missing " + missing[0]
	for i := 1; i < len(missing); i++ {
		message += ", " + missing[i]
	}
	message += "."

	return Card{
		Title:       "Meal Balance",
		Message:     message,
		Tone:        TonePrimary,
		Suggestions: suggestions,
	}
}
