package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/api"
	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/catalog"
	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/history"
	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/metrics"
	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/render"
	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/settings"
	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/tray"

	"github.com/joho/godotenv"
)

// stringList collects a repeatable flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func main() {
	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	baseURL := os.Getenv("CANTEEN_API_BASE_URL")
	if baseURL == "" {
		log.Fatal("Missing env var: CANTEEN_API_BASE_URL")
	}

	settingsPath := os.Getenv("SETTINGS_DB_PATH")
	if settingsPath == "" {
		settingsPath = "settings.db"
	}

	// ───────────────────────── FLAGS ─────────────────────────
	var (
		imagePath   = flag.String("image", "", "path to the tray image to analyze")
		corrections stringList
		additions   stringList
		checkout    = flag.Bool("checkout", false, "complete the order after analysis")
		showMenu    = flag.Bool("menu", false, "print the food calorie information and exit")
	)
	flag.Var(&corrections, "correct", "correct a detected item, as index=name (repeatable)")
	flag.Var(&additions, "add", "manually add a catalog item by name (repeatable)")
	flag.Parse()

	if !*showMenu && *imagePath == "" {
		flag.Usage()
		log.Fatal("-image is required")
	}

	// ───────────────────────── WIRING ─────────────────────────
	store, err := settings.NewSQLiteStore(settingsPath)
	if err != nil {
		log.Fatal("Settings store init failed: ", err)
	}
	defer store.Close()

	userSettings, err := settings.Load(store)
	if err != nil {
		log.Fatal("Failed to load settings: ", err)
	}

	client := api.NewClient(baseURL)
	cat := catalog.New(client)
	session := tray.NewSession(cat, client)
	orders := history.NewBook()

	ctx := context.Background()

	if err := cat.Load(ctx); err != nil {
		// Corrections and manual adds need the catalog; analysis does
		// not. Keep going and surface the fallback list later.
		log.Println("Warning: food catalog unavailable, corrections are limited:", err)
	}

	if *showMenu {
		fmt.Println("Food Calorie Information")
		for _, entry := range cat.Entries() {
			fmt.Printf("  %-20s %12s  %4d kcal  [%s]\n",
				entry.Name,
				metrics.FormatCurrency(entry.Price, userSettings.Currency),
				entry.Calories,
				entry.Category)
		}
		return
	}

	// ───────────────────────── ANALYZE ─────────────────────────
	raw, err := os.ReadFile(*imagePath)
	if err != nil {
		log.Fatal("Failed to read image: ", err)
	}

	err = session.Analyze(ctx, base64.StdEncoding.EncodeToString(raw))
	switch {
	case errors.Is(err, api.ErrImageTooLarge):
		log.Fatal("Image too large. Please use a smaller image.")
	case err != nil:
		log.Fatal("Analysis failed: ", err)
	}

	// ───────────────────────── EDITS ─────────────────────────
	if !cat.Loaded() && (len(corrections) > 0 || len(additions) > 0) {
		fmt.Println("Catalog unavailable; known names from this tray:")
		for _, name := range catalog.NamesFallback(session.ResolvedClasses()) {
			fmt.Println("  -", name)
		}
	}

	for _, c := range corrections {
		index, name, err := parseCorrection(c)
		if err != nil {
			log.Fatal(err)
		}
		if err := session.CorrectItem(index, name); err != nil {
			log.Fatalf("Correction %q failed: %v", c, err)
		}
	}

	for _, name := range additions {
		if err := session.AddManualItem(name); err != nil {
			log.Fatalf("Adding %q failed: %v", name, err)
		}
	}

	// ───────────────────────── RENDER ─────────────────────────
	analysis := session.Snapshot()
	printBill(analysis, userSettings)

	// ───────────────────────── CHECKOUT ─────────────────────────
	if *checkout {
		order := orders.Record(analysis.ItemsCount, analysis.TotalCost, analysis.TotalCalories)
		session.Reset()
		fmt.Printf("\nOrder %s completed: %d items, %s\n",
			order.ID, order.ItemsCount, render.BillSummary(analysis, userSettings).TotalCostText)
	}
}

func parseCorrection(arg string) (int, string, error) {
	index, name, ok := strings.Cut(arg, "=")
	if !ok {
		return 0, "", fmt.Errorf("bad -correct value %q, want index=name", arg)
	}
	i, err := strconv.Atoi(index)
	if err != nil {
		return 0, "", fmt.Errorf("bad -correct index %q: %v", index, err)
	}
	return i, name, nil
}

func printBill(analysis tray.Analysis, userSettings settings.Settings) {
	fmt.Println("Detected Food Items")
	for _, line := range render.Lines(analysis, userSettings) {
		marker := ""
		if line.ManuallyAdded {
			marker = "  (added manually)"
		}
		fmt.Printf("  %-20s %12s  %10s%s\n", line.Name, line.PriceText, line.CaloriesText, marker)
	}

	summary := render.BillSummary(analysis, userSettings)
	fmt.Println("\nBill Summary")
	fmt.Printf("  Items:          %d\n", summary.ItemsCount)
	fmt.Printf("  Total Cost:     %s\n", summary.TotalCostText)
	fmt.Printf("  Total Calories: %s\n", summary.TotalCaloriesText)
	fmt.Printf("  Calorie Meter:  %.0f%%\n", summary.ProgressPercent)

	for _, card := range render.Notifications(analysis, userSettings) {
		fmt.Printf("\n[%s] %s\n", card.Title, card.Message)
		for _, suggestion := range card.Suggestions {
			fmt.Println("  •", suggestion)
		}
	}
}
