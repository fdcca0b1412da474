package metrics

import (
	"strconv"
	"strings"
	"testing"

	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/settings"
)

func defaultBand() Band {
	return CalorieBand(settings.Default())
}

func TestCalorieBandFromDefaults(t *testing.T) {
	band := defaultBand()

	// 2000 kcal/day at a 30% meal threshold.
	if band.Target != 600 {
		t.Fatalf("expected target 600, got %v", band.Target)
	}
	if band.Lower != 480 || band.Upper != 720 {
		t.Fatalf("expected band [480, 720], got [%v, %v]", band.Lower, band.Upper)
	}
}

func TestClassifyCaloriesBoundariesAreOptimal(t *testing.T) {
	band := defaultBand()

	cases := []struct {
		total int
		want  CalorieLevel
	}{
		{480, CalorieOptimal}, // lower bound inclusive
		{720, CalorieOptimal}, // upper bound inclusive
		{479, CalorieLow},
		{721, CalorieHigh},
		{600, CalorieOptimal},
		{0, CalorieLow},
	}

	for _, c := range cases {
		if got := ClassifyCalories(c.total, band); got != c.want {
			t.Errorf("ClassifyCalories(%d) = %s, want %s", c.total, got, c.want)
		}
	}
}

func TestProgressPercentCapped(t *testing.T) {
	band := defaultBand()

	if got := ProgressPercent(360, band); got != 50 {
		t.Fatalf("expected 50%%, got %v", got)
	}
	if got := ProgressPercent(720, band); got != 100 {
		t.Fatalf("expected 100%% at the upper bound, got %v", got)
	}
	if got := ProgressPercent(5000, band); got != 100 {
		t.Fatalf("expected cap at 100%%, got %v", got)
	}
	if got := ProgressPercent(0, band); got != 0 {
		t.Fatalf("expected 0%%, got %v", got)
	}
}

func TestClassifyBalanceCarbOnly(t *testing.T) {
	r := ClassifyBalance([]string{"Com"})

	if !r.HasCarbs {
		t.Fatal("expected carbs present for Com")
	}
	if r.HasProtein || r.HasVegetables {
		t.Fatalf("expected only carbs present, got %+v", r)
	}
	if r.Balanced() {
		t.Fatal("carb-only tray must not be balanced")
	}

	missing := r.MissingGroups()
	if len(missing) != 2 || missing[0] != "protein" || missing[1] != "vegetables" {
		t.Fatalf("expected [protein vegetables] missing, got %v", missing)
	}
}

func TestClassifyBalanceFullTray(t *testing.T) {
	r := ClassifyBalance([]string{"Com", "Ga Chien", "Rau Muong"})
	if !r.Balanced() {
		t.Fatalf("expected balanced tray, got %+v", r)
	}
	if len(r.MissingGroups()) != 0 {
		t.Fatalf("expected nothing missing, got %v", r.MissingGroups())
	}
}

func TestFormatCurrencyVNDRoundTrip(t *testing.T) {
	for _, amount := range []int{0, 999, 1000, 25000, 1234567} {
		formatted := FormatCurrency(amount, settings.CurrencyVND)
		back, err := ParseVND(formatted)
		if err != nil {
			t.Fatalf("ParseVND(%q): %v", formatted, err)
		}
		if back != amount {
			t.Fatalf("round trip %d -> %q -> %d", amount, formatted, back)
		}
	}

	if got := FormatCurrency(1234567, settings.CurrencyVND); got != "1.234.567 ₫" {
		t.Fatalf("unexpected VND formatting: %q", got)
	}
}

func TestFormatCurrencyUSD(t *testing.T) {
	got := FormatCurrency(23000, settings.CurrencyUSD)
	if got != "$1.00" {
		t.Fatalf("expected $1.00, got %q", got)
	}

	// 25000 / 23000 = 1.0869... -> rounded to 2 decimals.
	got = FormatCurrency(25000, settings.CurrencyUSD)
	if got != "$1.09" {
		t.Fatalf("expected $1.09, got %q", got)
	}

	// Parse back and check the conversion within cent rounding.
	raw := strings.ReplaceAll(strings.TrimPrefix(got, "$"), ",", "")
	usd, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		t.Fatalf("unparseable USD amount %q: %v", got, err)
	}
	diff := usd*VNDPerUSD - 25000
	if diff < -0.005*VNDPerUSD || diff > 0.005*VNDPerUSD {
		t.Fatalf("USD round trip off by %v VND", diff)
	}
}

func TestFormatCurrencyUSDGrouping(t *testing.T) {
	// 46,000,000 VND -> $2,000.00
	if got := FormatCurrency(46000000, settings.CurrencyUSD); got != "$2,000.00" {
		t.Fatalf("expected $2,000.00, got %q", got)
	}
}
