package tray

import (
	"context"
	"errors"
	"fmt"

	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/api"
	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/catalog"
)

var (
	// ErrAnalysisInFlight rejects a second analyze submission while
	// one is still pending.
	ErrAnalysisInFlight = errors.New("an analysis is already in progress")

	// ErrStaleResult marks an analyze response that arrived after the
	// state it targeted was replaced or reset. The response is
	// discarded without touching current state.
	ErrStaleResult = errors.New("stale analysis result discarded")

	// ErrNoSuchItem rejects a correction index outside the current
	// bill.
	ErrNoSuchItem = errors.New("no bill item at index")
)

// Analyzer submits a tray image for recognition and billing.
type Analyzer interface {
	Analyze(ctx context.Context, imageBase64 string) (*api.AnalysisResult, error)
}

// Session owns the analysis state for one tray at a time. All reads
// and writes go through it; presentation only ever sees snapshots.
// Execution is single-threaded: every mutation runs to completion
// before the next one starts.
type Session struct {
	catalog  *catalog.Catalog
	analyzer Analyzer

	analysis *Analysis

	// generation identifies the state an in-flight analyze call
	// targets. Every structural change bumps it, so a late response
	// for an older state is detected and dropped.
	generation uint64
	inFlight   bool
}

func NewSession(cat *catalog.Catalog, analyzer Analyzer) *Session {
	return &Session{catalog: cat, analyzer: analyzer}
}

// State reports the lifecycle position of the current tray.
func (s *Session) State() State {
	switch {
	case s.inFlight:
		return StateAnalyzing
	case s.analysis == nil:
		return StateEmpty
	default:
		return StatePopulated
	}
}

// Snapshot returns a deep copy of the current analysis. Empty state
// yields a zeroed aggregate for presentation to render against.
func (s *Session) Snapshot() Analysis {
	if s.analysis == nil {
		return Analysis{}
	}
	out := Analysis{
		BillLineItems: make([]BillLineItem, len(s.analysis.BillLineItems)),
		DetectedItems: make([]DetectedItem, len(s.analysis.DetectedItems)),
		TotalCost:     s.analysis.TotalCost,
		TotalCalories: s.analysis.TotalCalories,
		ItemsCount:    s.analysis.ItemsCount,
	}
	copy(out.BillLineItems, s.analysis.BillLineItems)
	copy(out.DetectedItems, s.analysis.DetectedItems)
	return out
}

// Analyze submits the image and ingests the result, replacing any
// previous analysis wholesale. If the state was reset or replaced
// while the call was in flight, the response is discarded.
func (s *Session) Analyze(ctx context.Context, imageBase64 string) error {
	if s.inFlight {
		return ErrAnalysisInFlight
	}

	s.inFlight = true
	gen := s.generation
	result, err := s.analyzer.Analyze(ctx, imageBase64)
	s.inFlight = false

	if gen != s.generation {
		return ErrStaleResult
	}
	if err != nil {
		return err
	}

	s.ingest(result)
	return nil
}

// ingest replaces the analysis with the server payload. Bill line
// images come from the detected item sharing the id; absent ids leave
// the ref empty so presentation shows the placeholder. Totals are
// recomputed from the lines rather than trusted from the payload.
func (s *Session) ingest(result *api.AnalysisResult) {
	images := make(map[int]string, len(result.DetectedItems))
	for _, d := range result.DetectedItems {
		images[d.ID] = d.Image
	}

	a := &Analysis{
		BillLineItems: make([]BillLineItem, 0, len(result.BillDetails)),
		DetectedItems: make([]DetectedItem, 0, len(result.DetectedItems)),
	}
	for i, b := range result.BillDetails {
		a.BillLineItems = append(a.BillLineItems, BillLineItem{
			ID:            i,
			ItemName:      b.Item,
			Price:         int(b.Price),
			Calories:      int(b.Calories),
			ImageRef:      images[b.ID],
			ManuallyAdded: b.ManuallyAdded,
		})
	}
	for _, d := range result.DetectedItems {
		a.DetectedItems = append(a.DetectedItems, DetectedItem{
			ID:              d.ID,
			RecognizedClass: d.YoloClass,
			ResolvedClass:   d.FinalClass,
			ImageRef:        d.Image,
			ManuallyAdded:   d.ManuallyAdded,
		})
	}

	s.analysis = a
	s.recomputeTotals()
	s.generation++
}

// Reset clears the tray back to empty, e.g. when the user removes the
// image. Any in-flight analyze response becomes stale.
func (s *Session) Reset() {
	s.analysis = nil
	s.generation++
}

// CorrectItem replaces the item at index with a catalog entry.
// Selecting the current name is a no-op: no recomputation, no
// generation bump, no events for the caller to notify on.
func (s *Session) CorrectItem(index int, newItemName string) error {
	if s.analysis == nil || index < 0 || index >= len(s.analysis.BillLineItems) {
		return fmt.Errorf("%w: %d", ErrNoSuchItem, index)
	}

	line := &s.analysis.BillLineItems[index]
	if line.ItemName == newItemName {
		return nil
	}

	entry, err := s.catalog.Lookup(newItemName)
	if err != nil {
		return err
	}

	line.ItemName = entry.Name
	line.Price = entry.Price
	line.Calories = entry.Calories

	s.recomputeTotals()
	s.generation++
	return nil
}

// AddManualItem appends a catalog entry the scanner missed. On an
// empty tray this initializes a one-item analysis instead of failing.
func (s *Session) AddManualItem(foodName string) error {
	entry, err := s.catalog.Lookup(foodName)
	if err != nil {
		return err
	}

	if s.analysis == nil {
		s.analysis = &Analysis{}
	}

	id := len(s.analysis.BillLineItems)
	imageRef := FoodImageRef(entry.Name)

	s.analysis.BillLineItems = append(s.analysis.BillLineItems, BillLineItem{
		ID:            id,
		ItemName:      entry.Name,
		Price:         entry.Price,
		Calories:      entry.Calories,
		ImageRef:      imageRef,
		ManuallyAdded: true,
	})
	s.analysis.DetectedItems = append(s.analysis.DetectedItems, DetectedItem{
		ID:              id,
		RecognizedClass: entry.Name,
		ResolvedClass:   entry.Name,
		ImageRef:        imageRef,
		ManuallyAdded:   true,
	})

	s.recomputeTotals()
	s.generation++
	return nil
}

// ResolvedClasses lists the resolved class of every detected item, in
// order, for the catalog name fallback.
func (s *Session) ResolvedClasses() []string {
	if s.analysis == nil {
		return nil
	}
	classes := make([]string, len(s.analysis.DetectedItems))
	for i, d := range s.analysis.DetectedItems {
		classes[i] = d.ResolvedClass
	}
	return classes
}

// recomputeTotals derives the totals by summing the full line-item
// sequence. Never incremental: compound edit sequences must not drift.
func (s *Session) recomputeTotals() {
	var cost, calories int
	for _, line := range s.analysis.BillLineItems {
		cost += line.Price
		calories += line.Calories
	}
	s.analysis.TotalCost = cost
	s.analysis.TotalCalories = calories
	s.analysis.ItemsCount = len(s.analysis.BillLineItems)
}
