package catalog

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the catalog could not be fetched. Callers
	// should fall back to names derived from the detection result.
	ErrUnavailable = errors.New("food catalog unavailable")

	// ErrUnknownItem means a name did not resolve to a catalog entry.
	ErrUnknownItem = errors.New("unknown food item")
)

// Source fetches the raw catalog, typically the food-info endpoint.
type Source interface {
	FoodInfo(ctx context.Context) ([]Entry, error)
}

// Catalog caches the canteen menu for the session. A successful Load
// replaces the cache atomically; a failed one leaves it intact.
type Catalog struct {
	source  Source
	entries []Entry
	byName  map[string]Entry
}

func New(source Source) *Catalog {
	return &Catalog{source: source}
}

func (c *Catalog) Load(ctx context.Context) error {
	entries, err := c.source.FoodInfo(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	byName := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}
	c.entries = entries
	c.byName = byName
	return nil
}

// Loaded reports whether a catalog has been fetched this session.
func (c *Catalog) Loaded() bool {
	return c.byName != nil
}

// Lookup resolves a name exactly; names are canonical catalog keys.
func (c *Catalog) Lookup(name string) (Entry, error) {
	e, ok := c.byName[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	return e, nil
}

// Entries returns the cached catalog in load order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Names returns every catalog name in load order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// NamesFallback derives a candidate name list from resolved detection
// classes when the catalog is unavailable: de-duplicated, keeping
// first-occurrence order.
func NamesFallback(resolvedClasses []string) []string {
	seen := make(map[string]bool, len(resolvedClasses))
	var names []string
	for _, name := range resolvedClasses {
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
