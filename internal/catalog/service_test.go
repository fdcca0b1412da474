package catalog

import (
	"context"
	"errors"
	"testing"
)

type fakeSource struct {
	entries []Entry
	err     error
}

func (f *fakeSource) FoodInfo(ctx context.Context) ([]Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func testEntries() []Entry {
	return []Entry{
		{Name: "Com", Price: 10000, Calories: 150, Category: "Carbohydrate"},
		{Name: "Ga Chien", Price: 22000, Calories: 280, Category: "Protein"},
		{Name: "Canh Chua", Price: 12000, Calories: 60, Category: "Soup"},
	}
}

func TestLoadAndLookup(t *testing.T) {
	c := New(&fakeSource{entries: testEntries()})

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e, err := c.Lookup("Ga Chien")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Price != 22000 || e.Calories != 280 {
		t.Fatalf("wrong entry: %+v", e)
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	c := New(&fakeSource{entries: testEntries()})
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.Lookup("ga chien"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

func TestLoadFailureKeepsPreviousCache(t *testing.T) {
	src := &fakeSource{entries: testEntries()}
	c := New(src)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src.err = errors.New("connection refused")
	err := c.Load(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	// Previous cache must survive the failed refetch.
	if _, err := c.Lookup("Com"); err != nil {
		t.Fatalf("cache lost after failed load: %v", err)
	}
}

func TestNamesFallbackDeduplicates(t *testing.T) {
	got := NamesFallback([]string{"com", "ga chien", "com", "canh chua", "ga chien"})
	want := []string{"com", "ga chien", "canh chua"}

	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
