package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/seenimoa/riskcore/pkg/models"
)

func TestSeededCatalogUniverse(t *testing.T) {
	c := NewSeededCatalog()

	list := c.List()
	if len(list) != 10 {
		t.Fatalf("expected 10 seeded instruments, got %d", len(list))
	}

	wantOrder := []string{"AAPL", "AMZN", "GOOGL", "HD", "JNJ", "JPM", "MSFT", "PG", "TSLA", "V"}
	for i, ticker := range wantOrder {
		if list[i].Ticker != ticker {
			t.Errorf("list[%d] = %s, want %s", i, list[i].Ticker, ticker)
		}
	}

	aapl, err := c.Get("AAPL")
	if err != nil {
		t.Fatalf("Get(AAPL) failed: %v", err)
	}
	if aapl.Name != "Apple Inc." || aapl.Sector != "Technology" || aapl.Exchange != "NASDAQ" {
		t.Errorf("unexpected AAPL identity: %+v", aapl)
	}
	if aapl.PE != 28.5 || aapl.Beta != 1.2 || aapl.ProfitMargin != 0.266 {
		t.Errorf("unexpected AAPL fundamentals: %+v", aapl)
	}

	// Prices come from live sources, never the seed.
	for _, inst := range list {
		if inst.LastPrice != 0 {
			t.Errorf("%s seeded with a price: %g", inst.Ticker, inst.LastPrice)
		}
	}
}

func TestGetNormalizesTicker(t *testing.T) {
	c := NewSeededCatalog()

	for _, input := range []string{"aapl", " AAPL ", "$AAPL", "Apple"} {
		inst, err := c.Get(input)
		if err != nil {
			t.Errorf("Get(%q) failed: %v", input, err)
			continue
		}
		if inst.Ticker != "AAPL" {
			t.Errorf("Get(%q) = %s, want AAPL", input, inst.Ticker)
		}
	}
}

func TestGetUnknownTicker(t *testing.T) {
	c := NewSeededCatalog()

	_, err := c.Get("ZZZZ")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertReplaces(t *testing.T) {
	c := NewCatalog()

	if err := c.Upsert(models.Instrument{Ticker: "nvda", Name: "NVIDIA Corporation", PE: 60.0}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	inst, err := c.Get("NVDA")
	if err != nil {
		t.Fatalf("Get after Upsert failed: %v", err)
	}
	if inst.Ticker != "NVDA" || inst.PE != 60.0 {
		t.Errorf("stored instrument = %+v", inst)
	}

	// Upsert replaces the whole record.
	if err := c.Upsert(models.Instrument{Ticker: "NVDA", Name: "NVIDIA Corporation", Beta: 1.7}); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	inst, _ = c.Get("NVDA")
	if inst.PE != 0 || inst.Beta != 1.7 {
		t.Errorf("Upsert should replace, got %+v", inst)
	}
}

func TestUpsertRequiresTicker(t *testing.T) {
	c := NewCatalog()

	err := c.Upsert(models.Instrument{Name: "No Ticker Inc."})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestMergePreservesFundamentals(t *testing.T) {
	c := NewSeededCatalog()

	merged, err := c.Merge(models.Instrument{Ticker: "AAPL", LastPrice: 189.5, LastVolume: 52_000_000})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if merged.LastPrice != 189.5 || merged.LastVolume != 52_000_000 {
		t.Errorf("quote fields not applied: %+v", merged)
	}
	// A price-only update must not clobber seeded fundamentals.
	if merged.PE != 28.5 || merged.Beta != 1.2 || merged.Sector != "Technology" {
		t.Errorf("fundamentals clobbered by quote merge: %+v", merged)
	}

	stored, _ := c.Get("AAPL")
	if stored.LastPrice != 189.5 || stored.PE != 28.5 {
		t.Errorf("stored instrument = %+v", stored)
	}
}

func TestMergeInsertsUnknownTicker(t *testing.T) {
	c := NewSeededCatalog()

	merged, err := c.Merge(models.Instrument{Ticker: "NVDA", LastPrice: 450.0})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if merged.Ticker != "NVDA" || merged.LastPrice != 450.0 {
		t.Errorf("merged = %+v", merged)
	}
	if len(c.List()) != 11 {
		t.Errorf("expected 11 instruments after insert, got %d", len(c.List()))
	}
}

func TestMergeRequiresTicker(t *testing.T) {
	c := NewCatalog()

	_, err := c.Merge(models.Instrument{LastPrice: 100})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	c := NewSeededCatalog()

	tests := []struct {
		query string
		want  []string
	}{
		{"tech", []string{"AAPL", "GOOGL", "MSFT"}},     // sector match
		{"banking", []string{"JPM"}},                    // industry match
		{"visa", []string{"V"}},                         // name match
		{"j", []string{"JNJ", "JPM"}},                   // ticker prefix
		{"zzz", nil},
	}

	for _, tt := range tests {
		got := c.Search(tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q) returned %d results, want %d", tt.query, len(got), len(tt.want))
			continue
		}
		for i, ticker := range tt.want {
			if got[i].Ticker != ticker {
				t.Errorf("Search(%q)[%d] = %s, want %s", tt.query, i, got[i].Ticker, ticker)
			}
		}
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	c := NewSeededCatalog()
	if got := c.Search("  "); len(got) != 10 {
		t.Errorf("empty query returned %d results, want 10", len(got))
	}
}

func TestCatalogConcurrentAccess(t *testing.T) {
	c := NewSeededCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := c.Get("AAPL"); err != nil {
					t.Errorf("Get failed: %v", err)
				}
				if _, err := c.Merge(models.Instrument{Ticker: "AAPL", LastPrice: 190.0}); err != nil {
					t.Errorf("Merge failed: %v", err)
				}
				c.List()
			}
		}()
	}
	wg.Wait()

	inst, _ := c.Get("AAPL")
	if inst.PE != 28.5 {
		t.Errorf("fundamentals corrupted under concurrency: %+v", inst)
	}
}
