package fetch

import (
	"context"
	"testing"
	"time"

	"fairdex/domain/table"
)

type countingFetcher struct {
	calls int
	table table.Table
}

func (f *countingFetcher) Fetch(context.Context, string, []string, table.YearRange) (table.Table, error) {
	f.calls++
	return f.table, nil
}

func nonEmpty() table.Table {
	return table.New("x", []table.Record{{Country: "Brazil", ISO3: "BRA", Year: 2020, Value: 1}})
}

func TestCachedFetcherServesRepeatsFromCache(t *testing.T) {
	upstream := &countingFetcher{table: nonEmpty()}
	cached := NewCachedFetcher(upstream, NewTTLCache(time.Minute, 16))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := cached.Fetch(ctx, "WB_X", nil, table.YearRange{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Len() != 1 {
			t.Fatalf("unexpected table: %+v", got)
		}
	}

	if upstream.calls != 1 {
		t.Errorf("expected one upstream call, got %d", upstream.calls)
	}
}

func TestCachedFetcherKeyIncludesArguments(t *testing.T) {
	upstream := &countingFetcher{table: nonEmpty()}
	cached := NewCachedFetcher(upstream, NewTTLCache(time.Minute, 16))
	ctx := context.Background()

	cached.Fetch(ctx, "WB_X", nil, table.YearRange{})
	cached.Fetch(ctx, "WB_X", []string{"BRA"}, table.YearRange{})
	cached.Fetch(ctx, "WB_X", nil, table.YearRange{From: 2010, To: 2020})

	if upstream.calls != 3 {
		t.Errorf("distinct arguments must miss the cache, got %d calls", upstream.calls)
	}
}

func TestCachedFetcherDoesNotCacheEmptyTables(t *testing.T) {
	upstream := &countingFetcher{table: table.Empty("x")}
	cached := NewCachedFetcher(upstream, NewTTLCache(time.Minute, 16))
	ctx := context.Background()

	cached.Fetch(ctx, "WB_X", nil, table.YearRange{})
	cached.Fetch(ctx, "WB_X", nil, table.YearRange{})

	if upstream.calls != 2 {
		t.Errorf("empty results must not be cached, got %d calls", upstream.calls)
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	cache := NewTTLCache(time.Minute, 16)
	now := time.Unix(1000, 0)
	cache.now = func() time.Time { return now }

	cache.Put("k", nonEmpty())
	if _, ok := cache.Get("k"); !ok {
		t.Fatal("expected fresh entry to hit")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := cache.Get("k"); ok {
		t.Error("expected entry to expire after TTL")
	}
}

func TestTTLCacheEvictsOldestWhenFull(t *testing.T) {
	cache := NewTTLCache(time.Hour, 2)
	now := time.Unix(1000, 0)
	cache.now = func() time.Time { return now }

	cache.Put("a", nonEmpty())
	now = now.Add(time.Second)
	cache.Put("b", nonEmpty())
	now = now.Add(time.Second)
	cache.Put("c", nonEmpty())

	if _, ok := cache.Get("a"); ok {
		t.Error("expected oldest entry to be evicted")
	}
	if _, ok := cache.Get("b"); !ok {
		t.Error("expected newer entry to survive")
	}
	if _, ok := cache.Get("c"); !ok {
		t.Error("expected newest entry to survive")
	}
}
