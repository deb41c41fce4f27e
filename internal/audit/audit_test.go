package audit_test

import (
	"testing"

	"tradepost/internal/audit"
)

func openLog(t *testing.T) *audit.Log {
	t.Helper()
	l, err := audit.Open(":memory:")
	if err != nil {
		t.Fatalf("open audit log: %v", err)
	}
	t.Cleanup(func() { l.DB.Close() })
	return l
}

func TestRecordAndRecent(t *testing.T) {
	l := openLog(t)

	l.Record("item.buy", 1, 7, 100, true)
	l.Record("item.buy", 2, 7, 100, false)
	l.Record("auction.settle", 3, 8, 42, true)

	rows, err := l.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rows))
	}
	seen := map[string]bool{}
	for _, r := range rows {
		seen[r.Kind] = true
		if r.ID == "" {
			t.Fatal("row without an id")
		}
	}
	if !seen["item.buy"] || !seen["auction.settle"] {
		t.Fatalf("missing kinds: %+v", rows)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	l := openLog(t)

	// Same-second inserts must still come back in reverse insertion
	// order.
	l.Record("item.add", 1, 1, 5, true)
	l.Record("item.bid", 2, 1, 10, true)
	l.Record("auction.settle", 2, 1, 10, true)

	rows, err := l.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"auction.settle", "item.bid", "item.add"}
	for i, w := range want {
		if rows[i].Kind != w {
			t.Fatalf("row %d is %s, want %s", i, rows[i].Kind, w)
		}
	}
}

func TestRecentLimit(t *testing.T) {
	l := openLog(t)
	for i := 0; i < 5; i++ {
		l.Record("item.bid", 1, 1, i, true)
	}

	rows, err := l.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("limit ignored: got %d rows", len(rows))
	}

	// Non-positive limit falls back to the default.
	rows, err = l.Recent(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Fatalf("default limit: got %d rows", len(rows))
	}
}

func TestRecentEmpty(t *testing.T) {
	l := openLog(t)
	rows, err := l.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf("fresh log must be empty, got %d rows", len(rows))
	}
}
