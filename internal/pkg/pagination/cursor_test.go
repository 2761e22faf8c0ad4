package pagination

import "testing"

func TestCursor_RoundTrip(t *testing.T) {
	for _, id := range []int64{1, 42, 1000000, 9223372036854775807} {
		token := Encode(id)
		got, ok := Decode(token)
		if !ok {
			t.Fatalf("decode of freshly encoded cursor failed for id=%d", id)
		}
		if got != id {
			t.Errorf("round trip: expected %d, got %d", id, got)
		}
	}
}

func TestCursor_DecodeMalformedIsSoft(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"not base64", "garbage-not-base64!!"},
		{"base64 but not json", "bm90LWpzb24="},
		{"json without id", "e30="},
		{"zero id", Encode(0)},
		{"negative id", Encode(-5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := Decode(tc.token)
			if ok || id != 0 {
				t.Errorf("expected soft failure (0, false), got (%d, %v)", id, ok)
			}
		})
	}
}

func TestAfter(t *testing.T) {
	if got := After(""); got != 0 {
		t.Errorf("empty token: expected 0, got %d", got)
	}
	if got := After("corrupted token"); got != 0 {
		t.Errorf("corrupted token: expected 0, got %d", got)
	}
	if got := After(Encode(17)); got != 17 {
		t.Errorf("valid token: expected 17, got %d", got)
	}
}

func TestPaginate_LastPageHasNoCursor(t *testing.T) {
	rows := []int64{1, 2, 3}
	key := func(v int64) int64 { return v }

	items, next := Paginate(rows, 3, key)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if next != nil {
		t.Errorf("page not overfull: next cursor must be nil, got %q", *next)
	}
}

func TestPaginate_OverfullPageTrimsAndPoints(t *testing.T) {
	rows := []int64{1, 2, 3, 4} // fetched with limit+1 = 4
	key := func(v int64) int64 { return v }

	items, next := Paginate(rows, 3, key)
	if len(items) != 3 {
		t.Fatalf("expected 3 items after trim, got %d", len(items))
	}
	if next == nil {
		t.Fatal("expected a next cursor")
	}
	// Cursor must encode the last KEPT key, not the dropped probe row.
	id, ok := Decode(*next)
	if !ok || id != 3 {
		t.Errorf("cursor must encode last kept key 3, got (%d, %v)", id, ok)
	}
}

func TestClampLimit(t *testing.T) {
	cases := []struct {
		limit  int
		want   int
		wantOK bool
	}{
		{0, 10, true},    // default
		{1, 1, true},     // lower bound
		{100, 100, true}, // upper bound
		{50, 50, true},
		{-1, 0, false},
		{101, 0, false},
	}
	for _, tc := range cases {
		got, ok := ClampLimit(tc.limit, 10, 100)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ClampLimit(%d): expected (%d, %v), got (%d, %v)", tc.limit, tc.want, tc.wantOK, got, ok)
		}
	}
}
