package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"honnef.co/go/patchwork"
	_ "honnef.co/go/patchwork/archive/drivers"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), Config{Driver: "sqlite", DSN: ":memory:"}, t.Logf)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testComposition(t *testing.T) *patchwork.Composition {
	t.Helper()
	cfg := patchwork.DefaultConfig()
	cfg.Seed = 1<<63 + 5
	pts := []patchwork.Point{
		patchwork.Pt(3, 3), patchwork.Pt(4, 3), patchwork.Pt(3, 4),
		patchwork.Pt(10, 10), patchwork.Pt(11, 10),
	}
	clusterer := patchwork.ClusterFunc(func(points []patchwork.Point, k int) [][]int {
		return [][]int{{0, 1, 2}, {3, 4}}
	})
	comp, err := patchwork.New(cfg, patchwork.WithPoints(pts), patchwork.WithClusterer(clusterer))
	if err != nil {
		t.Fatal(err)
	}
	if res, _ := comp.Step(); res.Outcome != patchwork.Extracted {
		t.Fatalf("got outcome %v, want %v", res.Outcome, patchwork.Extracted)
	}
	return comp
}

func TestRoundTrip(t *testing.T) {
	s := openMemory(t)
	comp := testComposition(t)
	rec := NewRecord(comp, []byte("<svg/>"))
	if err := s.Save(context.Background(), rec); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(rec, got); d != "" {
		t.Error(d)
	}
	if got.Config.Seed != 1<<63+5 {
		t.Errorf("got seed %d", got.Config.Seed)
	}
	if got.Stats.Extracted != 1 || got.Stats.Remaining != 2 {
		t.Errorf("unexpected stats %+v", got.Stats)
	}
}

func TestGetNotFound(t *testing.T) {
	s := openMemory(t)
	if _, err := s.Get(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want %v", err, ErrNotFound)
	}
}

func TestSaveTwice(t *testing.T) {
	s := openMemory(t)
	rec := NewRecord(testComposition(t), []byte("<svg/>"))
	if err := s.Save(context.Background(), rec); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(context.Background(), rec); err == nil {
		t.Error("saving a record twice succeeded")
	}
}

func TestSaveCorrupt(t *testing.T) {
	s := openMemory(t)
	rec := NewRecord(testComposition(t), []byte("<svg/>"))
	rec.SVG = []byte("<svg></svg>")
	if err := s.Save(context.Background(), rec); !errors.Is(err, ErrCorrupt) {
		t.Errorf("got %v, want %v", err, ErrCorrupt)
	}
}

func TestList(t *testing.T) {
	s := openMemory(t)
	comp := testComposition(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := range 3 {
		rec := NewRecord(comp, []byte{'a' + byte(i)})
		rec.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := s.Save(context.Background(), rec); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, rec.ID)
	}

	all, err := s.List(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	var got []uuid.UUID
	for _, rec := range all {
		got = append(got, rec.ID)
	}
	want := []uuid.UUID{ids[2], ids[1], ids[0]}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	some, err := s.List(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(some) != 2 || some[0].ID != ids[2] {
		t.Errorf("unexpected limited listing %v", some)
	}
}

func TestOpenErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := Open(ctx, Config{Driver: "oracle"}, nil); err == nil {
		t.Error("unsupported driver accepted")
	}
	if _, err := Open(ctx, Config{Driver: "pgx"}, nil); err == nil {
		t.Error("pgx without DSN accepted")
	}
}

func TestPlaceholders(t *testing.T) {
	pg := newPlaceholderGenerator("pgx")
	sq := newPlaceholderGenerator("sqlite")
	got := []string{pg(), pg(), sq(), sq()}
	want := []string{"$1", "$2", "?", "?"}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}
