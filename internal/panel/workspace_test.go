package panel

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/Paintersrp/activities/internal/activity"
)

func TestRefreshAllReachesEveryOpenPanel(t *testing.T) {
	t.Parallel()

	src := &staticSource{records: []activity.FileRecord{
		activity.NewFileRecord("b.md", 100, 1),
		activity.NewFileRecord("a.md", 300, 2),
	}}
	settings := &fixedSettings{value: activity.DefaultSettings()}

	w := NewWorkspace()
	var containers []*recordingContainer
	for _, id := range []string{"left", "right", "closed"} {
		p, c := newTestPanel(id, src, settings, nil)
		if err := w.Open(context.Background(), p); err != nil {
			t.Fatalf("Open(%s) returned error: %v", id, err)
		}
		containers = append(containers, c)
	}
	w.Close(w.Panels()[2])

	settings.value = activity.DisplaySettings{ShowExtension: true, SortMode: activity.SortModifiedTime}
	if err := w.OnSettingsChanged(context.Background(), settings.value); err != nil {
		t.Fatalf("RefreshAll returned error: %v", err)
	}

	want := []string{"a.md", "b.md"}
	for i, c := range containers[:2] {
		if got := c.texts(KindItem); !slices.Equal(got, want) {
			t.Fatalf("panel %d items = %v, want %v", i, got, want)
		}
	}
	if got := containers[2].elements; len(got) != 0 {
		t.Fatalf("closed panel should stay empty, got %v", got)
	}
	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", w.Len())
	}
}

func TestRefreshAllWithNoPanels(t *testing.T) {
	t.Parallel()

	if err := NewWorkspace().RefreshAll(context.Background()); err != nil {
		t.Fatalf("RefreshAll returned error: %v", err)
	}
}

func TestRefreshAllContinuesPastFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("listing failed")
	bad := &staticSource{err: boom}
	good := &staticSource{records: []activity.FileRecord{activity.NewFileRecord("a.md", 1, 1)}}
	settings := &fixedSettings{value: activity.DefaultSettings()}

	w := NewWorkspace()
	p1, _ := newTestPanel("bad", bad, settings, nil)
	p2, c2 := newTestPanel("good", good, settings, nil)
	_ = w.Open(context.Background(), p1)
	_ = w.Open(context.Background(), p2)

	good.records = append(good.records, activity.NewFileRecord("b.md", 1, 1))
	err := w.RefreshAll(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined listing error, got %v", err)
	}
	if got := c2.texts(KindItem); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("good panel was not refreshed: %v", got)
	}
}

func TestOpenTwiceRegistersOnce(t *testing.T) {
	t.Parallel()

	src := &staticSource{}
	p, _ := newTestPanel("p", src, &fixedSettings{value: activity.DefaultSettings()}, nil)

	w := NewWorkspace()
	_ = w.Open(context.Background(), p)
	_ = w.Open(context.Background(), p)

	if w.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", w.Len())
	}
	if src.calls != 2 {
		t.Fatalf("expected re-open to re-render, got %d renders", src.calls)
	}

	w.CloseAll()
	if w.Len() != 0 || p.IsOpen() {
		t.Fatal("CloseAll left panels open")
	}
}
