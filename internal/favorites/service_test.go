package favorites

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.LocalStore) {
	t.Helper()
	st, err := store.NewLocalStore("")
	if err != nil {
		t.Fatalf("NewLocalStore returned error: %v", err)
	}
	return NewService(st, slog.New(slog.NewTextHandler(io.Discard, nil))), st
}

func movie(id int, title string) domain.MovieSummary {
	return domain.MovieSummary{
		ID:           id,
		Title:        title,
		PosterPath:   "/p.jpg",
		BackdropPath: "/b.jpg",
		VoteAverage:  7.5,
		ReleaseDate:  "2010-07-16",
	}
}

func TestService_EmptyWhenMissing(t *testing.T) {
	s, _ := newTestService(t)
	if got := s.List(); len(got) != 0 {
		t.Fatalf("List = %v, want empty", got)
	}
	if s.IsFavorite(5) {
		t.Fatalf("IsFavorite(5) = true on empty collection")
	}
}

func TestService_AddIsIdempotent(t *testing.T) {
	s, _ := newTestService(t)

	if err := s.Add(movie(5, "Inception")); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := s.Add(movie(5, "Inception")); err != nil {
		t.Fatalf("second Add returned error: %v", err)
	}

	got := s.List()
	if len(got) != 1 || got[0].ID != 5 {
		t.Fatalf("List = %#v, want exactly id 5", got)
	}
	if got[0].BackdropPath != "" {
		t.Fatalf("stored backdrop = %q, want minimal record", got[0].BackdropPath)
	}
}

func TestService_RemoveAbsentIsNoop(t *testing.T) {
	s, _ := newTestService(t)
	_ = s.Add(movie(1, "A"))

	if err := s.Remove(99); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if got := s.List(); len(got) != 1 {
		t.Fatalf("List = %v, want 1 entry", got)
	}
}

func TestService_SequenceMatchesSetSemantics(t *testing.T) {
	s, _ := newTestService(t)

	type op struct {
		add bool
		id  int
	}
	ops := []op{
		{true, 1}, {true, 2}, {true, 1}, {false, 3}, {true, 3},
		{false, 2}, {true, 4}, {false, 1}, {true, 2}, {true, 4},
	}

	var want []int
	for _, o := range ops {
		if o.add {
			if err := s.Add(movie(o.id, "m")); err != nil {
				t.Fatalf("Add(%d): %v", o.id, err)
			}
			found := false
			for _, id := range want {
				if id == o.id {
					found = true
				}
			}
			if !found {
				want = append(want, o.id)
			}
		} else {
			if err := s.Remove(o.id); err != nil {
				t.Fatalf("Remove(%d): %v", o.id, err)
			}
			kept := want[:0]
			for _, id := range want {
				if id != o.id {
					kept = append(kept, id)
				}
			}
			want = kept
		}
	}

	got := s.List()
	if len(got) != len(want) {
		t.Fatalf("List ids = %v, want %v", ids(got), want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("List ids = %v, want %v", ids(got), want)
		}
	}
}

func TestService_CorruptEntryReadsEmpty(t *testing.T) {
	s, st := newTestService(t)
	if err := st.Set(StoreKey, []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got := s.List(); len(got) != 0 {
		t.Fatalf("List = %v, want empty", got)
	}
	if _, ok := st.Get(StoreKey); ok {
		t.Fatalf("corrupt entry still stored after read")
	}
	if err := s.Add(movie(7, "Seven")); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if got := s.List(); len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("List = %v, want [7]", ids(got))
	}
}

func TestService_Toggle(t *testing.T) {
	s, _ := newTestService(t)

	on, err := s.Toggle(movie(3, "Three"))
	if err != nil || !on {
		t.Fatalf("Toggle = %v, %v; want true, nil", on, err)
	}
	on, err = s.Toggle(movie(3, "Three"))
	if err != nil || on {
		t.Fatalf("Toggle = %v, %v; want false, nil", on, err)
	}
	if s.IsFavorite(3) {
		t.Fatalf("IsFavorite(3) = true after second toggle")
	}
}

func TestService_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "marquee.db")

	st, err := store.NewLocalStore(dbPath)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	if err := NewService(st, nil).Add(movie(42, "Answer")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	_ = st.Close()

	st, err = store.NewLocalStore(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if !NewService(st, nil).IsFavorite(42) {
		t.Fatalf("IsFavorite(42) = false after reopen")
	}
}

type failingStore struct{ domain.Store }

func (failingStore) Get(string) ([]byte, bool) { return nil, false }
func (failingStore) Set(string, []byte) error  { return errors.New("disk full") }

func TestService_AddReportsStoreFailure(t *testing.T) {
	s := NewService(failingStore{}, nil)
	if err := s.Add(movie(1, "A")); err == nil {
		t.Fatalf("Add returned nil error, want store failure")
	}
}

func ids(movies []domain.MovieSummary) []int {
	out := make([]int, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}
