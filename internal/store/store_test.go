package store

import (
	"path/filepath"
	"testing"
)

func TestLocalStore_SetGetDelete(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "marquee.db")

	s, err := NewLocalStore(dbPath)
	if err != nil {
		t.Fatalf("NewLocalStore returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if _, ok := s.Get("missing"); ok {
		t.Fatalf("Get(missing) ok = true, want false")
	}

	if err := s.Set("favorite_movies", []byte(`[{"id":5}]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got, ok := s.Get("favorite_movies")
	if !ok || string(got) != `[{"id":5}]` {
		t.Fatalf("Get = %q, %v; want stored value", got, ok)
	}

	if err := s.Delete("favorite_movies"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := s.Get("favorite_movies"); ok {
		t.Fatalf("Get after Delete ok = true, want false")
	}
	if err := s.Delete("favorite_movies"); err != nil {
		t.Fatalf("Delete of absent key returned error: %v", err)
	}
}

func TestLocalStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "marquee.db")

	s, err := NewLocalStore(dbPath)
	if err != nil {
		t.Fatalf("NewLocalStore returned error: %v", err)
	}
	if err := s.Set("b", []byte("2")); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := s.Set("a", []byte("1")); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := NewLocalStore(dbPath)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	got, ok := reopened.Get("a")
	if !ok || string(got) != "1" {
		t.Fatalf("Get(a) = %q, %v; want 1", got, ok)
	}
	if got, ok := reopened.Get("b"); !ok || string(got) != "2" {
		t.Fatalf("Get(b) = %q, %v; want 2", got, ok)
	}
}

func TestLocalStore_ReturnedBytesAreCopies(t *testing.T) {
	s, err := NewLocalStore("")
	if err != nil {
		t.Fatalf("NewLocalStore returned error: %v", err)
	}

	value := []byte("abc")
	if err := s.Set("k", value); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	value[0] = 'z'

	got, _ := s.Get("k")
	got[1] = 'z'

	again, _ := s.Get("k")
	if string(again) != "abc" {
		t.Fatalf("Get = %q, want abc", again)
	}
}
