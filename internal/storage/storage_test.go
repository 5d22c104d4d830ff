package storage_test

import (
	"testing"

	"github.com/unclebandit/campaign-tracker/internal/storage"
)

// exerciseStorage checks the contract every backend must honor:
// missing keys read as nil, sets overwrite, deletes are idempotent.
func exerciseStorage(t *testing.T, s storage.Storage) {
	t.Helper()

	v, err := s.Get("missing")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if v != nil {
		t.Errorf("missing key should read as nil, got %q", v)
	}

	if err := s.Set("k", []byte("one")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	v, _ = s.Get("k")
	if string(v) != "one" {
		t.Errorf("expected one, got %q", v)
	}

	if err := s.Set("k", []byte("two")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	v, _ = s.Get("k")
	if string(v) != "two" {
		t.Errorf("expected two after overwrite, got %q", v)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	v, _ = s.Get("k")
	if v != nil {
		t.Errorf("deleted key should read as nil, got %q", v)
	}

	if err := s.Delete("k"); err != nil {
		t.Errorf("deleting a missing key should be a no-op, got %v", err)
	}
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, storage.NewMemoryStorage())
}

func TestBoltStorage(t *testing.T) {
	s, err := storage.OpenBolt(t.TempDir())
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer s.Close()

	exerciseStorage(t, s)
}

func TestBoltStorageSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := storage.OpenBolt(dir)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := s.Set(storage.AccountsKey, []byte(`[]`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	s, err = storage.OpenBolt(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	v, err := s.Get(storage.AccountsKey)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(v) != `[]` {
		t.Errorf("value lost across reopen, got %q", v)
	}
}
