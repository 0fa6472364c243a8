package kv

import (
	"path/filepath"
	"testing"
)

// backends under test; sqlite gets a fresh file per test run.
func testStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestStoreRoundtrip(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			// Absent key
			_, ok, err := store.Get("missing")
			if err != nil {
				t.Fatalf("Get(missing) error = %v", err)
			}
			if ok {
				t.Error("Get(missing) ok = true, want false")
			}

			// Set then Get
			if err := store.Set("users", `[{"rollNumber":"1"}]`); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			value, ok, err := store.Get("users")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if !ok {
				t.Fatal("Get() ok = false after Set")
			}
			if value != `[{"rollNumber":"1"}]` {
				t.Errorf("Get() = %q, want stored value", value)
			}

			// Overwrite
			if err := store.Set("users", "[]"); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}
			value, _, _ = store.Get("users")
			if value != "[]" {
				t.Errorf("Get() after overwrite = %q, want []", value)
			}

			// Remove, then Remove again (no-op)
			if err := store.Remove("users"); err != nil {
				t.Fatalf("Remove() error = %v", err)
			}
			_, ok, _ = store.Get("users")
			if ok {
				t.Error("Get() ok = true after Remove")
			}
			if err := store.Remove("users"); err != nil {
				t.Errorf("Remove() of absent key error = %v, want nil", err)
			}
		})
	}
}

func TestSQLiteDurability(t *testing.T) {
	path := filepath.Join(t.TempDir(), "durable.db")

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := store.Set("polls", `["p1"]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopen the same file; the value must survive.
	store, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer store.Close()

	value, ok, err := store.Get("polls")
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if !ok || value != `["p1"]` {
		t.Errorf("Get() after reopen = %q, %v; want stored value", value, ok)
	}
}

func TestMemoryClosed(t *testing.T) {
	store := NewMemory()
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := store.Set("k", "v"); err != ErrClosed {
		t.Errorf("Set() after Close error = %v, want ErrClosed", err)
	}
	if _, _, err := store.Get("k"); err != ErrClosed {
		t.Errorf("Get() after Close error = %v, want ErrClosed", err)
	}
	if err := store.Remove("k"); err != ErrClosed {
		t.Errorf("Remove() after Close error = %v, want ErrClosed", err)
	}
}
