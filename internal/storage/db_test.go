package storage

import (
	"bytes"
	"errors"
	"testing"
)

// testDB runs the shared test suite against a DB implementation.
func testDB(t *testing.T, db DB) {
	t.Helper()

	t.Run("PutAndGet", func(t *testing.T) {
		if err := db.Put([]byte("key1"), []byte("value1")); err != nil {
			t.Fatalf("Put() error: %v", err)
		}
		val, err := db.Get([]byte("key1"))
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if !bytes.Equal(val, []byte("value1")) {
			t.Errorf("Get() = %q, want %q", val, "value1")
		}
	})

	t.Run("GetNonexistent", func(t *testing.T) {
		_, err := db.Get([]byte("nonexistent"))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Get() for missing key = %v, want ErrNotFound", err)
		}
	})

	t.Run("Has", func(t *testing.T) {
		db.Put([]byte("exists"), []byte("yes"))

		ok, err := db.Has([]byte("exists"))
		if err != nil {
			t.Fatalf("Has() error: %v", err)
		}
		if !ok {
			t.Error("Has() = false for existing key")
		}

		ok, err = db.Has([]byte("missing"))
		if err != nil {
			t.Fatalf("Has() error: %v", err)
		}
		if ok {
			t.Error("Has() = true for missing key")
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		db.Put([]byte("ow"), []byte("first"))
		db.Put([]byte("ow"), []byte("second"))

		val, err := db.Get([]byte("ow"))
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if !bytes.Equal(val, []byte("second")) {
			t.Errorf("Get() after overwrite = %q, want %q", val, "second")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db.Put([]byte("del"), []byte("value"))
		if err := db.Delete([]byte("del")); err != nil {
			t.Fatalf("Delete() error: %v", err)
		}
		if ok, _ := db.Has([]byte("del")); ok {
			t.Error("key should be gone after Delete()")
		}
	})

	t.Run("ForEachPrefix", func(t *testing.T) {
		db.Put([]byte("p/b"), []byte("2"))
		db.Put([]byte("p/a"), []byte("1"))
		db.Put([]byte("q/a"), []byte("x"))

		var keys []string
		err := db.ForEach([]byte("p/"), func(key, value []byte) error {
			keys = append(keys, string(key))
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach() error: %v", err)
		}
		if len(keys) != 2 || keys[0] != "p/a" || keys[1] != "p/b" {
			t.Errorf("ForEach keys = %v, want [p/a p/b]", keys)
		}
	})

	t.Run("ForEachStop", func(t *testing.T) {
		stop := errors.New("stop")
		n := 0
		err := db.ForEach([]byte("p/"), func(key, value []byte) error {
			n++
			return stop
		})
		if !errors.Is(err, stop) {
			t.Errorf("ForEach() error = %v, want stop", err)
		}
		if n != 1 {
			t.Errorf("callback ran %d times, want 1", n)
		}
	})
}

func TestMemoryDB(t *testing.T) {
	db := NewMemory()
	defer db.Close()
	testDB(t, db)
}

func TestMemoryDB_CopiesValues(t *testing.T) {
	db := NewMemory()
	v := []byte("abc")
	db.Put([]byte("k"), v)
	v[0] = 'X'

	got, _ := db.Get([]byte("k"))
	if string(got) != "abc" {
		t.Errorf("stored value aliased caller slice: %q", got)
	}
	got[0] = 'Y'
	again, _ := db.Get([]byte("k"))
	if string(again) != "abc" {
		t.Errorf("returned value aliased stored slice: %q", again)
	}
}

func TestBadgerDB(t *testing.T) {
	db, err := NewBadger(t.TempDir())
	if err != nil {
		t.Fatalf("NewBadger() error: %v", err)
	}
	defer db.Close()
	testDB(t, db)
}

func TestBadgerDB_Reopen(t *testing.T) {
	dir := t.TempDir()

	db, err := NewBadger(dir)
	if err != nil {
		t.Fatalf("NewBadger() error: %v", err)
	}
	db.Put([]byte("persist"), []byte("yes"))
	db.Close()

	db, err = NewBadger(dir)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer db.Close()

	val, err := db.Get([]byte("persist"))
	if err != nil {
		t.Fatalf("Get() after reopen: %v", err)
	}
	if string(val) != "yes" {
		t.Errorf("Get() after reopen = %q, want yes", val)
	}
}
