package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLiteCreatesFile(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "votos.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	var one int
	if err := store.DB.Raw("SELECT 1").Scan(&one).Error; err != nil || one != 1 {
		t.Fatalf("query sqlite: %d, %v", one, err)
	}
}

func TestOpenRequiresLocation(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Fatalf("expected empty sqlite path to fail")
	}
	if _, err := Connect(""); err == nil {
		t.Fatalf("expected empty dsn to fail")
	}
	var store *Database
	if err := store.Close(); err != nil {
		t.Fatalf("nil close should be a no-op: %v", err)
	}
}
