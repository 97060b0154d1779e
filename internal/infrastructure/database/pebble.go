package database

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/cockroachdb/pebble"
)

// NewPebbleDB opens (or creates) the local key/value store under dir.
func NewPebbleDB(dir string) (*pebble.DB, error) {
	opts := &pebble.Options{
		// The store holds one small record; keep memtables tiny.
		MemTableSize: 4 << 20,
	}
	db, err := pebble.Open(filepath.Clean(dir), opts)
	if err != nil {
		return nil, fmt.Errorf("pebble open %s: %w", dir, err)
	}
	log.Printf("Opened local store at %s", dir)
	return db, nil
}
