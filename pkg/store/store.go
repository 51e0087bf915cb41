// Package store opens an embedded key-value database strictly read-only and
// exposes column-family-scoped lookups, scans, and counts over it. Two
// storage engines are supported, pebble and badger; the engine's own
// read-only open is the only write exclusion this package relies on.
package store

import (
	"github.com/pkg/errors"
)

// Store is a read-only handle on a column-family-partitioned key-value
// database. It is scoped to a single invocation: open, look up or scan,
// close.
type Store struct {
	engine   engine
	families map[string]struct{}
}

// engine is the minimal surface the storage backends share.
type engine interface {
	// get returns the value for a raw key, or ErrKeyNotFound.
	get(key []byte) ([]byte, error)
	// scan calls fn for every entry whose key has the given prefix, in
	// key order from the first entry.
	scan(prefix []byte, fn func(key, value []byte) error) error
	close() error
}

// Open opens the database at path read-only. The backend is detected from
// the directory contents unless opts.Backend names one.
func Open(path string, opts Options) (*Store, error) {
	backend := opts.Backend
	if backend == "" {
		detected, err := DetectBackend(path)
		if err != nil {
			return nil, err
		}
		backend = detected
	}

	var (
		eng engine
		err error
	)
	switch backend {
	case BackendPebble:
		eng, err = openPebble(path)
	case BackendBadger:
		eng, err = openBadger(path)
	default:
		return nil, errors.Errorf("unknown backend %q", backend)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s store at %s", backend, path)
	}

	cfs := opts.ColumnFamilies
	if len(cfs) == 0 {
		cfs = []string{CFMerkleRecords, CFDataRecords}
	}
	families := make(map[string]struct{}, len(cfs))
	for _, cf := range cfs {
		families[cf] = struct{}{}
	}

	return &Store{engine: eng, families: families}, nil
}

// CFKey maps a column family and key to the raw engine keyspace. Every entry
// lives under "<family>/<key>".
func CFKey(cf string, key []byte) []byte {
	raw := make([]byte, 0, len(cf)+1+len(key))
	raw = append(raw, cf...)
	raw = append(raw, '/')
	return append(raw, key...)
}

// Get retrieves the value stored under key in the given column family.
// Returns ErrKeyNotFound when the key is absent.
func (s *Store) Get(cf string, key []byte) ([]byte, error) {
	if err := s.checkFamily(cf); err != nil {
		return nil, err
	}

	value, err := s.engine.get(CFKey(cf, key))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading key from %s", cf)
	}
	return value, nil
}

// Each calls fn for every entry in the column family, first to last. Keys
// are yielded without the column family prefix and are only valid for the
// duration of the call.
func (s *Store) Each(cf string, fn func(key, value []byte) error) error {
	if err := s.checkFamily(cf); err != nil {
		return err
	}

	prefix := CFKey(cf, nil)
	err := s.engine.scan(prefix, func(key, value []byte) error {
		return fn(key[len(prefix):], value)
	})
	if err != nil {
		return errors.Wrapf(err, "iterating %s", cf)
	}
	return nil
}

// Count scans the column family from its first entry to its last and counts
// every record. An empty column family counts as zero.
func (s *Store) Count(cf string) (int, error) {
	n := 0
	err := s.Each(cf, func(key, value []byte) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Close releases the underlying engine.
func (s *Store) Close() error {
	return s.engine.close()
}

func (s *Store) checkFamily(cf string) error {
	if _, ok := s.families[cf]; !ok {
		return &ColumnFamilyError{Name: cf}
	}
	return nil
}
