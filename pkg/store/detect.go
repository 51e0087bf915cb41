package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DetectBackend inspects a database directory and identifies which storage
// engine wrote it. Pebble directories carry a CURRENT file pointing at a
// MANIFEST; badger directories carry a KEYREGISTRY.
func DetectBackend(path string) (Backend, error) {
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrapf(err, "store path %s", path)
	}
	if _, err := os.Stat(filepath.Join(path, "CURRENT")); err == nil {
		return BackendPebble, nil
	}
	if _, err := os.Stat(filepath.Join(path, "KEYREGISTRY")); err == nil {
		return BackendBadger, nil
	}
	return "", errors.Errorf("cannot identify storage engine at %s: no CURRENT or KEYREGISTRY file", path)
}
