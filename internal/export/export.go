// Package export writes a run's revenue rows to files alongside the database
// load. Every exporter writes through a renameio pending file, so readers
// never see a partial file.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// writeAtomic streams write into a pending file next to path, then atomically
// replaces path with it. On error the pending file is removed and path is
// left as it was.
func writeAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir %s: %w", dir, err)
	}

	pending, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(dir),
		renameio.WithPermissions(0o644),
	)
	if err != nil {
		return fmt.Errorf("create pending file for %s: %w", path, err)
	}
	defer pending.Cleanup() //nolint:errcheck

	if err := write(pending); err != nil {
		return err
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
