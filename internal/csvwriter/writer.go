package csvwriter

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/salsasteve/rainbow/internal/domain"
)

// WriteTo encodes table as CSV: a header taken from the first row, then one
// record per row in header order.
func WriteTo(table domain.Table, w io.Writer) error {
	if len(table) == 0 {
		return domain.ErrEmptyTable
	}

	header := table.Header()
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(table.Records(header)); err != nil {
		return err
	}
	return cw.Error()
}

// Write stores table at path. Output goes to a temporary file next to path
// and is renamed into place only after a successful flush, sync and close.
func Write(table domain.Table, path string) (err error) {
	if len(table) == 0 {
		return domain.ErrEmptyTable
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &domain.IOError{Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err := WriteTo(table, f); err != nil {
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Sync(); err != nil {
		return &domain.IOError{Op: "sync", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return &domain.IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &domain.IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
