package storage

import (
	"errors"
	"fmt"
	"os"
)

// ExportFile writes the ledger to path, truncating any existing file. The
// file is closed before returning, and a failed close is reported.
func ExportFile(l *HistoryLedger, path string) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			n, err = 0, fmt.Errorf("closing export file: %w", cerr)
		}
	}()

	return l.Export(f)
}

// ImportFile appends the records in path to the ledger.
func ImportFile(l *HistoryLedger, path string) (ImportResult, error) {
	f, err := os.Open(path) // nolint:gosec
	if err != nil {
		return ImportResult{}, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	return l.Import(f)
}

// IsNotExist reports whether err was caused by a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
