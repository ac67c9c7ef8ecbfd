// Package ledger persists the per-account audit trail of a migration run.
// The CSV file is the ledger of record; an optional Postgres sink mirrors
// the same rows for reporting.
package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"upnmigrate/migrate"
)

var header = []string{"Date-Changed", "Mode", "Name", "AccountKey", "OldUPN", "NewUPN", "Status", "Details"}

// Writer appends one CSV row per processed account to a run-unique file.
// Single writer, strictly sequential; rows are flushed per append so an
// interrupted run shows exactly the accounts processed so far.
type Writer struct {
	// Path is the ledger file created for this run.
	Path string

	file *os.File
	csv  *csv.Writer
}

// NewWriter creates a fresh ledger file for this run under dir and writes
// the header row. A prior run's ledger is never appended to; the file name
// carries a timestamp and a short run ID to keep runs apart.
func NewWriter(dir string, mode migrate.Mode, now time.Time) (*Writer, error) {
	runID := uuid.NewString()[:8]
	name := fmt.Sprintf("upn-%s-%s-%s.csv", strings.ToLower(string(mode)), now.Format("20060102-150405"), runID)
	path := filepath.Join(dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create audit ledger %s: %w", path, err)
	}

	w := &Writer{Path: path, file: file, csv: csv.NewWriter(file)}
	if err := w.writeRow(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("write audit ledger header: %w", err)
	}
	return w, nil
}

// Append writes one audit record as a CSV row and flushes it to disk.
func (w *Writer) Append(rec migrate.AuditRecord) error {
	row := []string{
		rec.Timestamp.Format(time.RFC3339),
		string(rec.Mode),
		rec.DisplayName,
		rec.AccountKey,
		rec.OldUPN,
		rec.NewUPN,
		rec.Status,
		rec.Details,
	}
	if err := w.writeRow(row); err != nil {
		return fmt.Errorf("append to audit ledger %s: %w", w.Path, err)
	}
	return nil
}

func (w *Writer) writeRow(row []string) error {
	if err := w.csv.Write(row); err != nil {
		return err
	}
	w.csv.Flush()
	return w.csv.Error()
}

// Close closes the ledger file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
