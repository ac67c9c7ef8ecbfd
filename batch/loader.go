// Package batch reads the input list of accounts to process.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultKeyColumn is the header name of the account-key column.
const DefaultKeyColumn = "AccountKey"

// Load reads a batch CSV and returns the account keys in input order. The
// first row is a header; keyColumn names the column holding the account
// key (matched case-insensitively). Rows with a blank key are skipped.
func Load(path string, keyColumn string) ([]string, error) {
	if keyColumn == "" {
		keyColumn = DefaultKeyColumn
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read batch header: %w", err)
	}

	keyIndex := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), keyColumn) {
			keyIndex = i
			break
		}
	}
	if keyIndex < 0 {
		return nil, fmt.Errorf("batch file %s has no %q column", path, keyColumn)
	}

	var keys []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read batch row: %w", err)
		}
		if keyIndex >= len(row) {
			continue
		}
		key := strings.TrimSpace(row[keyIndex])
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}

	return keys, nil
}
