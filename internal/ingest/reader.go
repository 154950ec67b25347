// Package ingest turns raw CSV documents into catalog places.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one CSV data row keyed by its trimmed header names.
type Row map[string]string

// ReadRows parses a header-prefixed CSV document into rows. Blank lines are
// skipped and ragged rows are tolerated; cells keep their surrounding
// whitespace except for the leading space the reader already trims.
func ReadRows(data []byte) ([]Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		row := make(Row, len(header))
		for i, h := range header {
			if h == "" {
				continue
			}
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
