package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const bufSize = 4 << 20 // 4 MiB

// Load reads a delimited file with a header row into a Table. The error is
// the underlying os error for missing files (errors.Is(err, os.ErrNotExist)
// holds) and a wrapped csv error for malformed content, including ragged
// rows.
func Load(path string) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // user-specified input file
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(bufio.NewReaderSize(f, bufSize))

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parsing %s: missing header row", path)
		}

		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	t := &Table{Columns: append([]string(nil), header...)}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		t.Rows = append(t.Rows, append([]string(nil), record...))
	}

	return t, nil
}

// Save writes the table to path as a delimited file with a header row,
// preserving column and row order. Parent directories are created as
// needed; overwriting an existing file logs a warning.
func Save(t *Table, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if _, err := os.Stat(path); err == nil {
		slog.Warn("overwriting existing file", slog.String("path", path))
	}

	f, err := os.Create(path) //nolint:gosec // user-specified output file
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	bw := bufio.NewWriterSize(f, bufSize)
	w := csv.NewWriter(bw)

	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}

	for i, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row %d to %s: %w", i+1, path, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	return nil
}
