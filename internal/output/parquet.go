package output

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/civicres/internal/model"
)

// EncodeParquet writes one row per cleaned resource.
func EncodeParquet(w io.Writer, rows []model.ResourceRow) error {
	writer := parquet.NewGenericWriter[model.ResourceRow](w)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

// Reader wraps a parquet GenericReader for streaming ResourceRow records.
type Reader struct {
	file   *os.File
	reader *parquet.GenericReader[model.ResourceRow]
}

// OpenParquet opens a result file written with the parquet format.
func OpenParquet(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	return &Reader{file: f, reader: parquet.NewGenericReader[model.ResourceRow](pf)}, nil
}

// NumRows returns the total number of rows in the file.
func (r *Reader) NumRows() int64 {
	return r.reader.NumRows()
}

// Read reads up to len(rows) records. Returns io.EOF when done.
func (r *Reader) Read(rows []model.ResourceRow) (int, error) {
	n, err := r.reader.Read(rows)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("read parquet rows: %w", err)
	}
	return n, err
}

// Close releases all resources.
func (r *Reader) Close() error {
	if err := r.reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}

// ReadAll drains r into a single slice sized from the file metadata.
func (r *Reader) ReadAll() ([]model.ResourceRow, error) {
	all := make([]model.ResourceRow, r.NumRows())
	read := 0
	for read < len(all) {
		n, err := r.Read(all[read:])
		read += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return all[:read], nil
}
