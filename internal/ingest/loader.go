package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"bestsellers/internal/book"

	"github.com/gocarina/gocsv"
)

// ErrMissingHeader is returned when the input has no header row or lacks a required column.
var ErrMissingHeader = errors.New("csv header missing")

// Loader turns CSV input into books.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader that reports skipped rows to logger.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadFile reads the dataset at path.
func (l *Loader) LoadFile(path string) ([]book.Book, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	books, report, err := l.Read(f)
	if err != nil {
		return nil, report, fmt.Errorf("read dataset %s: %w", path, err)
	}
	l.logger.Info("dataset loaded",
		slog.String("path", path),
		slog.Int("rows", report.RowsRead),
		slog.Int("books", report.BooksLoaded),
		slog.Int("skipped", report.RowsSkipped),
	)
	return books, report, nil
}

// Read parses CSV from r. Malformed rows are skipped and listed in the report.
func (l *Loader) Read(r io.Reader) ([]book.Book, Report, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, Report{}, ErrMissingHeader
	}
	if err != nil {
		return nil, Report{}, fmt.Errorf("read header: %w", err)
	}
	header = cleanHeader(header)
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, Report{}, fmt.Errorf("%w: %s", ErrMissingHeader, strings.Join(missing, ", "))
	}

	var rows []Row
	rr := &replayReader{header: header, Reader: cr}
	if err := gocsv.UnmarshalCSV(rr, &rows); err != nil {
		return nil, Report{}, fmt.Errorf("decode rows: %w", err)
	}

	report := Report{RowsRead: len(rows)}
	books := make([]book.Book, 0, len(rows))
	for i, row := range rows {
		line := rr.lines[i]
		b, err := row.Book()
		if err == nil {
			err = validateBook(b)
		}
		if err != nil {
			l.logger.Warn("skipping malformed row", slog.Int("line", line), slog.String("err", err.Error()))
			report.Skipped = append(report.Skipped, RowError{Line: line, Err: err})
			continue
		}
		books = append(books, b)
	}
	report.BooksLoaded = len(books)
	report.RowsSkipped = len(report.Skipped)
	return books, report, nil
}

// Write emits books in the layout Read expects.
func Write(w io.Writer, books []book.Book) error {
	rows := make([]Row, len(books))
	for i, b := range books {
		rows[i] = RowFromBook(b)
	}
	return gocsv.Marshal(rows, w)
}

func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, c := range Columns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// replayReader hands the already consumed header back to gocsv and remembers
// the physical line each data record starts on.
type replayReader struct {
	header []string
	lines  []int
	*csv.Reader
}

func (r *replayReader) Read() ([]string, error) {
	if r.header != nil {
		h := r.header
		r.header = nil
		return h, nil
	}
	rec, err := r.Reader.Read()
	if err != nil {
		return nil, err
	}
	line, _ := r.Reader.FieldPos(0)
	r.lines = append(r.lines, line)
	return rec, nil
}

func (r *replayReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
