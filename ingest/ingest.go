// Package ingest reads dive records from whitespace-separated text files.
//
// Each line holds eight numbers followed by a label:
//
//	meanDepth medianDepth sdDepth iqrDepth meanTemp medianTemp sdTemp iqrTemp label
//
// A first line starting with HeaderMarker is a header and is skipped.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	diveknn "go-diveknn"
)

// HeaderMarker starts the optional header line.
const HeaderMarker = "MeanDepth"

const fieldsPerLine = int(diveknn.NumFeatures) + 1

// ErrMissingHeader is returned by CheckHeader for files without a header line.
var ErrMissingHeader = errors.New("first line does not start with " + HeaderMarker)

// ErrNonFinite is returned for NaN or infinite descriptors.
var ErrNonFinite = errors.New("value is not finite")

// IngestionError reports why a source could not be read. Line is 0 when the
// failure is not tied to a particular line.
type IngestionError struct {
	Path string
	Line int
	Err  error
}

func (e *IngestionError) Error() string {
	source := e.Path
	if source == "" {
		source = "input"
	}
	if e.Line > 0 {
		return fmt.Sprintf("ingest %s:%d: %v", source, e.Line, e.Err)
	}
	return fmt.Sprintf("ingest %s: %v", source, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }

// ReadFile reads every record of the file at path.
func ReadFile(path string) ([]diveknn.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IngestionError{Path: path, Err: err}
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		var ingestErr *IngestionError
		if errors.As(err, &ingestErr) {
			ingestErr.Path = path
		}
		return nil, err
	}
	return records, nil
}

// Read parses records from r. It returns either every record or an error;
// a source without records is an error too.
func Read(r io.Reader) ([]diveknn.Record, error) {
	var records []diveknn.Record
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if line == 1 && strings.HasPrefix(text, HeaderMarker) {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		record, err := parseRecord(fields)
		if err != nil {
			return nil, &IngestionError{Line: line, Err: err}
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, &IngestionError{Err: err}
	}
	if len(records) == 0 {
		return nil, &IngestionError{Err: diveknn.ErrNoRecords}
	}
	return records, nil
}

func parseRecord(fields []string) (diveknn.Record, error) {
	if len(fields) != fieldsPerLine {
		return diveknn.Record{}, fmt.Errorf("expected %d fields, got %d", fieldsPerLine, len(fields))
	}
	var features diveknn.Features
	for f := diveknn.Feature(0); f < diveknn.NumFeatures; f++ {
		v, err := strconv.ParseFloat(fields[f], 64)
		if err != nil {
			return diveknn.Record{}, fmt.Errorf("field %s: %w", f, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return diveknn.Record{}, fmt.Errorf("field %s: %w: %q", f, ErrNonFinite, fields[f])
		}
		features[f] = v
	}
	return diveknn.NewRecord(features, fields[diveknn.NumFeatures])
}

// CheckHeader accepts path only if its first line starts with HeaderMarker.
func CheckHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &IngestionError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return &IngestionError{Path: path, Err: err}
		}
		return &IngestionError{Path: path, Err: ErrMissingHeader}
	}
	if !strings.HasPrefix(scanner.Text(), HeaderMarker) {
		return &IngestionError{Path: path, Err: ErrMissingHeader}
	}
	return nil
}
