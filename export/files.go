// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkfail/simulation"
	"github.com/katalvlaran/linkfail/stats"
)

// ErrUnsupportedFormat is returned for a path whose extension names no
// known format.
var ErrUnsupportedFormat = errors.New("export: unsupported file format")

// Format is an on-disk record format.
type Format int

const (
	FormatJSON Format = iota
	FormatCSV
	// FormatSnappyJSON is JSON inside the snappy framing format.
	FormatSnappyJSON
)

// FormatOf picks the format from the file extension: .json, .csv or .json.sz.
func FormatOf(path string) (Format, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json.sz"):
		return FormatSnappyJSON, nil
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON, nil
	case strings.HasSuffix(lower, ".csv"):
		return FormatCSV, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// WriteSnappyJSON writes doc as JSON compressed with the snappy framing format.
func WriteSnappyJSON(w io.Writer, doc Document) error {
	sw := snappy.NewBufferedWriter(w)
	if err := WriteJSON(sw, doc); err != nil {
		return err
	}
	if err := sw.Close(); err != nil {
		return fmt.Errorf("export: WriteSnappyJSON: %w", err)
	}
	return nil
}

// ReadSnappyJSON reads a Document written by WriteSnappyJSON.
func ReadSnappyJSON(r io.Reader) (Document, error) {
	return ReadJSON(snappy.NewReader(r))
}

// WriteFile writes the records of res to path in the format its extension
// names. CSV files carry the records only.
func WriteFile(path string, res *simulation.Result) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: WriteFile: %w", cerr)
		}
	}()

	doc := NewDocument(res)
	switch format {
	case FormatCSV:
		return WriteCSV(f, doc.Records)
	case FormatSnappyJSON:
		return WriteSnappyJSON(f, doc)
	default:
		return WriteJSON(f, doc)
	}
}

// ReadFile reads records written by WriteFile. For CSV only Records is set.
func ReadFile(path string) (Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Document{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("export: ReadFile: %w", err)
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		recs, err := ReadCSV(f)
		return Document{Records: recs}, err
	case FormatSnappyJSON:
		return ReadSnappyJSON(f)
	default:
		return ReadJSON(f)
	}
}

// WriteSummaryYAML encodes a run report as YAML.
func WriteSummaryYAML(w io.Writer, rep stats.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("export: WriteSummaryYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("export: WriteSummaryYAML: %w", err)
	}
	return nil
}

// WriteSummaryFile writes the YAML report to path.
func WriteSummaryFile(path string, rep stats.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: WriteSummaryFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: WriteSummaryFile: %w", cerr)
		}
	}()
	return WriteSummaryYAML(f, rep)
}

// ReadSummaryYAML decodes a report written by WriteSummaryYAML.
func ReadSummaryYAML(r io.Reader) (stats.Report, error) {
	var rep stats.Report
	if err := yaml.NewDecoder(r).Decode(&rep); err != nil {
		return rep, fmt.Errorf("export: ReadSummaryYAML: %w: %w", ErrMalformed, err)
	}
	return rep, nil
}
