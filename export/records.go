// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/linkfail/simulation"
)

// ErrMalformed is returned when input cannot be decoded as trial records.
var ErrMalformed = errors.New("export: malformed input")

// Document is the serialized form of a run: its identity, presentation mode
// and the ordered records.
type Document struct {
	RunID     string                   `json:"run_id"`
	Mode      string                   `json:"mode"`
	Policy    string                   `json:"policy"`
	Analytics string                   `json:"analytics"`
	Seed      int64                    `json:"seed"`
	Cancelled bool                     `json:"cancelled"`
	Records   []simulation.TrialRecord `json:"records"`
}

// NewDocument captures res for serialization.
func NewDocument(res *simulation.Result) Document {
	return Document{
		RunID:     res.RunID.String(),
		Mode:      res.Mode().String(),
		Policy:    res.Config.Policy.String(),
		Analytics: res.Config.Analytics.String(),
		Seed:      res.Config.Seed,
		Cancelled: res.Cancelled,
		Records:   res.Records,
	}
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: WriteJSON: %w", err)
	}
	return nil
}

// ReadJSON decodes a Document written by WriteJSON.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("export: ReadJSON: %w: %w", ErrMalformed, err)
	}
	return doc, nil
}

// csvHeader is the column order of WriteCSV.
var csvHeader = []string{
	"trial", "failure_probability", "node_count", "sink",
	"edges_before", "edges_removed", "component_count",
	"mst_edges", "mst_weight", "reachable_nodes",
	"shortest_path_weight", "shortest_path_hops", "max_flow",
	"largest_component", "spanning_forest_weight", "min_cut_links",
}

// WriteCSV writes one header row and one row per record.
func WriteCSV(w io.Writer, records []simulation.TrialRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: WriteCSV: %w", err)
	}
	row := make([]string, len(csvHeader))
	for _, rec := range records {
		row[0] = strconv.Itoa(rec.Trial)
		row[1] = strconv.FormatFloat(rec.FailureProbability, 'g', -1, 64)
		row[2] = strconv.Itoa(rec.NodeCount)
		row[3] = strconv.Itoa(rec.Sink)
		row[4] = strconv.Itoa(rec.EdgesBefore)
		row[5] = strconv.Itoa(rec.EdgesRemoved)
		row[6] = strconv.Itoa(rec.ComponentCount)
		row[7] = strconv.Itoa(rec.MSTEdges)
		row[8] = strconv.FormatInt(rec.MSTWeight, 10)
		row[9] = strconv.Itoa(rec.ReachableNodes)
		row[10] = strconv.FormatInt(rec.ShortestPathWeight, 10)
		row[11] = strconv.Itoa(rec.ShortestPathHops)
		row[12] = strconv.FormatInt(rec.MaxFlow, 10)
		row[13] = strconv.Itoa(rec.LargestComponent)
		row[14] = strconv.FormatInt(rec.SpanningForestWeight, 10)
		row[15] = strconv.Itoa(rec.MinCutLinks)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: WriteCSV: %w", err)
	}
	return nil
}

// ReadCSV parses records written by WriteCSV. The header must match.
func ReadCSV(r io.Reader) ([]simulation.TrialRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("export: ReadCSV: %w: %w", ErrMalformed, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("export: ReadCSV: %w: missing header", ErrMalformed)
	}
	for i, col := range csvHeader {
		if rows[0][i] != col {
			return nil, fmt.Errorf("export: ReadCSV: %w: column %d is %q, want %q", ErrMalformed, i, rows[0][i], col)
		}
	}

	records := make([]simulation.TrialRecord, 0, len(rows)-1)
	for line, row := range rows[1:] {
		p := &fieldParser{row: row}
		rec := simulation.TrialRecord{
			Trial:              p.int(0),
			FailureProbability: p.float(1),
			NodeCount:          p.int(2),
			Sink:               p.int(3),
			EdgesBefore:        p.int(4),
			EdgesRemoved:       p.int(5),
			ComponentCount:     p.int(6),
			MSTEdges:           p.int(7),
			MSTWeight:          p.int64(8),
			ReachableNodes:     p.int(9),
			ShortestPathWeight: p.int64(10),
			ShortestPathHops:   p.int(11),
			MaxFlow:            p.int64(12),

			LargestComponent:     p.int(13),
			SpanningForestWeight: p.int64(14),
			MinCutLinks:          p.int(15),
		}
		if p.err != nil {
			return nil, fmt.Errorf("export: ReadCSV: line %d: %w: %w", line+2, ErrMalformed, p.err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// fieldParser converts row cells, keeping the first error.
type fieldParser struct {
	row []string
	err error
}

func (p *fieldParser) int64(i int) int64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(p.row[i], 10, 64)
	if err != nil {
		p.err = fmt.Errorf("%s: %w", csvHeader[i], err)
	}
	return v
}

func (p *fieldParser) int(i int) int { return int(p.int64(i)) }

func (p *fieldParser) float(i int) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(p.row[i], 64)
	if err != nil {
		p.err = fmt.Errorf("%s: %w", csvHeader[i], err)
	}
	return v
}
