package converters

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/topcorr/corr"
)

// WriteGraph dispatches on format.
func WriteGraph(w io.Writer, doc GraphDocument, format string) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	switch f {
	case FormatYAML:
		return WriteGraphYAML(w, doc)
	case FormatCSV:
		return WriteGraphCSV(w, doc)
	}

	return WriteGraphJSON(w, doc)
}

// WriteGraphJSON writes doc as indented JSON.
func WriteGraphJSON(w io.Writer, doc GraphDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteGraphJSON: %w", err)
	}

	return nil
}

// WriteGraphYAML writes doc as YAML.
func WriteGraphYAML(w io.Writer, doc GraphDocument) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteGraphYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteGraphYAML: %w", err)
	}

	return nil
}

// WriteGraphCSV writes one edge per line under a "u,v,source,target,weight" header.
func WriteGraphCSV(w io.Writer, doc GraphDocument) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"u", "v", "source", "target", "weight"}); err != nil {
		return fmt.Errorf("WriteGraphCSV: %w", err)
	}
	for _, e := range doc.Edges {
		rec := []string{
			strconv.Itoa(e.U),
			strconv.Itoa(e.V),
			e.Source,
			e.Target,
			strconv.FormatFloat(e.Weight, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteGraphCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteGraphCSV: %w", err)
	}

	return nil
}

// WriteMatrixCSV writes m row by row; with header, the labels come first.
// Values use the shortest representation that parses back exactly.
func WriteMatrixCSV(w io.Writer, m *corr.Matrix, header bool) error {
	cw := csv.NewWriter(w)
	n := m.Size()
	if header {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = m.Label(i)
		}
		if err := cw.Write(labels); err != nil {
			return fmt.Errorf("WriteMatrixCSV: %w", err)
		}
	}
	rec := make([]string, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rec[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteMatrixCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteMatrixCSV: %w", err)
	}

	return nil
}

// WriteGraphs writes several documents at once: a JSON array, a YAML
// sequence, or one CSV table with a leading method column.
func WriteGraphs(w io.Writer, docs []GraphDocument, format string) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err = enc.Encode(docs); err != nil {
			return fmt.Errorf("WriteGraphs: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(docs); err != nil {
			return fmt.Errorf("WriteGraphs: %w", err)
		}
		if err = enc.Close(); err != nil {
			return fmt.Errorf("WriteGraphs: %w", err)
		}
		return nil
	}

	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"method", "u", "v", "source", "target", "weight"}); err != nil {
		return fmt.Errorf("WriteGraphs: %w", err)
	}
	for _, doc := range docs {
		for _, e := range doc.Edges {
			rec := []string{
				doc.Method,
				strconv.Itoa(e.U),
				strconv.Itoa(e.V),
				e.Source,
				e.Target,
				strconv.FormatFloat(e.Weight, 'g', -1, 64),
			}
			if err = cw.Write(rec); err != nil {
				return fmt.Errorf("WriteGraphs: %w", err)
			}
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("WriteGraphs: %w", err)
	}

	return nil
}

// WriteMatrix dispatches on format. header only applies to CSV; JSON and
// YAML carry labels whenever m has them.
func WriteMatrix(w io.Writer, m *corr.Matrix, format string, header bool) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	if f == FormatCSV {
		return WriteMatrixCSV(w, m, header)
	}

	doc := MatrixDocument{Labels: m.Labels(), Matrix: m.ToRows()}
	if f == FormatYAML {
		enc := yaml.NewEncoder(w)
		if err = enc.Encode(doc); err != nil {
			return fmt.Errorf("WriteMatrix: %w", err)
		}
		if err = enc.Close(); err != nil {
			return fmt.Errorf("WriteMatrix: %w", err)
		}
		return nil
	}
	if err = json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("WriteMatrix: %w", err)
	}

	return nil
}
