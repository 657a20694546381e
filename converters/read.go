package converters

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/topcorr/corr"
)

// ReadMatrix dispatches on format. header only applies to CSV.
func ReadMatrix(r io.Reader, format string, header bool) (*corr.Matrix, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	}

	return ReadCSV(r, header)
}

// ReadCSV parses n rows of n comma-separated numbers. With header, the first
// record is taken as the node labels. Surrounding whitespace in cells is ignored.
func ReadCSV(r io.Reader, header bool) (*corr.Matrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged input is reported by corr as a shape error
	cr.TrimLeadingSpace = true

	var (
		labels []string
		rows   [][]float64
		line   int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w: %v", ErrParse, err)
		}
		line++
		if header && labels == nil {
			labels = make([]string, len(rec))
			for i, s := range rec {
				labels[i] = strings.TrimSpace(s)
			}
			continue
		}
		row := make([]float64, len(rec))
		for i, s := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("ReadCSV: %w: line %d column %d: %v", ErrParse, line, i+1, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	return fromDocument("ReadCSV", MatrixDocument{Labels: labels, Matrix: rows})
}

// ReadJSON parses a MatrixDocument, or a bare [[...]] array.
func ReadJSON(r io.Reader) (*corr.Matrix, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadJSON: %w", err)
	}

	var doc MatrixDocument
	if trimmed := strings.TrimSpace(string(raw)); strings.HasPrefix(trimmed, "[") {
		err = json.Unmarshal(raw, &doc.Matrix)
	} else {
		err = json.Unmarshal(raw, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadJSON: %w: %v", ErrParse, err)
	}

	return fromDocument("ReadJSON", doc)
}

// ReadYAML parses a MatrixDocument, or a bare sequence of sequences.
func ReadYAML(r io.Reader) (*corr.Matrix, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		return nil, fmt.Errorf("ReadYAML: %w: %v", ErrParse, err)
	}

	var doc MatrixDocument
	var err error
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		err = node.Decode(&doc.Matrix)
	} else {
		err = node.Decode(&doc)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadYAML: %w: %v", ErrParse, err)
	}

	return fromDocument("ReadYAML", doc)
}

func fromDocument(tag string, doc MatrixDocument) (*corr.Matrix, error) {
	var opts []corr.Option
	if doc.Labels != nil {
		opts = append(opts, corr.WithLabels(doc.Labels))
	}
	m, err := corr.New(doc.Matrix, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return m, nil
}
