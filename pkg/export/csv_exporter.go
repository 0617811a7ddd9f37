package export

import (
	"bytes"
	"fmt"
	"strings"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Records flattens the dataset into header + data rows in header order.
func (d Dataset) Records() [][]string {
	out := make([][]string, 0, len(d.Rows)+1)
	out = append(out, d.Headers)
	for _, row := range d.Rows {
		record := make([]string, len(d.Headers))
		for i, header := range d.Headers {
			record[i] = row[header]
		}
		out = append(out, record)
	}
	return out
}

// CSVExporter renders one or more datasets into CSV bytes. Every cell is
// double-quoted; sections are separated by a blank row.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for a single dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	return e.RenderSections(data)
}

// RenderSections renders each dataset with its own header row.
func (e *CSVExporter) RenderSections(sections ...Dataset) ([]byte, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("csv requires at least one section")
	}
	buf := &bytes.Buffer{}
	for i, section := range sections {
		if len(section.Headers) == 0 {
			return nil, fmt.Errorf("csv section %d requires at least one header", i)
		}
		if i > 0 {
			buf.WriteString("\n")
		}
		for _, record := range section.Records() {
			writeRecord(buf, record)
		}
	}
	return buf.Bytes(), nil
}

func writeRecord(buf *bytes.Buffer, record []string) {
	for i, cell := range record {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}
