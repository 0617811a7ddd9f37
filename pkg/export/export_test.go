package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRenderQuotesEveryCell(t *testing.T) {
	out, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"Teacher", "Amount"},
		Rows: []map[string]string{
			{"Teacher": `Sara "Ms" Adel`, "Amount": "1500.00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "\"Teacher\",\"Amount\"\n\"Sara \"\"Ms\"\" Adel\",\"1500.00\"\n", string(out))
}

func TestCSVRenderSectionsSeparatedByBlankRow(t *testing.T) {
	summary := Dataset{Headers: []string{"Teacher", "Total"}, Rows: []map[string]string{{"Teacher": "A", "Total": "10"}}}
	detail := Dataset{Headers: []string{"Teacher", "Item"}, Rows: []map[string]string{{"Teacher": "A", "Item": "Class"}}}

	out, err := NewCSVExporter().RenderSections(summary, detail)
	require.NoError(t, err)
	expected := "\"Teacher\",\"Total\"\n\"A\",\"10\"\n\n\"Teacher\",\"Item\"\n\"A\",\"Class\"\n"
	assert.Equal(t, expected, string(out))
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	out, err := NewPDFExporter().Render(Dataset{
		Headers: []string{"Teacher", "Amount"},
		Rows:    []map[string]string{{"Teacher": "A", "Amount": "10"}},
	}, "Salaries")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFilename(t *testing.T) {
	at := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	assert.Equal(t, "salaries-export-2024-05-01.csv", Filename("salaries", ".csv", at))
	assert.Equal(t, "salaries-export-2024-05-01.pdf", Filename("salaries", "pdf", at))
}
