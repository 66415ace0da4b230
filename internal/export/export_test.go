// ABOUTME: Tests for history export
// ABOUTME: Verifies YAML documents, markdown tables, and format selection

package export

import (
	"strings"
	"testing"
	"time"

	"github.com/harper/bmi/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleEntries() []models.HistoryEntry {
	at := time.Date(2024, 12, 14, 15, 0, 0, 0, time.UTC)
	normal := models.Result{Value: 24.22, Category: models.CategoryAt(models.Normal)}
	obese := models.Result{Value: 35.16, Category: models.CategoryAt(models.Obese)}
	return []models.HistoryEntry{
		models.NewHistoryEntry(obese, models.Measurement{HeightMeters: 1.6, WeightKg: 90}, models.Metric, at),
		models.NewHistoryEntry(normal, models.Measurement{HeightMeters: 67 * models.MetersPerInch, WeightKg: 154 * models.KgPerLb}, models.Imperial, at.Add(-time.Hour)),
	}
}

func TestToYAML_RoundTrip(t *testing.T) {
	entries := sampleEntries()

	data, err := ToYAML(entries)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, Version, doc.Version)
	assert.Equal(t, "bmi", doc.Tool)
	require.Len(t, doc.Entries, 2)

	assert.Equal(t, entries[0].ID.String(), doc.Entries[0].ID)
	assert.Equal(t, 35.2, doc.Entries[0].BMI)
	assert.Equal(t, "Obese", doc.Entries[0].Category)
	assert.Equal(t, "metric", doc.Entries[0].Unit)
	assert.Equal(t, "imperial", doc.Entries[1].Unit)
	assert.Equal(t, `5' 7"`, doc.Entries[1].Height)
	assert.True(t, entries[0].CalculatedAt.Equal(doc.Entries[0].CalculatedAt))
}

func TestToMarkdown(t *testing.T) {
	md := ToMarkdown(sampleEntries())

	assert.True(t, strings.HasPrefix(md, "# BMI History"))
	assert.Contains(t, md, "| 2024-12-14 15:00 | 35.2 | Obese | 160 cm | 90.0 kg |")
	assert.Contains(t, md, "Normal weight")
	assert.Equal(t, 2+2, strings.Count(md, "\n|"), "header, separator, and two rows")
}

func TestToMarkdown_Empty(t *testing.T) {
	assert.Contains(t, ToMarkdown(nil), "No calculations yet")
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `a\|b`, escapeMarkdown("a|b"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("md")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	_, err = ParseFormat("geojson")
	assert.Error(t, err)
}

func TestForPath(t *testing.T) {
	assert.Equal(t, FormatMarkdown, ForPath("history.md"))
	assert.Equal(t, FormatMarkdown, ForPath("/tmp/History.MARKDOWN"))
	assert.Equal(t, FormatYAML, ForPath("history.yaml"))
	assert.Equal(t, FormatYAML, ForPath("history"))
}

func TestRender(t *testing.T) {
	data, err := Render(sampleEntries(), FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# BMI History")

	data, err = Render(sampleEntries(), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tool: bmi")

	_, err = Render(nil, Format("csv"))
	assert.Error(t, err)
}
