// ABOUTME: Export of in-session calculation history
// ABOUTME: Supports versioned YAML documents and markdown tables

package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/harper/bmi/internal/models"
	"gopkg.in/yaml.v3"
)

// Version is the current export format version.
const Version = "1.0"

// Format names an export encoding.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Document is the YAML export format.
type Document struct {
	Version    string        `yaml:"version"`
	ExportedAt time.Time     `yaml:"exported_at"`
	Tool       string        `yaml:"tool"`
	Entries    []EntryExport `yaml:"entries"`
}

// EntryExport is one history entry in the export format.
type EntryExport struct {
	ID           string    `yaml:"id"`
	BMI          float64   `yaml:"bmi"`
	Category     string    `yaml:"category"`
	Color        string    `yaml:"color"`
	Height       string    `yaml:"height"`
	Weight       string    `yaml:"weight"`
	Unit         string    `yaml:"unit"`
	CalculatedAt time.Time `yaml:"calculated_at"`
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use 'yaml' or 'markdown')", s)
	}
}

// ForPath picks a format from a file extension, defaulting to YAML.
func ForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatYAML
	}
}

// Render encodes entries in the given format.
func Render(entries []models.HistoryEntry, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return ToYAML(entries)
	case FormatMarkdown:
		return []byte(ToMarkdown(entries)), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ToYAML exports history entries, most recent first.
func ToYAML(entries []models.HistoryEntry) ([]byte, error) {
	doc := Document{
		Version:    Version,
		ExportedAt: time.Now().UTC(),
		Tool:       "bmi",
		Entries:    make([]EntryExport, len(entries)),
	}
	for i, e := range entries {
		doc.Entries[i] = EntryExport{
			ID:           e.ID.String(),
			BMI:          e.BMI,
			Category:     e.Category,
			Color:        e.Color,
			Height:       e.Height,
			Weight:       e.Weight,
			Unit:         string(e.Unit),
			CalculatedAt: e.CalculatedAt,
		}
	}
	return yaml.Marshal(doc)
}

// ToMarkdown exports history entries as a markdown table.
func ToMarkdown(entries []models.HistoryEntry) string {
	var sb strings.Builder
	sb.WriteString("# BMI History\n\n")
	if len(entries) == 0 {
		sb.WriteString("_No calculations yet._\n")
		return sb.String()
	}
	sb.WriteString("| Date | BMI | Category | Height | Weight |\n")
	sb.WriteString("|------|-----|----------|--------|--------|\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "| %s | %.1f | %s | %s | %s |\n",
			e.CalculatedAt.Format("2006-01-02 15:04"),
			e.BMI,
			escapeMarkdown(e.Category),
			escapeMarkdown(e.Height),
			escapeMarkdown(e.Weight))
	}
	return sb.String()
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
