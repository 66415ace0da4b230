// ABOUTME: MCP tool definitions and handlers
// ABOUTME: Provides BMI calculation, category lookup, and history for AI agents

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/bmi/internal/bmi"
	"github.com/harper/bmi/internal/export"
	"github.com/harper/bmi/internal/models"
	"github.com/harper/bmi/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	s.registerCalculateTool()
	s.registerListCategoriesTool()
	s.registerGetHistoryTool()
	s.registerExportHistoryTool()
}

// CalculateInput defines input for calculate_bmi tool.
type CalculateInput struct {
	Unit     string  `json:"unit,omitempty"`
	HeightCm float64 `json:"height_cm,omitempty"`
	HeightFt float64 `json:"height_ft,omitempty"`
	HeightIn float64 `json:"height_in,omitempty"`
	Weight   float64 `json:"weight"`
	Record   *bool   `json:"record,omitempty"`
}

// CalculateOutput defines output for calculate_bmi tool.
type CalculateOutput struct {
	BMI         float64  `json:"bmi"`
	BMIText     string   `json:"bmi_text"`
	Category    string   `json:"category"`
	Range       string   `json:"range"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
	IdealRange  string   `json:"ideal_range"`
	IdealLowKg  float64  `json:"ideal_low_kg"`
	IdealHighKg float64  `json:"ideal_high_kg"`
	Progress    float64  `json:"progress"`
	HeightM     float64  `json:"height_m"`
	WeightKg    float64  `json:"weight_kg"`
	Unit        string   `json:"unit"`
	Recorded    bool     `json:"recorded"`
}

func (s *Server) registerCalculateTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "calculate_bmi",
		Description: "Calculate Body Mass Index from height and weight, classify it, and return health tips and the ideal weight range.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"unit": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"metric", "imperial"},
					"description": "Unit system (default: the session's current unit)",
				},
				"height_cm": map[string]interface{}{
					"type":        "number",
					"description": "Height in centimeters (metric)",
				},
				"height_ft": map[string]interface{}{
					"type":        "number",
					"description": "Height feet component (imperial)",
				},
				"height_in": map[string]interface{}{
					"type":        "number",
					"description": "Height inches component (imperial)",
				},
				"weight": map[string]interface{}{
					"type":        "number",
					"description": "Weight in kg (metric) or lbs (imperial)",
				},
				"record": map[string]interface{}{
					"type":        "boolean",
					"description": "Record the calculation in session history (default true)",
				},
			},
			"required": []string{"weight"},
		},
	}, s.handleCalculate)
}

func (s *Server) handleCalculate(_ context.Context, req *mcp.CallToolRequest, input CalculateInput) (*mcp.CallToolResult, CalculateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unit := s.state.Unit
	if input.Unit != "" {
		parsed, err := models.ParseUnitSystem(input.Unit)
		if err != nil {
			return nil, CalculateOutput{}, err
		}
		unit = parsed
	}

	mode := session.Explicit
	if input.Record != nil && !*input.Record {
		mode = session.RealTime
	}

	raw := bmi.RawInput{
		HeightCm: input.HeightCm,
		HeightFt: input.HeightFt,
		HeightIn: input.HeightIn,
		Weight:   input.Weight,
	}
	if unit != s.state.Unit {
		// A rejected call must leave the session in its current unit.
		if _, err := bmi.Compute(bmi.ConvertToMetric(unit, raw)); err != nil {
			return nil, CalculateOutput{}, fmt.Errorf("calculate: %w", err)
		}
		s.state.SwitchUnit(unit)
	}

	view, err := s.state.Calculate(raw, mode)
	if err != nil {
		return nil, CalculateOutput{}, fmt.Errorf("calculate: %w", err)
	}
	s.logger.Debug("mcp calculation", "bmi", view.Result.Value, "recorded", mode == session.Explicit)

	output := newCalculateOutput(view, mode == session.Explicit)
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, CalculateOutput{}, fmt.Errorf("encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}, output, nil
}

func newCalculateOutput(v *session.View, recorded bool) CalculateOutput {
	cat := v.Result.Category
	return CalculateOutput{
		BMI:         v.Result.Value,
		BMIText:     v.BMIText,
		Category:    cat.Name,
		Range:       cat.Range,
		Color:       cat.Color,
		Description: cat.Description,
		Tips:        cat.Tips,
		IdealRange:  v.IdealRange,
		IdealLowKg:  v.Result.IdealLowKg,
		IdealHighKg: v.Result.IdealHighKg,
		Progress:    v.Progress,
		HeightM:     v.Measurement.HeightMeters,
		WeightKg:    v.Measurement.WeightKg,
		Unit:        string(v.Unit),
		Recorded:    recorded,
	}
}

// ListCategoriesInput defines input for list_categories tool.
type ListCategoriesInput struct{}

// ListCategoriesOutput defines output for list_categories tool.
type ListCategoriesOutput struct {
	Categories []models.Category `json:"categories"`
	Count      int               `json:"count"`
}

func (s *Server) registerListCategoriesTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_categories",
		Description: "List the four BMI categories with their ranges, descriptions, and health tips.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	}, s.handleListCategories)
}

func (s *Server) handleListCategories(_ context.Context, req *mcp.CallToolRequest, input ListCategoriesInput) (*mcp.CallToolResult, ListCategoriesOutput, error) {
	cats := models.Categories()
	output := ListCategoriesOutput{Categories: cats, Count: len(cats)}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, ListCategoriesOutput{}, fmt.Errorf("encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}, output, nil
}

// GetHistoryInput defines input for get_history tool.
type GetHistoryInput struct{}

// HistoryEntryOutput defines one history entry in tool output.
type HistoryEntryOutput struct {
	ID           string    `json:"id"`
	BMI          float64   `json:"bmi"`
	Category     string    `json:"category"`
	Color        string    `json:"color"`
	Height       string    `json:"height"`
	Weight       string    `json:"weight"`
	Unit         string    `json:"unit"`
	CalculatedAt time.Time `json:"calculated_at"`
}

// HistoryOutput defines output for get_history tool.
type HistoryOutput struct {
	Entries []HistoryEntryOutput `json:"entries"`
	Count   int                  `json:"count"`
	Unit    string               `json:"unit"`
}

func (s *Server) registerGetHistoryTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_history",
		Description: "Get the most recent recorded calculations in this session (newest first, at most 5).",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	}, s.handleGetHistory)
}

func (s *Server) handleGetHistory(_ context.Context, req *mcp.CallToolRequest, input GetHistoryInput) (*mcp.CallToolResult, HistoryOutput, error) {
	output := s.historyOutput()

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, HistoryOutput{}, fmt.Errorf("encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}, output, nil
}

func (s *Server) history() ([]models.HistoryEntry, models.UnitSystem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HistorySnapshot(), s.state.Unit
}

func (s *Server) historyOutput() HistoryOutput {
	entries, unit := s.history()
	outputs := make([]HistoryEntryOutput, len(entries))
	for i, e := range entries {
		outputs[i] = HistoryEntryOutput{
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
	return HistoryOutput{Entries: outputs, Count: len(outputs), Unit: string(unit)}
}

// ExportHistoryInput defines input for export_history tool.
type ExportHistoryInput struct {
	Format string `json:"format,omitempty"`
}

// ExportHistoryOutput defines output for export_history tool.
type ExportHistoryOutput struct {
	Format  string `json:"format"`
	Content string `json:"content"`
	Count   int    `json:"count"`
}

func (s *Server) registerExportHistoryTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "export_history",
		Description: "Export this session's calculation history as YAML or a markdown table.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"format": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"yaml", "markdown"},
					"description": "Export format (default: yaml)",
				},
			},
		},
	}, s.handleExportHistory)
}

func (s *Server) handleExportHistory(_ context.Context, req *mcp.CallToolRequest, input ExportHistoryInput) (*mcp.CallToolResult, ExportHistoryOutput, error) {
	format := export.FormatYAML
	if input.Format != "" {
		f, err := export.ParseFormat(input.Format)
		if err != nil {
			return nil, ExportHistoryOutput{}, err
		}
		format = f
	}

	entries, _ := s.history()
	data, err := export.Render(entries, format)
	if err != nil {
		return nil, ExportHistoryOutput{}, fmt.Errorf("export history: %w", err)
	}

	output := ExportHistoryOutput{Format: string(format), Content: string(data), Count: len(entries)}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: output.Content}},
	}, output, nil
}
