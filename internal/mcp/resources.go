// ABOUTME: MCP resource definitions
// ABOUTME: Provides read-only views of categories and session history

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/bmi/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	categoriesURI = "bmi://categories"
	historyURI    = "bmi://history"
)

func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		Name:        categoriesURI,
		Description: "BMI categories with ranges, colors, descriptions, and health tips",
		URI:         categoriesURI,
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)

	s.mcp.AddResource(&mcp.Resource{
		Name:        historyURI,
		Description: "Recorded calculations in this session, newest first",
		URI:         historyURI,
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

func (s *Server) handleCategoriesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	cats := models.Categories()
	return jsonResource(categoriesURI, ListCategoriesOutput{Categories: cats, Count: len(cats)})
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(historyURI, s.historyOutput())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		},
	}, nil
}
