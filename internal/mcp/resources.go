// ABOUTME: MCP resource implementations for daily vitals data.
// ABOUTME: Provides vitals://scores/today and vitals://trends/summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/vitals/internal/models"
	"github.com/harperreed/vitals/internal/timeseries"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// summaryFields are the metrics covered by the trend summary resource.
var summaryFields = []models.Field{
	models.FieldHRV,
	models.FieldRestingHR,
	models.FieldWeight,
	models.FieldSteps,
	models.FieldSleepDuration,
	models.FieldBodyFat,
}

func (s *Server) registerResources() {
	// vitals://scores/today - computed wellness scores for today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vitals://scores/today",
		Name:        "Today's Scores",
		Description: "Computed wellness scores for today",
		MIMEType:    "application/json",
	}, s.handleTodayScoresResource)

	// vitals://trends/summary - weekly trends for key metrics
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vitals://trends/summary",
		Name:        "Trend Summary",
		Description: "Weekly trend direction for key metrics",
		MIMEType:    "application/json",
	}, s.handleTrendSummaryResource)
}

// Resource handlers

func (s *Server) handleTodayScoresResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.Today()
	scores, err := s.scoresFor(today)
	if err != nil {
		return nil, fmt.Errorf("failed to compute scores: %w", err)
	}

	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "vitals://scores/today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTrendSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.repo.ListDailyRecords(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	trends := make(map[string]timeseries.TrendResult, len(summaryFields))
	for _, f := range summaryFields {
		trends[string(f)] = timeseries.BuildTrendResult(f, records, timeseries.WindowWeek)
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"window_days":  timeseries.WindowWeek,
		"trends":       trends,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "vitals://trends/summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
