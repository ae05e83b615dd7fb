// ABOUTME: MCP tool implementations for daily vitals data.
// ABOUTME: Exposes scores, trends, fallback resolution, and the data lock.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/vitals/internal/datalock"
	"github.com/harperreed/vitals/internal/models"
	"github.com/harperreed/vitals/internal/storage"
	"github.com/harperreed/vitals/internal/timeseries"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// get_daily_scores
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_daily_scores",
		Description: "Get computed wellness scores (sleep, recovery, strain, readiness, activity, stress) for a date",
	}, s.handleGetDailyScores)

	// get_trend
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trend",
		Description: "Get the trend for a metric over a window (forward-filled series with direction)",
	}, s.handleGetTrend)

	// resolve_metric
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "resolve_metric",
		Description: "Resolve metric values for a date, falling back to the most recent prior record per field",
	}, s.handleResolveMetric)

	// add_record
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_record",
		Description: "Record daily metric values for a date (merged into any existing record)",
	}, s.handleAddRecord)

	// set_data_lock
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_data_lock",
		Description: "Enable or disable the data lock protecting records on or before a date",
	}, s.handleSetDataLock)

	// get_lock_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_lock_status",
		Description: "Get the data lock state and how many records it protects",
	}, s.handleGetLockStatus)
}

// Tool input/output types

type getDailyScoresInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type getTrendInput struct {
	Field  string `json:"field" jsonschema:"Metric field (hrv, resting_hr, weight, steps, sleep_duration, ...)"`
	Window int    `json:"window,omitempty" jsonschema:"Window size in days (default 7)"`
}

type resolveMetricInput struct {
	Fields []string `json:"fields" jsonschema:"Metric fields to resolve"`
	Date   string   `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type addRecordInput struct {
	Date    string             `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	Metrics map[string]float64 `json:"metrics" jsonschema:"Field-to-value map (e.g. {\"hrv\": 45, \"weight\": 82.5})"`
}

type setDataLockInput struct {
	Enabled  bool   `json:"enabled" jsonschema:"Whether the lock should be active"`
	LockDate string `json:"lock_date,omitempty" jsonschema:"Lock boundary date (YYYY-MM-DD), required when enabling"`
}

type lockStatusOutput struct {
	Enabled        bool   `json:"enabled"`
	LockDate       string `json:"lock_date,omitempty"`
	ProtectedCount int    `json:"protected_count"`
	Message        string `json:"message"`
}

type recordOutput struct {
	Date    string `json:"date"`
	Fields  int    `json:"fields"`
	Message string `json:"message"`
}

// parseDateOrToday parses a YYYY-MM-DD string, defaulting to today.
func parseDateOrToday(s string) (models.Date, error) {
	if s == "" {
		return models.Today(), nil
	}
	return models.ParseDate(s)
}

// Tool handlers

func (s *Server) handleGetDailyScores(ctx context.Context, req *mcp.CallToolRequest, input getDailyScoresInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDateOrToday(input.Date)
	if err != nil {
		return nil, nil, err
	}

	scores, err := s.scoresFor(date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute scores: %w", err)
	}
	return nil, scores, nil
}

func (s *Server) handleGetTrend(ctx context.Context, req *mcp.CallToolRequest, input getTrendInput) (*mcp.CallToolResult, any, error) {
	if !models.IsValidField(input.Field) {
		return nil, nil, fmt.Errorf("unknown field: %s", input.Field)
	}
	window := input.Window
	if window <= 0 {
		window = timeseries.WindowWeek
	}

	records, err := s.repo.ListDailyRecords(0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list records: %w", err)
	}

	result := timeseries.BuildTrendResult(models.Field(input.Field), records, window)
	return nil, result, nil
}

func (s *Server) handleResolveMetric(ctx context.Context, req *mcp.CallToolRequest, input resolveMetricInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDateOrToday(input.Date)
	if err != nil {
		return nil, nil, err
	}

	fields := make([]models.Field, 0, len(input.Fields))
	for _, f := range input.Fields {
		if !models.IsValidField(f) {
			return nil, nil, fmt.Errorf("unknown field: %s", f)
		}
		fields = append(fields, models.Field(f))
	}

	records, err := s.repo.ListDailyRecords(0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list records: %w", err)
	}

	resolutions := timeseries.ResolveFields(fields, date, records)
	return nil, resolutions, nil
}

func (s *Server) handleAddRecord(ctx context.Context, req *mcp.CallToolRequest, input addRecordInput) (*mcp.CallToolResult, recordOutput, error) {
	date, err := parseDateOrToday(input.Date)
	if err != nil {
		return nil, recordOutput{}, err
	}
	if len(input.Metrics) == 0 {
		return nil, recordOutput{}, fmt.Errorf("no metrics provided")
	}

	r := models.NewDailyRecord(date)
	for name, value := range input.Metrics {
		if !models.IsValidField(name) {
			return nil, recordOutput{}, fmt.Errorf("unknown field: %s", name)
		}
		r.SetValue(models.Field(name), models.Float(value))
	}

	if err := s.repo.SaveDailyRecord(r); err != nil {
		if errors.Is(err, datalock.ErrDateLocked) {
			return nil, recordOutput{}, fmt.Errorf("date %s is protected by the data lock", date)
		}
		return nil, recordOutput{}, fmt.Errorf("failed to save record: %w", err)
	}

	return nil, recordOutput{
		Date:    date.String(),
		Fields:  len(input.Metrics),
		Message: fmt.Sprintf("Recorded %d metric(s) for %s", len(input.Metrics), date),
	}, nil
}

func (s *Server) handleSetDataLock(ctx context.Context, req *mcp.CallToolRequest, input setDataLockInput) (*mcp.CallToolResult, lockStatusOutput, error) {
	guard, err := s.loadGuard()
	if err != nil {
		return nil, lockStatusOutput{}, err
	}

	if input.Enabled {
		date, err := models.ParseDate(input.LockDate)
		if err != nil {
			return nil, lockStatusOutput{}, fmt.Errorf("lock_date is required to enable the lock: %w", err)
		}
		if err := guard.SetLock(date); err != nil {
			return nil, lockStatusOutput{}, err
		}
	} else {
		guard.Unlock()
	}

	state := guard.State()
	if err := s.repo.SaveLockState(&state); err != nil {
		return nil, lockStatusOutput{}, fmt.Errorf("failed to save lock state: %w", err)
	}

	out, err := s.lockStatus(guard)
	return nil, out, err
}

func (s *Server) handleGetLockStatus(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, lockStatusOutput, error) {
	guard, err := s.loadGuard()
	if err != nil {
		return nil, lockStatusOutput{}, err
	}
	out, err := s.lockStatus(guard)
	return nil, out, err
}

// loadGuard builds a Guard from the persisted lock state.
func (s *Server) loadGuard() (*datalock.Guard, error) {
	state, err := s.repo.GetLockState()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return datalock.NewGuard(nil), nil
		}
		return nil, fmt.Errorf("failed to load lock state: %w", err)
	}
	return datalock.NewGuard(state), nil
}

// lockStatus summarizes the guard for tool output.
func (s *Server) lockStatus(guard *datalock.Guard) (lockStatusOutput, error) {
	out := lockStatusOutput{Enabled: guard.Locked()}
	if guard.Locked() {
		out.LockDate = guard.LockDate().String()
	}

	records, err := s.repo.ListDailyRecords(0)
	if err != nil {
		return lockStatusOutput{}, fmt.Errorf("failed to list records: %w", err)
	}
	out.ProtectedCount = guard.ProtectedCount(records)

	if guard.Locked() {
		out.Message = fmt.Sprintf("Data lock active: %d record(s) on or before %s are protected",
			out.ProtectedCount, out.LockDate)
	} else {
		out.Message = "Data lock is disabled"
	}
	return out, nil
}
