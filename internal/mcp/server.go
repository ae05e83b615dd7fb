// ABOUTME: MCP server setup for the vitals store.
// ABOUTME: Wraps the MCP server with a storage Repository connection.
package mcp

import (
	"context"
	"errors"

	"github.com/harperreed/vitals/internal/models"
	"github.com/harperreed/vitals/internal/scoring"
	"github.com/harperreed/vitals/internal/storage"
	"github.com/harperreed/vitals/internal/timeseries"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "vitals",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// scoresFor assembles the scoring input for a date and computes the
// day's indicators. A date with no record of its own scores the
// chronologically nearest record; the output's Date names the day that
// was actually scored. An empty store yields empty scores rather than
// an error.
func (s *Server) scoresFor(date models.Date) (*scoring.DailyScores, error) {
	history, err := s.repo.ListDailyRecords(0)
	if err != nil {
		return nil, err
	}

	record := timeseries.Resolve(date, history)
	if record == nil {
		return &scoring.DailyScores{Date: date}, nil
	}

	var previous *models.DailyRecord
	prevDate := record.Date.AddDays(-1)
	for _, r := range history {
		if r.Date.Equal(prevDate) {
			previous = r
			break
		}
	}

	profile, err := s.repo.GetProfile()
	if err != nil {
		return nil, err
	}

	manual, err := s.repo.GetManualHeartRate(record.Date)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	return scoring.ComputeDailyScores(scoring.Input{
		Record:   record,
		Previous: previous,
		History:  history,
		Profile:  profile,
		Manual:   manual,
	}), nil
}
