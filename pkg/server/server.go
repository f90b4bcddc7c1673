package server

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/Thomson-dev/bank-summary-agent/pkg/analyzer"
	"github.com/Thomson-dev/bank-summary-agent/pkg/categories"
	"github.com/Thomson-dev/bank-summary-agent/pkg/config"
	"github.com/Thomson-dev/bank-summary-agent/pkg/parser"
)

// AgentID is the single agent this server exposes.
const AgentID = "bank-summary"

// Server exposes the statement analysis engine over HTTP: a JSON-RPC task
// envelope under /agent/:agentId and a plain tool endpoint under /api.
type Server struct {
	config   *config.Config
	logger   *log.Logger
	app      *fiber.App
	parser   *parser.Parser
	analyzer *analyzer.Analyzer
}

// New creates the server and registers its routes.
func New(cfg *config.Config, logger *log.Logger) (*Server, error) {
	table := categories.Default
	if cfg.CategoriesFile != "" {
		loaded, err := categories.Load(cfg.CategoriesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load category table: %w", err)
		}
		table = loaded
		logger.Info("loaded category table", "file", cfg.CategoriesFile, "entries", len(table))
	}

	s := &Server{
		config:   cfg,
		logger:   logger,
		app:      fiber.New(fiber.Config{DisableStartupMessage: true}),
		parser:   parser.NewWithTable(logger, table),
		analyzer: analyzer.New(cfg.CurrencySymbol, cfg.TopCategories),
	}
	s.setupRoutes()
	return s, nil
}

// App exposes the underlying fiber app, used by tests via app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) setupRoutes() {
	s.app.Use(s.withLogging)

	s.app.Get("/api/health", s.handleHealth)
	s.app.Post("/api/analyze", s.handleAnalyze)
	s.app.Post("/agent/:agentId", s.handleAgent)
}

// withLogging logs each request and converts panics into a JSON-RPC internal
// error instead of killing the connection.
func (s *Server) withLogging(c *fiber.Ctx) error {
	s.logger.Debug("http request", "method", c.Method(), "path", c.Path(), "remote", c.IP())
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("panic recovered", "panic", rec, "method", c.Method(), "path", c.Path())
			_ = c.Status(fiber.StatusInternalServerError).JSON(rpcErrorResponse(nil, codeInternalError, "Internal error", fmt.Sprintf("panic: %v", rec)))
		}
	}()
	return c.Next()
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"agent":  AgentID,
	})
}
