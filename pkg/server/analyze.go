package server

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// analyzeRequest is the wrapped form of the tool input: either a raw
// statement string or a transaction array under "input".
type analyzeRequest struct {
	Input json.RawMessage `json:"input"`
}

// handleAnalyze is the plain tool endpoint. The body is either a bare JSON
// array of transaction records or {"input": <string|array>}; the response is
// the AnalysisResult.
func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	body := strings.TrimSpace(string(c.Body()))
	if body == "" {
		return s.respondError(c, fiber.StatusBadRequest, "request body required", nil)
	}

	input := json.RawMessage(body)
	if body[0] == '{' {
		var req analyzeRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			return s.respondError(c, fiber.StatusBadRequest, "invalid request body", err)
		}
		if len(req.Input) == 0 {
			return s.respondError(c, fiber.StatusBadRequest, "input field required", nil)
		}
		input = req.Input
	}

	txs, err := s.parser.ParseInput(input)
	if err != nil {
		return s.respondError(c, fiber.StatusUnprocessableEntity, err.Error(), nil)
	}

	return c.JSON(s.analyzer.Analyze(txs))
}

func (s *Server) respondError(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "path", c.Path())
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "path", c.Path())
	}
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
