package server

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// JSON-RPC error codes used by the agent envelope.
const (
	codeInvalidRequest = -32600
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

type rpcRequest struct {
	JSONRPC string     `json:"jsonrpc"`
	ID      any        `json:"id"`
	Method  string     `json:"method"`
	Params  *rpcParams `json:"params"`
}

type rpcParams struct {
	Message   *rpcMessage  `json:"message"`
	Messages  []rpcMessage `json:"messages"`
	ContextID string       `json:"contextId"`
	TaskID    string       `json:"taskId"`
}

type rpcMessage struct {
	Kind      string    `json:"kind,omitempty"`
	Role      string    `json:"role"`
	Parts     []rpcPart `json:"parts,omitempty"`
	MessageID string    `json:"messageId,omitempty"`
	TaskID    string    `json:"taskId,omitempty"`
}

type rpcPart struct {
	Kind string          `json:"kind"`
	Text string          `json:"text,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

type rpcArtifact struct {
	ArtifactID string    `json:"artifactId"`
	Name       string    `json:"name"`
	Parts      []rpcPart `json:"parts"`
}

type rpcTaskStatus struct {
	State     string     `json:"state"`
	Timestamp string     `json:"timestamp"`
	Message   rpcMessage `json:"message"`
}

type rpcTask struct {
	ID        string        `json:"id"`
	ContextID string        `json:"contextId"`
	Status    rpcTaskStatus `json:"status"`
	Artifacts []rpcArtifact `json:"artifacts"`
	History   []rpcMessage  `json:"history"`
	Kind      string        `json:"kind"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func rpcErrorResponse(id any, code int, message string, details string) fiber.Map {
	e := rpcError{Code: code, Message: message}
	if details != "" {
		e.Data = fiber.Map{"details": details}
	}
	return fiber.Map{"jsonrpc": "2.0", "id": id, "error": e}
}

// handleAgent implements the task envelope: it validates the JSON-RPC frame,
// extracts the statement payload from the message parts, runs the
// parse-and-analyze pipeline and wraps the result into a completed task.
func (s *Server) handleAgent(c *fiber.Ctx) error {
	var req rpcRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(rpcErrorResponse(nil, codeInvalidRequest, "Invalid Request", err.Error()))
	}

	if req.JSONRPC != "2.0" || req.ID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(rpcErrorResponse(req.ID, codeInvalidRequest, "Invalid Request", ""))
	}

	agentID := c.Params("agentId")
	if agentID != AgentID {
		return c.Status(fiber.StatusNotFound).JSON(rpcErrorResponse(req.ID, codeInvalidParams, fmt.Sprintf("Agent '%s' not found", agentID), ""))
	}

	var incoming []rpcMessage
	var contextID, taskID string
	if req.Params != nil {
		if req.Params.Message != nil {
			incoming = []rpcMessage{*req.Params.Message}
		} else {
			incoming = req.Params.Messages
		}
		contextID = req.Params.ContextID
		taskID = req.Params.TaskID
	}

	payload := collectPayload(incoming)
	if payload == "" {
		return c.Status(fiber.StatusBadRequest).JSON(rpcErrorResponse(req.ID, codeInvalidRequest, "Invalid Request", "no message content"))
	}

	txs, err := s.parser.ParseText(payload)
	if err != nil {
		s.logger.Warn("analysis failed", "agent", agentID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(rpcErrorResponse(req.ID, codeInternalError, "Internal error", err.Error()))
	}
	result := s.analyzer.Analyze(txs)

	resultData, err := json.Marshal(result)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(rpcErrorResponse(req.ID, codeInternalError, "Internal error", err.Error()))
	}

	if taskID == "" {
		taskID = uuid.NewString()
	}
	if contextID == "" {
		contextID = uuid.NewString()
	}

	agentMessage := rpcMessage{
		Kind:      "message",
		Role:      "agent",
		Parts:     []rpcPart{{Kind: "text", Text: result.Summary}},
		MessageID: uuid.NewString(),
		TaskID:    taskID,
	}

	history := make([]rpcMessage, 0, len(incoming)+1)
	for _, msg := range incoming {
		if msg.MessageID == "" {
			msg.MessageID = uuid.NewString()
		}
		if msg.TaskID == "" {
			msg.TaskID = taskID
		}
		msg.Kind = "message"
		history = append(history, msg)
	}
	history = append(history, agentMessage)

	task := rpcTask{
		ID:        taskID,
		ContextID: contextID,
		Status: rpcTaskStatus{
			State:     "completed",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Message:   agentMessage,
		},
		Artifacts: []rpcArtifact{
			{
				ArtifactID: uuid.NewString(),
				Name:       AgentID + "Response",
				Parts:      []rpcPart{{Kind: "text", Text: result.Summary}},
			},
			{
				ArtifactID: uuid.NewString(),
				Name:       "AnalysisResult",
				Parts:      []rpcPart{{Kind: "data", Data: resultData}},
			},
		},
		History: history,
		Kind:    "task",
	}

	return c.JSON(fiber.Map{"jsonrpc": "2.0", "id": req.ID, "result": task})
}

// collectPayload joins the textual content of the incoming messages. Data
// parts are passed through as raw JSON so a transaction array survives
// untouched.
func collectPayload(messages []rpcMessage) string {
	var chunks []string
	for _, msg := range messages {
		for _, part := range msg.Parts {
			switch part.Kind {
			case "text":
				if part.Text != "" {
					chunks = append(chunks, part.Text)
				}
			case "data":
				if len(part.Data) > 0 {
					chunks = append(chunks, string(part.Data))
				}
			}
		}
	}
	return strings.TrimSpace(strings.Join(chunks, "\n"))
}
