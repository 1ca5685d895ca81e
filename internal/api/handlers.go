package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/leofalp/aitutor/core/agent"
	"github.com/leofalp/aitutor/core/classifier"
	"github.com/leofalp/aitutor/providers/tool"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message        string            `json:"message" validate:"required,max=4000"`
	ConversationID string            `json:"conversation_id,omitempty" validate:"omitempty,max=128"`
	Context        map[string]string `json:"context,omitempty"`
}

func (c *ChatRequest) normalize() {
	c.Message = strings.TrimSpace(c.Message)
	c.ConversationID = strings.TrimSpace(c.ConversationID)
}

// ChatResponse is the answer of POST /api/chat.
type ChatResponse struct {
	Response       string            `json:"response"`
	AgentUsed      classifier.Domain `json:"agent_used"`
	ConversationID string            `json:"conversation_id"`
	ToolsUsed      []string          `json:"tools_used"`
	Confidence     float64           `json:"confidence"`
	Metadata       map[string]any    `json:"metadata,omitempty"`
}

// HealthResponse is the answer of GET /api/health.
type HealthResponse struct {
	Status          string   `json:"status"`
	Service         string   `json:"service"`
	AgentsAvailable []string `json:"agents_available"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "AI Tutor Multi-Agent System API"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": serviceName})
}

func (s *Server) handleDetailedHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:          "healthy",
		Service:         serviceName,
		AgentsAvailable: s.agentNames(),
	})
}

func (s *Server) handleAgents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.agentNames())
}

func (s *Server) handleRouting(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.tutor.RoutingInfo())
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[ChatRequest](r)
	if err != nil {
		s.writeRequestError(w, r, err)
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	resp := s.tutor.Process(r.Context(), agent.NewQuery(req.Message, req.Context))
	writeJSON(w, http.StatusOK, ChatResponse{
		Response:       resp.Text,
		AgentUsed:      resp.Domain,
		ConversationID: conversationID,
		ToolsUsed:      resp.ToolsUsed,
		Confidence:     resp.Confidence,
		Metadata:       resp.Metadata,
	})
}

// handleTool runs a catalog tool on the raw JSON request body.
func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeRequestError(w, r, badRequest("read body: %v", err))
		return
	}
	if !json.Valid(body) {
		s.writeRequestError(w, r, badRequest("body must be a JSON object"))
		return
	}

	outcome := s.tutor.Tools().Execute(r.Context(), name, string(body))
	status := http.StatusOK
	switch {
	case outcome.Success:
	case outcome.Kind == tool.KindToolNotFound:
		status = http.StatusNotFound
	case outcome.Kind == tool.KindInvalidArguments:
		status = http.StatusBadRequest
	default:
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, outcome)
}

func (s *Server) agentNames() []string {
	agents := s.tutor.Agents()
	names := make([]string, len(agents))
	for i, a := range agents {
		names[i] = string(a)
	}
	return names
}

func (s *Server) writeRequestError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		writeError(w, reqErr.status, reqErr.message)
		return
	}
	s.logger.ErrorContext(r.Context(), "request failed", slog.Any("error", err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("encode response", slog.Any("error", err))
	}
}
