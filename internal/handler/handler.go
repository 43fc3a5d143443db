package handler

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/intelliclaim/apiconfig/internal/endpoints"
)

// ConfigResponse is the body of GET /config.
type ConfigResponse struct {
	BaseURL   string                    `json:"base_url"`
	Endpoints map[endpoints.Name]string `json:"endpoints"`
}

type ConfigHandler struct {
	logger *slog.Logger
	body   []byte
}

// NewConfigHandler encodes the endpoint set once; every request gets the
// same bytes.
func NewConfigHandler(logger *slog.Logger, e *endpoints.Endpoints) (*ConfigHandler, error) {
	body, err := json.Marshal(ConfigResponse{
		BaseURL:   e.BaseURL(),
		Endpoints: e.Map(),
	})
	if err != nil {
		return nil, err
	}

	return &ConfigHandler{
		logger: logger,
		body:   body,
	}, nil
}

func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Received request",
		slog.String("from", extractClientIP(r)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("user_agent", r.UserAgent()))

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	if _, err := w.Write(h.body); err != nil {
		h.logger.Warn("Failed to write config response", slog.Any("err", err))
	}
}

func extractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	host, _, _ := net.SplitHostPort(r.RemoteAddr)
	return host
}
