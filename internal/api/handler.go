package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/rsinnovationhub/hub/internal/gateway"
)

// maxBodyBytes caps submission request bodies.
const maxBodyBytes = 64 << 10

// Handler holds dependencies for API handlers.
type Handler struct {
	content    contentQuerier
	gateway    gateway.Gateway
	bufferPool *sync.Pool // Pool of bytes.Buffer for JSON encoding
}

// New creates a new API Handler.
func New(content contentQuerier, gw gateway.Gateway) (*Handler, error) {
	if content == nil {
		return nil, errors.New("content catalog is required")
	}
	if gw == nil {
		return nil, errors.New("submission gateway is required")
	}
	return &Handler{
		content: content,
		gateway: gw,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}, nil
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/hero", h.Hero)
	mux.HandleFunc("GET /api/v1/programs", h.ListPrograms)
	mux.HandleFunc("GET /api/v1/programs/{id}", h.GetProgram)
	mux.HandleFunc("GET /api/v1/events", h.ListEvents)
	mux.HandleFunc("GET /api/v1/events/{id}", h.GetEvent)
	mux.HandleFunc("GET /api/v1/testimonials", h.ListTestimonials)
	mux.HandleFunc("GET /api/v1/success-stories", h.ListSuccessStories)
	mux.HandleFunc("POST /api/v1/applications", h.SubmitApplication)
	mux.HandleFunc("POST /api/v1/events/{id}/registrations", h.RegisterForEvent)
	mux.HandleFunc("POST /api/v1/contact", h.SubmitContact)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	buf := h.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		h.bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
		http.Error(w, `{"error":"internal server error","code":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: msg,
		Code:  status,
	})
}

// decodeJSON reads a single JSON object from the request body into dst and
// writes a 400 response when it cannot.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		slog.Debug("api: invalid request body", "path", r.URL.Path, "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
