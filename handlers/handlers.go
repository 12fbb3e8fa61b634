package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"yt-captions/captions"
	"yt-captions/errors"
)

type CaptionHandler struct {
	service captions.Service
	logger  *logrus.Logger
}

func NewCaptionHandler(service captions.Service) *CaptionHandler {
	return &CaptionHandler{
		service: service,
		logger:  logrus.StandardLogger(),
	}
}

// HandleGetCaptions handles POST /api/captions.
func (h *CaptionHandler) HandleGetCaptions(w http.ResponseWriter, r *http.Request) {
	const op = "CaptionHandler.HandleGetCaptions"
	logger := h.logger.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})

	if r.Method != http.MethodPost {
		respondError(w, errors.InvalidInput(op, nil, "Method not allowed"), http.StatusMethodNotAllowed)
		return
	}

	var req captions.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithError(err).Warn("Malformed request body")
		respondError(w, errors.InvalidInput(op, err, "Invalid JSON request body"), 0)
		return
	}

	result, err := h.service.Get(r.Context(), req)
	if err != nil {
		logger.WithError(err).Warn("Caption request failed")
		respondError(w, err, 0)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleHealthCheck handles GET /health.
func HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

// respondError writes the {"error": ...} body. codeOverride is used when the
// status cannot come from the error itself, zero otherwise.
func respondError(w http.ResponseWriter, err error, codeOverride int) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		code = appErr.Code
		message = appErr.Message
	}
	if codeOverride != 0 {
		code = codeOverride
	}

	respondJSON(w, code, map[string]string{"error": message})
}
