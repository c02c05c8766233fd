package http

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hadirhq/hadir-backend-go/internal/domain/attendance"
	"github.com/hadirhq/hadir-backend-go/internal/handler/http/response"
)

type CronHandler interface {
	AutoClockOut(w http.ResponseWriter, r *http.Request)
}

type cronHandlerImpl struct {
	reconciler attendance.Reconciler
	secret     string
	// storeReady is false when the record store credential was never
	// configured; the trigger then refuses to run at all.
	storeReady bool
}

func NewCronHandler(reconciler attendance.Reconciler, secret string, storeReady bool) CronHandler {
	return &cronHandlerImpl{
		reconciler: reconciler,
		secret:     secret,
		storeReady: storeReady,
	}
}

// The scheduler that calls this endpoint expects fixed wire shapes, not the
// standard response envelope:
//
//	success        {"closed": N, "total": M}
//	nothing to do  {"closed": 0, "message": "No open logs to close"}
//	failure        {"error": "..."}
type autoClockOutResult struct {
	Closed int `json:"closed"`
	Total  int `json:"total"`
}

type autoClockOutEmpty struct {
	Closed  int    `json:"closed"`
	Message string `json:"message"`
}

type cronError struct {
	Error string `json:"error"`
}

// AutoClockOut implements CronHandler. The bearer check happens before any
// store access; a rejected request performs no work at all.
func (h *cronHandlerImpl) AutoClockOut(w http.ResponseWriter, r *http.Request) {
	if h.secret != "" {
		presented := bearerToken(r)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(h.secret)) != 1 {
			response.JSON(w, http.StatusUnauthorized, cronError{Error: "Unauthorized"})
			return
		}
	}

	if !h.storeReady {
		response.JSON(w, http.StatusInternalServerError, cronError{Error: "Server misconfigured: record store credential is not set"})
		return
	}

	result, err := h.reconciler.Run(r.Context())
	if err != nil {
		slog.Error("auto-clockout run failed", "error", err)
		response.JSON(w, http.StatusInternalServerError, cronError{Error: err.Error()})
		return
	}

	if result.Total == 0 {
		response.JSON(w, http.StatusOK, autoClockOutEmpty{Closed: 0, Message: "No open logs to close"})
		return
	}

	response.JSON(w, http.StatusOK, autoClockOutResult{Closed: result.Closed, Total: result.Total})
}

func bearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authz, "Bearer ")
}
