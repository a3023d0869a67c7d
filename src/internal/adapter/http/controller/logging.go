package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/bank-account/src/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

func requestFields(r *http.Request) logger.Fields {
	return logger.Fields{
		"requestId": middleware.GetReqID(r.Context()),
		"method":    r.Method,
		"path":      r.URL.Path,
	}
}

func logRequest(r *http.Request, payload any) {
	fields := requestFields(r)
	fields["payload"] = logger.SanitizePayload(payload)
	logger.Info("http request", fields)
}

func logResponse(r *http.Request, status int, payload any, start time.Time) {
	fields := requestFields(r)
	fields["status"] = status
	fields["durationMs"] = time.Since(start).Milliseconds()
	fields["response"] = logger.SanitizePayload(payload)
	logger.Info("http response", fields)
}

func logError(r *http.Request, err error, message string) {
	fields := requestFields(r)
	fields["message"] = message
	logger.Error("http handler error", err, fields)
}
