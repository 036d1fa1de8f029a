package httputil

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/limbo/chai/pkg/logger"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// WriteErrorResponse writes {code, message, details}. A joined error yields one detail per cause.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
		Details: errorDetails(details),
	}
	if err := sonic.ConfigFastest.NewEncoder(w).Encode(resp); err != nil {
		logger.L().Warn("writing error response failed", zap.Error(err))
	}
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body == nil {
		return
	}
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(body); err != nil {
		logger.L().Warn("writing json response failed", zap.Error(err))
	}
}

// WriteCSVAttachment sends a 200 CSV download and streams the body from write.
// Headers are already sent when write fails.
func WriteCSVAttachment(w http.ResponseWriter, filename string, write func(io.Writer) error) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	return write(w)
}

func errorDetails(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		details := make([]string, 0)
		for _, cause := range joined.Unwrap() {
			details = append(details, errorDetails(cause)...)
		}
		return details
	}
	return []string{err.Error()}
}
