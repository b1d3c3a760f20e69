package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/infootball/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "infootball"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// errorRule maps a usecase sentinel to its HTTP representation. An empty message means the
// error text is shown to the client.
type errorRule struct {
	target     error
	httpStatus int
	reason     string
	status     string
	message    string
}

var errorRules = []errorRule{
	{target: usecase.ErrInvalidInput, httpStatus: http.StatusBadRequest, reason: "invalidInput", status: "INVALID_ARGUMENT"},
	{target: usecase.ErrNotFound, httpStatus: http.StatusNotFound, reason: "notFound", status: "NOT_FOUND"},
	{target: usecase.ErrUpstreamFailure, httpStatus: http.StatusBadGateway, reason: "upstreamFailure", status: "BAD_GATEWAY", message: "football data provider request failed"},
}

var internalErrorRule = errorRule{
	httpStatus: http.StatusInternalServerError,
	reason:     "internalError",
	status:     "INTERNAL",
	message:    "internal server error",
}

// writeJSON encodes payload into a pooled buffer first so an encoding failure can still
// produce a clean 500.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		_, _ = buf.WriteString(`{"apiVersion":"` + googleAPIVersion + `","error":{"code":500,"message":"internal server error","status":"INTERNAL"}}` + "\n")
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	rule := mapError(err)
	message := rule.message
	if message == "" {
		message = err.Error()
	}
	writeErrorBody(ctx, w, rule, message)
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeErrorBody(ctx, w, internalErrorRule, internalErrorRule.message)
}

func writeErrorBody(ctx context.Context, w http.ResponseWriter, rule errorRule, message string) {
	writeJSON(ctx, w, rule.httpStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    rule.httpStatus,
			Message: message,
			Status:  rule.status,
			Errors: []googleErrorItem{
				{Domain: errorDomain, Reason: rule.reason, Message: message},
			},
		},
	})
}

func mapError(err error) errorRule {
	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			return rule
		}
	}
	return internalErrorRule
}
