package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/squadbid/squadbid/squadbid/database/repositories"
	"github.com/squadbid/squadbid/squadbid/engine"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Message string    `json:"message,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError carries the machine-readable refusal. Suggested, Current
// and NextRequired are only present on the codes that define them.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Suggested    int64  `json:"suggested,omitempty"`
	Current      int64  `json:"current,omitempty"`
	NextRequired int64  `json:"next_required,omitempty"`
	Retryable    bool   `json:"retryable,omitempty"`
}

// SendSuccess sends a successful JSON response.
func SendSuccess(c *fiber.Ctx, data any, message string) error {
	return c.Status(http.StatusOK).JSON(APIResponse{Success: true, Data: data, Message: message})
}

// SendCreated sends a created resource JSON response.
func SendCreated(c *fiber.Ctx, data any, message string) error {
	return c.Status(http.StatusCreated).JSON(APIResponse{Success: true, Data: data, Message: message})
}

// SendNoContent sends a no content response.
func SendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusNoContent)
}

// SendError sends an error JSON response.
func SendError(c *fiber.Ctx, statusCode int, apiErr *APIError) error {
	return c.Status(statusCode).JSON(APIResponse{Success: false, Error: apiErr})
}

// SendBadRequest sends a bad request error response.
func SendBadRequest(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusBadRequest, &APIError{Code: "BAD_REQUEST", Message: message})
}

// SendUnauthorized sends an unauthorized error response.
func SendUnauthorized(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusUnauthorized, &APIError{Code: "UNAUTHORIZED", Message: message})
}

// SendForbidden sends a forbidden error response.
func SendForbidden(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusForbidden, &APIError{Code: "FORBIDDEN", Message: message})
}

// SendNotFound sends a not found error response.
func SendNotFound(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusNotFound, &APIError{Code: "NOT_FOUND", Message: message})
}

// SendEngineError maps an operation error to the wire. Engine refusals
// keep their code and advisory fields; repository not-found becomes
// 404; validation failures become 400; anything else is a 500 with the
// detail kept in the log, not the response.
func SendEngineError(c *fiber.Ctx, err error) error {
	if e := engine.AsRefusal(err); e != nil {
		return SendError(c, refusalStatus(e), &APIError{
			Code:         string(e.Code),
			Message:      e.Message,
			Suggested:    e.Suggested,
			Current:      e.Current,
			NextRequired: e.NextRequired,
			Retryable:    e.Retryable(),
		})
	}

	if repositories.IsNotFound(err) {
		return SendNotFound(c, err.Error())
	}
	if errors.Is(err, engine.ErrValidation) {
		return SendBadRequest(c, err.Error())
	}

	slog.Error("request failed",
		slog.String("type", "http"),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()))
	return SendError(c, http.StatusInternalServerError,
		&APIError{Code: "INTERNAL_SERVER_ERROR", Message: "internal server error"})
}

func refusalStatus(e *engine.Error) int {
	switch e.Code {
	case engine.CodeBidOutdated, engine.CodeInvalidTransition:
		return http.StatusConflict
	case engine.CodeLockTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnprocessableEntity
	}
}
