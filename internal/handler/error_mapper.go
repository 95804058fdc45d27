package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/ascend/api/internal/middleware"
	"github.com/forgo/ascend/api/internal/model"
	"github.com/forgo/ascend/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// Typed errors carry the numbers the client needs
	var gate *service.LevelGateError
	if errors.As(err, &gate) {
		return model.NewLevelGateError(gate.Required, gate.Current)
	}
	var short *service.InsufficientError
	if errors.As(err, &short) {
		return model.NewInsufficientError(short.Resource, short.Required, short.Current)
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())
	case errors.Is(err, service.ErrHunterNotFound):
		return model.NewUnauthorizedError("hunter not found")

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrQuestNotFound):
		return model.NewNotFoundError("quest")
	case errors.Is(err, service.ErrItemNotFound):
		return model.NewNotFoundError("item")
	case errors.Is(err, service.ErrGuildNotFound):
		return model.NewNotFoundError("guild")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrHunterNameTaken),
		errors.Is(err, service.ErrGuildNameExists):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidEmail):
		return fieldError("email", err)
	case errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return fieldError("password", err)
	case errors.Is(err, service.ErrInvalidHunterName):
		return fieldError("hunter_name", err)
	case errors.Is(err, service.ErrInvalidStat):
		return fieldError("stat_name", err)
	case errors.Is(err, service.ErrInvalidPoints):
		return fieldError("points", err)
	case errors.Is(err, service.ErrInsufficientStatPoints):
		return fieldError("points", err)
	case errors.Is(err, service.ErrInsufficientGold):
		return fieldError("item_id", err)
	case errors.Is(err, service.ErrQuestIDRequired),
		errors.Is(err, service.ErrQuestAlreadyCompleted),
		errors.Is(err, service.ErrQuestExpired):
		return fieldError("quest_id", err)
	case errors.Is(err, service.ErrGuildNameRequired),
		errors.Is(err, service.ErrGuildNameTooShort),
		errors.Is(err, service.ErrGuildNameTooLong):
		return fieldError("name", err)
	case errors.Is(err, service.ErrGuildDescTooLong):
		return fieldError("description", err)
	case errors.Is(err, service.ErrAlreadyInGuild),
		errors.Is(err, service.ErrNotInGuild):
		return fieldError("guild", err)

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

func fieldError(field string, err error) *model.ProblemDetails {
	return model.NewValidationError([]model.FieldError{{Field: field, Message: err.Error()}})
}

// writeServiceError maps err and writes it. Unmapped errors are logged with
// the request id before the generic 500 goes out.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	problem := MapServiceError(err)
	if problem.Status >= http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	WriteError(w, problem)
}
