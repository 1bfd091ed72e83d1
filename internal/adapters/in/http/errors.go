package http

import (
	"errors"
	"net/http"

	"eventsupply/internal/core/application/usecases/commands"
	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/evidence"
	"eventsupply/internal/core/domain/model/inventory"
	"eventsupply/internal/core/domain/model/order"
	"eventsupply/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps use case failures onto HTTP statuses. Credential
// rejections stay a single opaque 401 regardless of the underlying cause.
func domainError(ctx echo.Context, err error) error {
	var shortfallErr *inventory.ShortfallError
	if errors.As(err, &shortfallErr) {
		shortfalls := make([]shortfallResponse, 0, len(shortfallErr.Shortfalls))
		for _, s := range shortfallErr.Shortfalls {
			shortfalls = append(shortfalls, shortfallResponse{
				ProductRef: s.ProductRef.String(),
				Requested:  s.Requested,
				Available:  s.Available,
				Deficit:    s.Deficit(),
			})
		}
		return ctx.JSON(http.StatusUnprocessableEntity, shortfallErrorResponse{
			Code:       http.StatusUnprocessableEntity,
			Message:    "Insufficient stock to dispatch",
			Shortfalls: shortfalls,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, "Object not found")
	case errors.Is(err, credential.ErrCredentialRejected):
		return jsonError(ctx, http.StatusUnauthorized, "Code rejected")
	case errors.Is(err, commands.ErrResendCooldown):
		return jsonError(ctx, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, order.ErrPreconditionUnmet):
		return jsonError(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, inventory.ErrInsufficientStock):
		return jsonError(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, order.ErrInvalidTransition):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, evidence.ErrConfirmationAlreadyRecorded):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	default:
		return jsonError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, errorResponse{Code: code, Message: message})
}
