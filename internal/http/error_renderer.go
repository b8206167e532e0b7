package httpx

import (
	"errors"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/medidea/medidea-api/internal/data"
	"github.com/medidea/medidea-api/internal/domain/ratelimit"
	apperrors "github.com/medidea/medidea-api/internal/errors"
)

// notFoundSentinels maps data-layer sentinels to 404 responses.
var notFoundSentinels = []error{ //nolint:gochecknoglobals // read-only sentinel table
	data.ErrUserNotFound,
	data.ErrCustomerNotFound,
	data.ErrEquipmentNotFound,
	data.ErrTechnicianNotFound,
	data.ErrActivityNotFound,
	data.ErrSparePartNotFound,
	data.ErrAttachmentNotFound,
}

// conflictSentinels maps data-layer uniqueness sentinels to 409 responses.
var conflictSentinels = []error{ //nolint:gochecknoglobals // read-only sentinel table
	data.ErrUserEmailExists,
	data.ErrEquipmentSerialExists,
	data.ErrTechnicianEmailExists,
	data.ErrSparePartCodeExists,
	data.ErrInsufficientStock,
}

// RenderServiceError translates service and data layer errors into JSON
// responses with consistent codes. Unknown errors become opaque 500s.
func RenderServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		return
	case matchesAny(err, notFoundSentinels):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	case matchesAny(err, conflictSentinels):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "conflict", Err: err})
	case apperrors.IsUnauthorized(err):
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "unauthorized", Err: err})
	case apperrors.IsForbidden(err):
		WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "insufficient_permissions", Err: err})
	case apperrors.IsNotFound(err):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	case apperrors.IsConflict(err), isForeignKeyViolation(err):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "conflict", Err: err})
	case apperrors.IsValidation(err), isValidationError(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
	default:
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "internal_error",
			Err:     errors.New("internal error"),
		})
	}
}

// WriteRateLimited writes the 429 response for a rejected rate limit decision,
// exposing the remaining budget and the reset horizon.
func WriteRateLimited(w http.ResponseWriter, decision ratelimit.Decision) {
	WriteJSON(w, http.StatusTooManyRequests, map[string]any{
		"error":     "rate_limited",
		"message":   "too many requests",
		"remaining": decision.Remaining,
		"reset_at":  decision.ResetAt,
	})
}

func matchesAny(err error, sentinels []error) bool {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
