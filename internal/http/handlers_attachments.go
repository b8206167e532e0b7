package httpx

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/medidea/medidea-api/internal/service"
)

// DefaultMaxUploadBytes caps attachment uploads when no explicit limit is
// configured.
const DefaultMaxUploadBytes = 25 << 20 // 25 MiB

// AttachmentHandlers provides HTTP handlers for uploading, downloading and
// managing activity attachments. Uploads are rate limited per account.
type AttachmentHandlers struct {
	Svc            *service.AttachmentService
	Limiter        *service.RateLimiter
	MaxUploadBytes int64
	Logger         *slog.Logger
}

func (h *AttachmentHandlers) maxUploadBytes() int64 {
	if h.MaxUploadBytes > 0 {
		return h.MaxUploadBytes
	}
	return DefaultMaxUploadBytes
}

// Upload handles POST /api/activities/{id}/attachments. It expects a
// multipart form with a single "file" field.
func (h *AttachmentHandlers) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := GetClaimsFromContext(r.Context())
	if !ok {
		writeAuthRequired(w)
		return
	}

	if h.Limiter != nil {
		decision, err := h.Limiter.CheckUpload(r.Context(), "user:"+strconv.FormatInt(claims.UserID, 10))
		if err != nil {
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "rate_limit_unavailable", Err: err})
			return
		}
		if !decision.Allowed {
			WriteRateLimited(w, decision)
			return
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes())
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, ErrorParams{
				Code:    http.StatusRequestEntityTooLarge,
				ErrCode: "upload_too_large",
				Err:     fmt.Errorf("upload exceeds %d bytes", tooLarge.Limit),
			})
			return
		}
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation_failed",
			Err:     errors.New("multipart field \"file\" is required"),
		})
		return
	}
	defer file.Close()

	attachment, err := h.Svc.Upload(r.Context(), service.UploadInput{
		ActivityID:  r.PathValue("id"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		UploadedBy:  claims.UserID,
		Body:        file,
	})
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, attachment)
}

// ListByActivity handles GET /api/activities/{id}/attachments.
func (h *AttachmentHandlers) ListByActivity(w http.ResponseWriter, r *http.Request) {
	attachments, err := h.Svc.ListByActivity(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, attachments)
}

// Download handles GET /api/attachments/{id}/download and streams the
// stored bytes with the original file name and content type.
func (h *AttachmentHandlers) Download(w http.ResponseWriter, r *http.Request) {
	meta, body, err := h.Svc.Open(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", meta.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": meta.FileName}))
	if meta.SizeBytes > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(meta.SizeBytes, 10))
	}
	if _, err := io.Copy(w, body); err != nil && h.Logger != nil {
		h.Logger.Warn("attachment stream interrupted",
			slog.String("attachment_id", meta.ID),
			slog.String("error", err.Error()))
	}
}

// Get handles GET /api/attachments/{id} and returns the metadata only.
func (h *AttachmentHandlers) Get(w http.ResponseWriter, r *http.Request) {
	meta, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, meta)
}

// Delete handles DELETE /api/attachments/{id}.
func (h *AttachmentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound("attachment")})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
