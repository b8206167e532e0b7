package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/medidea/medidea-api/internal/adapters/memory"
	"github.com/medidea/medidea-api/internal/data"
	domainauth "github.com/medidea/medidea-api/internal/domain/auth"
	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/domain/ratelimit"
	"github.com/medidea/medidea-api/internal/mocks"
	"github.com/medidea/medidea-api/internal/service"
)

type attachmentHandlersFixture struct {
	h           *AttachmentHandlers
	attachments *mocks.MockAttachmentRepository
	activities  *mocks.MockActivityRepository
	blobs       *mocks.MockBlobStore
	ctrl        *gomock.Controller
}

func newAttachmentHandlers(t *testing.T, uploadMax int) attachmentHandlersFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	attachments := mocks.NewMockAttachmentRepository(ctrl)
	activities := mocks.NewMockActivityRepository(ctrl)
	blobs := mocks.NewMockBlobStore(ctrl)
	svc := service.NewAttachmentService(service.AttachmentServiceOptions{
		Attachments: attachments,
		Activities:  activities,
		Blobs:       blobs,
	})
	limiter := service.NewRateLimiter(service.RateLimiterOptions{
		Store:  memory.NewRateStore(),
		Login:  ratelimit.Policy{Max: 5, Window: 15 * time.Minute},
		Upload: ratelimit.Policy{Max: uploadMax, Window: time.Hour},
		API:    ratelimit.Policy{Max: 100, Window: time.Minute},
	})
	return attachmentHandlersFixture{
		h:           &AttachmentHandlers{Svc: svc, Limiter: limiter, Logger: testLogger()},
		attachments: attachments,
		activities:  activities,
		blobs:       blobs,
		ctrl:        ctrl,
	}
}

func multipartUploadRequest(t *testing.T, activityID, fileName, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/api/activities/"+activityID+"/attachments", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	r.SetPathValue("id", activityID)
	r = r.WithContext(SetClaimsInContext(r.Context(), &domainauth.Claims{UserID: 9, Role: domainauth.RoleTechnician}))
	return r
}

func TestAttachmentUpload_Success(t *testing.T) {
	f := newAttachmentHandlers(t, 10)
	defer f.ctrl.Finish()

	f.activities.EXPECT().GetByID(gomock.Any(), "act-1").Return(&model.Activity{ID: "act-1"}, nil)
	f.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ string, r io.Reader) (int64, error) {
			b, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "report body", string(b))
			return int64(len(b)), nil
		})
	f.attachments.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req *model.CreateAttachmentRequest) (*model.Attachment, error) {
			assert.Equal(t, "act-1", req.ActivityID)
			assert.Equal(t, "report.pdf", req.FileName)
			assert.Equal(t, int64(9), req.UploadedBy)
			return &model.Attachment{ID: "att-1", ActivityID: "act-1", FileName: "report.pdf"}, nil
		})

	w := httptest.NewRecorder()
	f.h.Upload(w, multipartUploadRequest(t, "act-1", "report.pdf", "report body"))

	require.Equal(t, http.StatusCreated, w.Code)
	var got model.Attachment
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "att-1", got.ID)
}

func TestAttachmentUpload_UnknownActivity(t *testing.T) {
	f := newAttachmentHandlers(t, 10)
	defer f.ctrl.Finish()

	f.activities.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, data.ErrActivityNotFound)

	w := httptest.NewRecorder()
	f.h.Upload(w, multipartUploadRequest(t, "missing", "report.pdf", "x"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAttachmentUpload_RequiresAuth(t *testing.T) {
	f := newAttachmentHandlers(t, 10)
	defer f.ctrl.Finish()

	r := httptest.NewRequest(http.MethodPost, "/api/activities/act-1/attachments", nil)
	r.SetPathValue("id", "act-1")
	w := httptest.NewRecorder()
	f.h.Upload(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAttachmentUpload_RateLimited(t *testing.T) {
	f := newAttachmentHandlers(t, 1)
	defer f.ctrl.Finish()

	f.activities.EXPECT().GetByID(gomock.Any(), "act-1").Return(&model.Activity{ID: "act-1"}, nil)
	f.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.attachments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&model.Attachment{ID: "att-1"}, nil)

	w := httptest.NewRecorder()
	f.h.Upload(w, multipartUploadRequest(t, "act-1", "a.txt", "x"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	f.h.Upload(w, multipartUploadRequest(t, "act-1", "b.txt", "x"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestAttachmentUpload_MissingFileField(t *testing.T) {
	f := newAttachmentHandlers(t, 10)
	defer f.ctrl.Finish()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("note", "no file here"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/api/activities/act-1/attachments", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	r.SetPathValue("id", "act-1")
	r = r.WithContext(SetClaimsInContext(r.Context(), &domainauth.Claims{UserID: 9, Role: domainauth.RoleTechnician}))

	w := httptest.NewRecorder()
	f.h.Upload(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_failed", decodeErrorBody(t, w)["error"])
}

func TestAttachmentDownload(t *testing.T) {
	f := newAttachmentHandlers(t, 10)
	defer f.ctrl.Finish()

	meta := &model.Attachment{
		ID:          "att-1",
		FileName:    "report.pdf",
		ContentType: "application/pdf",
		SizeBytes:   11,
		StorageKey:  "key-1",
	}
	f.attachments.EXPECT().GetByID(gomock.Any(), "att-1").Return(meta, nil)
	f.blobs.EXPECT().Open(gomock.Any(), "key-1").Return(io.NopCloser(strings.NewReader("report body")), nil)

	r := httptest.NewRequest(http.MethodGet, "/api/attachments/att-1/download", nil)
	r.SetPathValue("id", "att-1")
	w := httptest.NewRecorder()
	f.h.Download(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "report.pdf")
	assert.Equal(t, "report body", w.Body.String())
}

func TestAttachmentDelete_RemovesBlob(t *testing.T) {
	f := newAttachmentHandlers(t, 10)
	defer f.ctrl.Finish()

	meta := &model.Attachment{ID: "att-1", StorageKey: "key-1"}
	f.attachments.EXPECT().GetByID(gomock.Any(), "att-1").Return(meta, nil)
	f.attachments.EXPECT().Delete(gomock.Any(), "att-1").Return(true, nil)
	f.blobs.EXPECT().Delete(gomock.Any(), "key-1").Return(nil)

	r := httptest.NewRequest(http.MethodDelete, "/api/attachments/att-1", nil)
	r.SetPathValue("id", "att-1")
	w := httptest.NewRecorder()
	f.h.Delete(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
