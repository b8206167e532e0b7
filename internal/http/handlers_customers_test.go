package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/medidea/medidea-api/internal/data"
	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/mocks"
	"github.com/medidea/medidea-api/internal/service"
)

func newCustomerHandlers(t *testing.T) (*CustomerHandlers, *mocks.MockCustomerRepository, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCustomerRepository(ctrl)
	svc := service.NewCustomerService(service.CustomerServiceOptions{Customers: repo})
	return &CustomerHandlers{Svc: svc}, repo, ctrl
}

func pathRequest(method, target, id string, body *bytes.Reader) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, body)
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	if id != "" {
		r.SetPathValue("id", id)
	}
	return r
}

func TestCustomerCreate_Success(t *testing.T) {
	h, repo, ctrl := newCustomerHandlers(t)
	defer ctrl.Finish()

	expected := &model.Customer{ID: "c-1", Name: "Ospedale San Carlo", City: "Milano"}
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(expected, nil)

	b, _ := json.Marshal(map[string]string{"name": "Ospedale San Carlo", "city": "Milano"})
	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(b)))

	require.Equal(t, http.StatusCreated, w.Code)
	var got model.Customer
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "c-1", got.ID)
}

func TestCustomerGet_NotFound(t *testing.T) {
	h, repo, ctrl := newCustomerHandlers(t)
	defer ctrl.Finish()

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, data.ErrCustomerNotFound)

	w := httptest.NewRecorder()
	h.Get(w, pathRequest(http.MethodGet, "/api/customers/missing", "missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeErrorBody(t, w)["error"])
}

func TestCustomerList_PassesFilters(t *testing.T) {
	h, repo, ctrl := newCustomerHandlers(t)
	defer ctrl.Finish()

	repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, opts model.CustomersListOptions) ([]*model.Customer, error) {
			assert.Equal(t, 10, opts.Limit)
			assert.Equal(t, 20, opts.Offset)
			require.NotNil(t, opts.Q)
			assert.Equal(t, "ospedale", *opts.Q)
			require.NotNil(t, opts.City)
			assert.Equal(t, "Milano", *opts.City)
			return []*model.Customer{}, nil
		})

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/customers?limit=10&offset=20&q=ospedale&city=Milano", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCustomerUpdate_Success(t *testing.T) {
	h, repo, ctrl := newCustomerHandlers(t)
	defer ctrl.Finish()

	updated := &model.Customer{ID: "c-1", Name: "Clinica Nuova"}
	repo.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).Return(updated, nil)

	b, _ := json.Marshal(map[string]string{"name": "Clinica Nuova"})
	w := httptest.NewRecorder()
	h.Update(w, pathRequest(http.MethodPut, "/api/customers/c-1", "c-1", bytes.NewReader(b)))

	require.Equal(t, http.StatusOK, w.Code)
	var got model.Customer
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "Clinica Nuova", got.Name)
}

func TestCustomerDelete(t *testing.T) {
	h, repo, ctrl := newCustomerHandlers(t)
	defer ctrl.Finish()

	repo.EXPECT().Delete(gomock.Any(), "c-1").Return(true, nil)

	w := httptest.NewRecorder()
	h.Delete(w, pathRequest(http.MethodDelete, "/api/customers/c-1", "c-1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	repo.EXPECT().Delete(gomock.Any(), "c-1").Return(false, nil)
	w = httptest.NewRecorder()
	h.Delete(w, pathRequest(http.MethodDelete, "/api/customers/c-1", "c-1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
