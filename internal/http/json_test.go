package httpx

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeJSON_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(`{"name":"Clinica Sole"}`))
	w := httptest.NewRecorder()

	var dst struct {
		Name string `json:"name"`
	}
	assert.True(t, DecodeJSON(w, req, &dst))
	assert.Equal(t, "Clinica Sole", dst.Name)
}

func TestDecodeJSON_UnknownField(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(`{"name":"x","surprise":1}`))
	w := httptest.NewRecorder()

	var dst struct {
		Name string `json:"name"`
	}
	assert.False(t, DecodeJSON(w, req, &dst))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_json", decodeErrorBody(t, w)["error"])
}

func TestDecodeJSON_OversizedBody(t *testing.T) {
	body := fmt.Sprintf(`{"name":%q}`, strings.Repeat("a", maxJSONBody))
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	w := httptest.NewRecorder()

	var dst struct {
		Name string `json:"name"`
	}
	assert.False(t, DecodeJSON(w, req, &dst))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "payload_too_large", decodeErrorBody(t, w)["error"])
}
