package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocation_Exitoso(t *testing.T) {
	env := newTestEnv(t)

	resp := postJSON(t, env.app, "/locations/", map[string]string{"aisle": "C3", "bin": "B7"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "C3", body["aisle"])
	assert.Equal(t, "B7", body["bin"])
	assert.NotEmpty(t, body["created_at"])
}

func TestCreateLocation_PasilloVacio(t *testing.T) {
	env := newTestEnv(t)

	resp := postJSON(t, env.app, "/locations/", map[string]string{"aisle": "   ", "bin": "B7"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Aisle identifier cannot be empty", decodeBody(t, resp)["detail"])
}

func TestCreateLocation_CompartimientoVacio(t *testing.T) {
	env := newTestEnv(t)

	resp := postJSON(t, env.app, "/locations/", map[string]string{"aisle": "C3", "bin": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Bin identifier cannot be empty", decodeBody(t, resp)["detail"])
}

func TestCreateLocation_ParDuplicado(t *testing.T) {
	env := newTestEnv(t)

	// A1/B1 viene pre-sembrada en newTestEnv.
	resp := postJSON(t, env.app, "/locations/", map[string]string{"aisle": "A1", "bin": "B1"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Location already exists", decodeBody(t, resp)["detail"])
}

func TestUpdateLocation_Inexistente(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPut, "/locations/999",
		jsonReader(t, map[string]string{"aisle": "Z9", "bin": "Z9"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Location not found", decodeBody(t, resp)["detail"])
}

func TestGetLocation_PorID(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/locations/10", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "A1", decodeBody(t, resp)["aisle"])
}

func TestCreateProduct_SKUDuplicado(t *testing.T) {
	env := newTestEnv(t)

	resp := postJSON(t, env.app, "/products/", map[string]string{
		"sku": "SKU-001", "name": "Otro producto", "category": "general",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Product with this SKU already exists", decodeBody(t, resp)["detail"])
}

func TestCreateProduct_CamposVacios(t *testing.T) {
	env := newTestEnv(t)

	resp := postJSON(t, env.app, "/products/", map[string]string{"sku": " ", "name": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "SKU and name must not be empty", decodeBody(t, resp)["detail"])
}

func TestGetProduct_Inexistente(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/products/999", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", decodeBody(t, resp)["detail"])
}

func jsonReader(t *testing.T, body any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}
