package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductLifecycle(t *testing.T) {
	app, _ := setupApp(t)

	var created map[string]any
	resp := request(t, app, http.MethodPost, "/products", map[string]any{
		"name":     "Drill",
		"price":    50,
		"stock":    10,
		"category": "Tools",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, "Drill", created["name"])
	assert.EqualValues(t, 50, created["price"])
	assert.EqualValues(t, 10, created["stock"])
	assert.Equal(t, "Tools", created["category"])
	assert.NotEmpty(t, created["_id"])
	assert.NotEmpty(t, created["createdAt"])
	assert.NotEmpty(t, created["updatedAt"])

	id := created["_id"].(string)

	var listed []map[string]any
	resp = request(t, app, http.MethodGet, "/products", nil, &listed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, listed, 1)

	var updated map[string]any
	resp = request(t, app, http.MethodPut, "/products/"+id, map[string]any{
		"stock": 7,
	}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 7, updated["stock"])
	assert.Equal(t, "Drill", updated["name"])
	assert.Equal(t, id, updated["_id"])

	var ack map[string]any
	resp = request(t, app, http.MethodDelete, "/products/"+id, nil, &ack)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, ack["ok"])

	resp = request(t, app, http.MethodDelete, "/products/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/products", nil, &listed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, listed)
}

func TestCreateProductValidation(t *testing.T) {
	app, _ := setupApp(t)

	var body map[string]any
	resp := request(t, app, http.MethodPost, "/products", map[string]any{
		"name":  "Drill",
		"price": 50,
	}, &body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "stock")

	// Nothing was persisted.
	var listed []map[string]any
	request(t, app, http.MethodGet, "/products", nil, &listed)
	assert.Empty(t, listed)
}

func TestUpdateProductNotFound(t *testing.T) {
	app, _ := setupApp(t)

	resp := request(t, app, http.MethodPut, "/products/missing-id", map[string]any{
		"stock": 3,
	}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateProductIgnoresSubmittedID(t *testing.T) {
	app, _ := setupApp(t)

	var created map[string]any
	resp := request(t, app, http.MethodPost, "/products", map[string]any{
		"_id":      "my-chosen-id",
		"name":     "Tape",
		"price":    5,
		"stock":    100,
		"category": "Supplies",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEqual(t, "my-chosen-id", created["_id"])
}
