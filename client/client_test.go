package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapID(t *testing.T) {
	doc := mapID(Document{
		"_id":   "abc-123",
		"name":  "Drill",
		"price": 50.0,
	})

	assert.Equal(t, "abc-123", doc["id"])
	assert.Equal(t, "Drill", doc["name"])
	assert.Equal(t, 50.0, doc["price"])
	assert.NotContains(t, doc, "_id")
}

func TestListMapsEveryDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		json.NewEncoder(w).Encode([]Document{
			{"_id": "p1", "name": "Drill"},
			{"_id": "p2", "name": "Tape"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	docs, err := c.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "p1", docs[0]["id"])
	assert.Equal(t, "p2", docs[1]["id"])
	assert.Equal(t, "Tape", docs[1]["name"])
}

func TestMutationMapsReturnedDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/electricians/e1", r.URL.Path)

		var body Document
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Approved", body["status"])

		json.NewEncoder(w).Encode(Document{"_id": "e1", "status": "Approved"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	doc, err := c.UpdateElectrician(context.Background(), "e1", Document{"status": "Approved"})
	require.NoError(t, err)
	assert.Equal(t, "e1", doc["id"])
	assert.Equal(t, "Approved", doc["status"])
}

func TestNonSuccessBecomesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Product not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.DeleteProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Product not found")
}

func TestEmptyErrorBodyFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetServices(context.Background())
	require.Error(t, err)
	assert.Equal(t, "HTTP 500", err.Error())
}

func TestAdminLoginKeepsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/admin/login":
			json.NewEncoder(w).Encode(map[string]any{"ok": true, "token": "tok-123"})
		case "/auth/admin/me":
			require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{"role": "admin", "email": "admin@eletrigo.local"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	token, err := c.AdminLogin(context.Background(), "admin@eletrigo.local", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "tok-123", c.Token())

	me, err := c.AdminMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", me["role"])
}

func TestAdminLoginFailureMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"error": "Invalid credentials"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.AdminLogin(context.Background(), "admin@eletrigo.local", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Empty(t, c.Token())
}
