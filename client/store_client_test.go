package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panmitra/form49a-service/dto"
)

func TestGetApplication(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/applications", r.URL.Path)
		assert.Equal(t, "eq.a2c1", r.URL.Query().Get("id"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"a2c1","application_no":"PAN2025000123","full_name":"Ravi Kumar Sharma","status":"paid"}]`))
	}))
	defer srv.Close()

	c := NewStoreClient(srv.URL, "test-key", 5*time.Second)

	app, err := c.GetApplication(context.Background(), "a2c1")
	require.NoError(t, err)
	assert.Equal(t, "PAN2025000123", app.ApplicationNo)
	assert.Equal(t, "Ravi Kumar Sharma", app.FullName)
	assert.Equal(t, dto.StatusPaid, app.Status)
}

func TestGetApplicationNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewStoreClient(srv.URL, "", 5*time.Second)

	_, err := c.GetApplication(context.Background(), "missing")
	assert.True(t, errors.Is(err, dto.ErrApplicationNotFound))
}

func TestGetApplicationByNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.PAN2025000123", r.URL.Query().Get("application_no"))
		w.Write([]byte(`[{"id":"a2c1","application_no":"PAN2025000123"}]`))
	}))
	defer srv.Close()

	c := NewStoreClient(srv.URL, "", 5*time.Second)

	app, err := c.GetApplicationByNumber(context.Background(), "PAN2025000123")
	require.NoError(t, err)
	assert.Equal(t, "a2c1", app.ID)
}

func TestListDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/application_documents", r.URL.Path)
		assert.Equal(t, "eq.a2c1", r.URL.Query().Get("application_id"))
		w.Write([]byte(`[{"id":"d1","application_id":"a2c1","document_type":"photo","file_url":"http://x/p.png"}]`))
	}))
	defer srv.Close()

	c := NewStoreClient(srv.URL, "", 5*time.Second)

	docs, err := c.ListDocuments(context.Background(), "a2c1")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "photo", docs[0].DocumentType)
}

func TestStoreErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewStoreClient(srv.URL, "", 5*time.Second)

	_, err := c.GetApplication(context.Background(), "a2c1")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, dto.ErrApplicationNotFound))
}
