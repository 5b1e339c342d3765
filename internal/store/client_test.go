package store_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blossom/internal/domain"
	"blossom/internal/store"
)

func TestListAllSendsTokenAndAllFlag(t *testing.T) {
	var gotToken, gotAll, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Admin-Token")
		gotReqID = r.Header.Get("X-Request-Id")
		gotAll = r.URL.Query().Get("all")
		_ = json.NewEncoder(w).Encode([]domain.Product{
			{ID: 1, Name: "Rose", Price: 100, Category: "mono", IsAvailable: true},
		})
	}))
	defer srv.Close()

	cl := store.NewClient(srv.URL)
	rows, err := cl.ListAll(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rose", rows[0].Name)
	assert.Equal(t, "abc", gotToken)
	assert.Equal(t, "true", gotAll)
	assert.NotEmpty(t, gotReqID)
}

func TestForbiddenMapsToErrAccessDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "access denied"})
	}))
	defer srv.Close()

	cl := store.NewClient(srv.URL)

	_, err := cl.ListAll(context.Background(), "bad")
	assert.ErrorIs(t, err, store.ErrAccessDenied)

	_, err = cl.Update(context.Background(), "bad", domain.Product{ID: 1, Name: "X", Category: "mono"})
	assert.ErrorIs(t, err, store.ErrAccessDenied)

	err = cl.Delete(context.Background(), "bad", 1)
	assert.ErrorIs(t, err, store.ErrAccessDenied)
}

func TestTransportErrorIsNotAccessDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	cl := store.NewClient(srv.URL)
	_, err := cl.ListAll(context.Background(), "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrAccessDenied)
}

func TestCreateStripsIDAndDecodesAssigned(t *testing.T) {
	var received domain.Product
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assigned := received
		assigned.ID = 7
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(assigned)
	}))
	defer srv.Close()

	cl := store.NewClient(srv.URL)
	draft := domain.Product{ID: 42, Name: "Tulip", Price: 200, Category: "mixed", IsAvailable: true}
	created, err := cl.Create(context.Background(), "abc", draft)
	require.NoError(t, err)
	assert.Equal(t, int64(0), received.ID, "create must never carry a client id")
	assert.Equal(t, int64(7), created.ID)
}

func TestDeleteSendsIDQuery(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotID = r.URL.Query().Get("id")
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer srv.Close()

	cl := store.NewClient(srv.URL)
	require.NoError(t, cl.Delete(context.Background(), "abc", 15))
	assert.Equal(t, "15", gotID)
}
