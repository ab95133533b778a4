package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/draftsync/internal/server/storage/sqlite"
	"github.com/iudanet/draftsync/pkg/api"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(NewRouter(logger, store, store, "test"))
	t.Cleanup(server.Close)

	return server
}

func doJSON(t *testing.T, method, url string, body, result any) int {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if result != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(result))
	}
	return resp.StatusCode
}

func TestPostsHandler_CreateAssignsServerID(t *testing.T) {
	server := setupTestServer(t)

	now := time.Now().Truncate(time.Millisecond)
	var created api.Post
	status := doJSON(t, http.MethodPost, server.URL+"/api/v1/posts", api.Post{
		ID:         -1, // клиентский placeholder
		Title:      "Draft",
		Body:       "body",
		CreateTime: now,
		ModifyTime: now,
	}, &created)

	assert.Equal(t, http.StatusCreated, status)
	assert.Positive(t, created.ID)
	assert.Equal(t, "Draft", created.Title)
}

func TestPostsHandler_CreateValidation(t *testing.T) {
	server := setupTestServer(t)

	status := doJSON(t, http.MethodPost, server.URL+"/api/v1/posts", api.Post{Title: ""}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPostsHandler_GetAndList(t *testing.T) {
	server := setupTestServer(t)

	now := time.Now()
	var created api.Post
	doJSON(t, http.MethodPost, server.URL+"/api/v1/posts", api.Post{
		Title: "Hello", Body: "world", CreateTime: now, ModifyTime: now,
	}, &created)

	var got api.Post
	status := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/v1/posts/%d", server.URL, created.ID), nil, &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hello", got.Title)

	status = doJSON(t, http.MethodGet, server.URL+"/api/v1/posts/9999", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	var list api.PostList
	status = doJSON(t, http.MethodGet, server.URL+"/api/v1/posts", nil, &list)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, list.Posts, 1)
}

func TestPostsHandler_UpdateAndDelete(t *testing.T) {
	server := setupTestServer(t)

	now := time.Now()
	var created api.Post
	doJSON(t, http.MethodPost, server.URL+"/api/v1/posts", api.Post{
		Title: "Before", CreateTime: now, ModifyTime: now,
	}, &created)

	url := fmt.Sprintf("%s/api/v1/posts/%d", server.URL, created.ID)

	created.Title = "After"
	status := doJSON(t, http.MethodPut, url, created, nil)
	assert.Equal(t, http.StatusOK, status)

	var got api.Post
	doJSON(t, http.MethodGet, url, nil, &got)
	assert.Equal(t, "After", got.Title)

	status = doJSON(t, http.MethodDelete, url, nil, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status = doJSON(t, http.MethodGet, url, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status = doJSON(t, http.MethodDelete, url, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealthHandler(t *testing.T) {
	server := setupTestServer(t)

	var resp api.HealthResponse
	status := doJSON(t, http.MethodGet, server.URL+"/api/v1/health", nil, &resp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Version)
}
