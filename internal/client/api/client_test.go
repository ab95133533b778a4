package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/draftsync/internal/models"
	"github.com/iudanet/draftsync/pkg/api"
)

func TestPostService_GetOne(t *testing.T) {
	want := api.Post{
		ID:         42,
		Title:      "Synced post",
		Body:       "Body",
		CreateTime: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		ModifyTime: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/posts/42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	got, err := client.Posts().GetOne(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "Synced post", got.Title)
	assert.True(t, got.ModifyTime.Equal(want.ModifyTime))
}

func TestPostService_GetOne_NotFoundIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	got, err := client.Posts().GetOne(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPostService_Create_AssignsServerID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/posts", r.URL.Path)

		var req api.Post
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(-1), req.ID) // клиент шлет placeholder id

		req.ID = 7 // сервер назначает положительный id
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(req))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	created, err := client.Posts().Create(context.Background(), models.PostData{ID: -1, Title: "Draft"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "Draft", created.Title)
}

func TestPostService_Create_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Posts().Create(context.Background(), models.PostData{ID: -1})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPostService_Create_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // сервер уже недоступен

	client := NewClient(server.URL)

	_, err := client.Posts().Create(context.Background(), models.PostData{ID: -1})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPostService_UpdateDelete(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	post := models.PostData{ID: 5, Title: "T"}

	require.NoError(t, client.Posts().Update(context.Background(), post))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/v1/posts/5", gotPath)

	require.NoError(t, client.Posts().Delete(context.Background(), post))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/posts/5", gotPath)
}

func TestCommentService_RoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/comments":
			var req api.Comment
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			req.ID = 11
			w.WriteHeader(http.StatusCreated)
			require.NoError(t, json.NewEncoder(w).Encode(req))
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/comments/11":
			require.NoError(t, json.NewEncoder(w).Encode(api.Comment{ID: 11, Content: "hi", BindingID: 3, IsReply: true}))
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	created, err := client.Comments().Create(ctx, models.CommentData{ID: -2, Content: "hi", BindingID: 3, IsReply: true})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)

	got, err := client.Comments().GetOne(ctx, 11)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hi", got.Content)
	assert.Equal(t, int64(3), got.BindingID)
	assert.True(t, got.IsReply)

	absent, err := client.Comments().GetOne(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok"}))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}
