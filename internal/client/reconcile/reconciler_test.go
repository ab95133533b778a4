package reconcile

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/draftsync/internal/client/api"
	"github.com/iudanet/draftsync/internal/client/diff"
	"github.com/iudanet/draftsync/internal/client/storage"
	"github.com/iudanet/draftsync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakePostStorage строит stateful мок локального хранилища постов поверх map
func fakePostStorage(posts map[int64]models.PostData) *storage.PostStorageMock {
	return &storage.PostStorageMock{
		MaybeGetFunc: func(ctx context.Context, id int64) (*models.PostData, error) {
			if post, ok := posts[id]; ok {
				return &post, nil
			}
			return nil, nil
		},
		InsertFunc: func(ctx context.Context, post models.PostData) error {
			if _, ok := posts[post.ID]; ok {
				return storage.ErrDuplicateID
			}
			posts[post.ID] = post
			return nil
		},
		UpdateFunc: func(ctx context.Context, post models.PostData) error {
			if _, ok := posts[post.ID]; !ok {
				return storage.ErrPostNotFound
			}
			posts[post.ID] = post
			return nil
		},
		DeleteFunc: func(ctx context.Context, id int64) error {
			delete(posts, id)
			return nil
		},
		ChangeIDFunc: func(ctx context.Context, oldID, newID int64) error {
			post, ok := posts[oldID]
			if !ok {
				return storage.ErrPostNotFound
			}
			post.ID = newID
			posts[newID] = post
			delete(posts, oldID)
			return nil
		},
	}
}

// fakeCommentStorage строит stateful мок хранилища комментариев (нужен только binding rewrite)
func fakeCommentStorage(comments map[int64]models.CommentData) *storage.CommentStorageMock {
	return &storage.CommentStorageMock{
		ChangeBindingIDFunc: func(ctx context.Context, oldID, newID int64, isReply bool) error {
			for id, comment := range comments {
				if comment.BindingID == oldID && comment.IsReply == isReply {
					comment.BindingID = newID
					comments[id] = comment
				}
			}
			return nil
		},
	}
}

func TestApplyLocalWins_LocalOnly_RemapsIDAndCascades(t *testing.T) {
	ctx := context.Background()

	localPosts := map[int64]models.PostData{
		-1: {ID: -1, Title: "Draft", Body: "Hello"},
	}
	localComments := map[int64]models.CommentData{
		// два комментария на placeholder пост, один reply с тем же binding id
		-2: {ID: -2, Content: "top level", BindingID: -1, IsReply: false},
		-3: {ID: -3, Content: "another", BindingID: -1, IsReply: false},
		-4: {ID: -4, Content: "reply", BindingID: -1, IsReply: true},
	}

	remote := &api.PostAPIMock{
		CreateFunc: func(ctx context.Context, post models.PostData) (*models.PostData, error) {
			created := post
			created.ID = 100
			return &created, nil
		},
	}

	posts := fakePostStorage(localPosts)
	comments := fakeCommentStorage(localComments)
	r := NewPostReconciler(posts, comments, remote, testLogger())

	local := localPosts[-1]
	require.NoError(t, r.ApplyLocalWins(ctx, &local, nil))

	// Локальный пост принял серверный id
	_, stillThere := localPosts[-1]
	assert.False(t, stillThere)
	remapped, ok := localPosts[100]
	require.True(t, ok)
	assert.Equal(t, int64(100), remapped.ID)
	assert.Equal(t, "Draft", remapped.Title)

	// Каскад переписал binding только топ-левел комментариев
	assert.Equal(t, int64(100), localComments[-2].BindingID)
	assert.Equal(t, int64(100), localComments[-3].BindingID)
	assert.Equal(t, int64(-1), localComments[-4].BindingID) // reply не тронут

	// Каскад вызван один раз и со скоупом isReply=false
	calls := comments.ChangeBindingIDCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(-1), calls[0].OldID)
	assert.Equal(t, int64(100), calls[0].NewID)
	assert.False(t, calls[0].IsReply)
}

func TestApplyLocalWins_LocalOnly_CreateFails_NoLocalMutation(t *testing.T) {
	ctx := context.Background()

	localPosts := map[int64]models.PostData{
		-1: {ID: -1, Title: "Draft"},
	}

	remote := &api.PostAPIMock{
		CreateFunc: func(ctx context.Context, post models.PostData) (*models.PostData, error) {
			return nil, api.ErrUnavailable
		},
	}

	posts := fakePostStorage(localPosts)
	comments := fakeCommentStorage(map[int64]models.CommentData{})
	r := NewPostReconciler(posts, comments, remote, testLogger())

	local := localPosts[-1]
	err := r.ApplyLocalWins(ctx, &local, nil)
	require.ErrorIs(t, err, api.ErrUnavailable)

	// Placeholder остался на месте, каскад не запускался
	assert.Len(t, localPosts, 1)
	assert.Contains(t, localPosts, int64(-1))
	assert.Empty(t, posts.ChangeIDCalls())
	assert.Empty(t, comments.ChangeBindingIDCalls())
}

func TestApplyLocalWins_RemoteOnly_DeletesRemote(t *testing.T) {
	ctx := context.Background()

	remote := &api.PostAPIMock{
		DeleteFunc: func(ctx context.Context, post models.PostData) error {
			return nil
		},
	}

	r := NewPostReconciler(fakePostStorage(map[int64]models.PostData{}), fakeCommentStorage(nil), remote, testLogger())

	remoteRec := models.PostData{ID: 5, Title: "Remote"}
	require.NoError(t, r.ApplyLocalWins(ctx, nil, &remoteRec))

	calls := remote.DeleteCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(5), calls[0].Post.ID)
}

func TestApplyLocalWins_DataDiff_UpdatesRemote(t *testing.T) {
	ctx := context.Background()

	remote := &api.PostAPIMock{
		UpdateFunc: func(ctx context.Context, post models.PostData) error {
			return nil
		},
	}

	r := NewPostReconciler(fakePostStorage(map[int64]models.PostData{}), fakeCommentStorage(nil), remote, testLogger())

	local := models.PostData{ID: 5, Title: "Local version"}
	remoteRec := models.PostData{ID: 5, Title: "Remote version"}
	require.NoError(t, r.ApplyLocalWins(ctx, &local, &remoteRec))

	calls := remote.UpdateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Local version", calls[0].Post.Title)
}

func TestApplyRemoteWins_LocalOnly_DeletesLocal(t *testing.T) {
	ctx := context.Background()

	localPosts := map[int64]models.PostData{
		-1: {ID: -1, Title: "Draft"},
	}
	r := NewPostReconciler(fakePostStorage(localPosts), fakeCommentStorage(nil), &api.PostAPIMock{}, testLogger())

	local := localPosts[-1]
	require.NoError(t, r.ApplyRemoteWins(ctx, &local, nil))

	assert.Empty(t, localPosts)
}

func TestApplyRemoteWins_RemoteOnly_InsertsLocallyPreservingID(t *testing.T) {
	ctx := context.Background()

	localPosts := map[int64]models.PostData{}
	r := NewPostReconciler(fakePostStorage(localPosts), fakeCommentStorage(nil), &api.PostAPIMock{}, testLogger())

	remoteRec := models.PostData{ID: 8, Title: "Remote", Body: "Body"}
	require.NoError(t, r.ApplyRemoteWins(ctx, nil, &remoteRec))

	got, ok := localPosts[8]
	require.True(t, ok)
	assert.Equal(t, int64(8), got.ID)
	assert.Equal(t, "Remote", got.Title)
}

func TestApplyRemoteWins_DataDiff_OverwritesLocalContent(t *testing.T) {
	ctx := context.Background()

	localPosts := map[int64]models.PostData{
		5: {ID: 5, Title: "Local version", Body: "local"},
	}
	r := NewPostReconciler(fakePostStorage(localPosts), fakeCommentStorage(nil), &api.PostAPIMock{}, testLogger())

	local := localPosts[5]
	remoteRec := models.PostData{ID: 5, Title: "Remote version", Body: "remote"}
	require.NoError(t, r.ApplyRemoteWins(ctx, &local, &remoteRec))

	got := localPosts[5]
	assert.Equal(t, int64(5), got.ID) // id не меняется
	assert.Equal(t, "Remote version", got.Title)
	assert.Equal(t, remoteRec.ContentHash(), got.ContentHash())
}

func TestApply_NoDiff(t *testing.T) {
	ctx := context.Background()
	r := NewPostReconciler(fakePostStorage(nil), fakeCommentStorage(nil), &api.PostAPIMock{}, testLogger())

	assert.ErrorIs(t, r.ApplyLocalWins(ctx, nil, nil), ErrNoDiff)
	assert.ErrorIs(t, r.ApplyRemoteWins(ctx, nil, nil), ErrNoDiff)
}

func TestCommentReconciler_CascadeScopedToReplies(t *testing.T) {
	ctx := context.Background()

	localComments := map[int64]models.CommentData{
		-1: {ID: -1, Content: "parent draft", BindingID: 3, IsReply: false},
		-2: {ID: -2, Content: "reply to parent", BindingID: -1, IsReply: true},
		-3: {ID: -3, Content: "unrelated", BindingID: -1, IsReply: false},
	}

	comments := fakeCommentStorage(localComments)
	comments.MaybeGetFunc = func(ctx context.Context, id int64) (*models.CommentData, error) {
		if comment, ok := localComments[id]; ok {
			return &comment, nil
		}
		return nil, nil
	}
	comments.ChangeIDFunc = func(ctx context.Context, oldID, newID int64) error {
		comment := localComments[oldID]
		comment.ID = newID
		localComments[newID] = comment
		delete(localComments, oldID)
		return nil
	}

	remote := &api.CommentAPIMock{
		CreateFunc: func(ctx context.Context, comment models.CommentData) (*models.CommentData, error) {
			created := comment
			created.ID = 50
			return &created, nil
		},
	}

	r := NewCommentReconciler(comments, remote, testLogger())

	local := localComments[-1]
	require.NoError(t, r.ApplyLocalWins(ctx, &local, nil))

	// Reply перепривязан к новому id, не-reply с тем же binding не тронут
	assert.Equal(t, int64(50), localComments[-2].BindingID)
	assert.Equal(t, int64(-1), localComments[-3].BindingID)

	calls := comments.ChangeBindingIDCalls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].IsReply)
}

func TestSnapshot_PlaceholderSkipsRemote(t *testing.T) {
	ctx := context.Background()

	localPosts := map[int64]models.PostData{
		-1: {ID: -1, Title: "Draft"},
	}
	remote := &api.PostAPIMock{} // GetOneFunc nil: вызов уронил бы тест паникой

	r := NewPostReconciler(fakePostStorage(localPosts), fakeCommentStorage(nil), remote, testLogger())

	local, remoteRec, err := r.Snapshot(ctx, -1)
	require.NoError(t, err)
	require.NotNil(t, local)
	assert.Nil(t, remoteRec)
	assert.Equal(t, diff.LocalOnly, diff.Classify(local, remoteRec))
}

func TestRoundTrip_SecondLocalWinsDegeneratesToUpdate(t *testing.T) {
	ctx := context.Background()

	localPosts := map[int64]models.PostData{
		-1: {ID: -1, Title: "Draft", Body: "v1"},
	}
	remotePosts := map[int64]models.PostData{}

	remote := &api.PostAPIMock{
		GetOneFunc: func(ctx context.Context, id int64) (*models.PostData, error) {
			if post, ok := remotePosts[id]; ok {
				return &post, nil
			}
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, post models.PostData) (*models.PostData, error) {
			created := post
			created.ID = 100
			remotePosts[100] = created
			return &created, nil
		},
		UpdateFunc: func(ctx context.Context, post models.PostData) error {
			remotePosts[post.ID] = post
			return nil
		},
	}

	r := NewPostReconciler(fakePostStorage(localPosts), fakeCommentStorage(map[int64]models.CommentData{}), remote, testLogger())

	// Первый проход: LocalOnly -> create + remap
	local, remoteRec, err := r.Snapshot(ctx, -1)
	require.NoError(t, err)
	require.Equal(t, diff.LocalOnly, diff.Classify(local, remoteRec))
	require.NoError(t, r.ApplyLocalWins(ctx, local, remoteRec))

	// Повторная классификация по новому id: обе стороны на месте.
	// Классификатор сообщает DataDiff даже при равном контенте —
	// presence-only семантика, равенство видно только по хешам.
	local, remoteRec, err = r.Snapshot(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, diff.DataDiff, diff.Classify(local, remoteRec))
	assert.Equal(t, local.ContentHash(), remoteRec.ContentHash())

	// Повторный local-wins вырождается в идемпотентный remote update
	require.NoError(t, r.ApplyLocalWins(ctx, local, remoteRec))
	assert.Len(t, remote.CreateCalls(), 1)
	assert.Len(t, remote.UpdateCalls(), 1)
	assert.Equal(t, local.ContentHash(), remotePosts[100].ContentHash())
}

func TestReconciler_SerializesResolutionsPerID(t *testing.T) {
	ctx := context.Background()

	var (
		mu          sync.Mutex
		inFlight    int
		maxInFlight int
	)

	remote := &api.PostAPIMock{
		UpdateFunc: func(ctx context.Context, post models.PostData) error {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return nil
		},
	}

	r := NewPostReconciler(fakePostStorage(map[int64]models.PostData{}), fakeCommentStorage(nil), remote, testLogger())

	local := models.PostData{ID: 5, Title: "Local"}
	remoteRec := models.PostData{ID: 5, Title: "Remote"}

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.ApplyLocalWins(ctx, &local, &remoteRec))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInFlight, "resolutions for one id must not overlap")
}
