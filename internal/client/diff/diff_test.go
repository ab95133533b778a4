package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/draftsync/internal/models"
)

func TestClassify(t *testing.T) {
	local := &models.PostData{ID: -1, Title: "local"}
	remote := &models.PostData{ID: 1, Title: "remote"}

	tests := []struct {
		local  *models.PostData
		remote *models.PostData
		name   string
		want   Category
	}{
		{local, nil, "local only", LocalOnly},
		{nil, remote, "remote only", RemoteOnly},
		{local, remote, "both present", DataDiff},
		{nil, nil, "both absent", None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.local, tt.remote))
		})
	}
}

func TestClassify_PresenceOnly(t *testing.T) {
	// Классификатор не сравнивает контент: две идентичные стороны
	// всё равно дают DataDiff, решение за вызывающим кодом.
	same := models.PostData{ID: 3, Title: "same", Body: "same"}
	other := same

	got := Classify(&same, &other)
	assert.Equal(t, DataDiff, got)
	assert.Equal(t, same.ContentHash(), other.ContentHash())
}

func TestCategory_Actionable(t *testing.T) {
	assert.False(t, None.Actionable())
	assert.True(t, LocalOnly.Actionable())
	assert.True(t, RemoteOnly.Actionable())
	assert.True(t, DataDiff.Actionable())
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "local-only", LocalOnly.String())
	assert.Equal(t, "remote-only", RemoteOnly.String())
	assert.Equal(t, "data-diff", DataDiff.String())
}
