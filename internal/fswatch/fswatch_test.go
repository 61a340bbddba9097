package fswatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShouldIgnore(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/Users/jo/Documents/report.docx", false},
		{"/Users/jo/project/.git/HEAD", true},
		{"/Users/jo/project/node_modules/pkg/index.js", true},
		{"/Users/jo/Desktop/.DS_Store", true},
		{"/Users/jo/src/__pycache__/mod.pyc", true},
		{"/Users/jo/Downloads/invoice.pdf", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShouldIgnore(tt.path), tt.path)
	}
}

func TestPathContext(t *testing.T) {
	ctx := PathContext("/Users/jo/Downloads/invoice.pdf")
	assert.True(t, ctx.IsDownload)
	assert.False(t, ctx.IsDesktop)
	assert.False(t, ctx.IsCloud)
	assert.Equal(t, "Downloads", ctx.ParentFolder)

	ctx = PathContext("/Users/jo/Dropbox/Reports/q1.xlsx")
	assert.True(t, ctx.IsCloud)
	assert.Equal(t, "Reports", ctx.ParentFolder)

	ctx = PathContext("/Users/jo/Documents/taxes/2024.pdf")
	assert.True(t, ctx.IsDocuments)
	assert.Equal(t, "taxes", ctx.ParentFolder)
}

func TestMoveTrackerPairsRenameWithCreate(t *testing.T) {
	tr := newMoveTracker(500 * time.Millisecond)
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	_, had := tr.note("/old/name.txt", now)
	assert.False(t, had)
	assert.True(t, tr.active())

	src, ok := tr.claim(now.Add(100 * time.Millisecond))
	assert.True(t, ok)
	assert.Equal(t, "/old/name.txt", src)
	assert.False(t, tr.active())
}

func TestMoveTrackerClaimAfterWindow(t *testing.T) {
	tr := newMoveTracker(500 * time.Millisecond)
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tr.note("/old/name.txt", now)

	_, ok := tr.claim(now.Add(time.Second))
	assert.False(t, ok)
}

func TestMoveTrackerSecondRenameReturnsStale(t *testing.T) {
	tr := newMoveTracker(500 * time.Millisecond)
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tr.note("/first.txt", now)
	stale, had := tr.note("/second.txt", now.Add(100*time.Millisecond))
	assert.True(t, had)
	assert.Equal(t, "/first.txt", stale)

	src, ok := tr.claim(now.Add(200 * time.Millisecond))
	assert.True(t, ok)
	assert.Equal(t, "/second.txt", src)
}

func TestMoveTrackerExpire(t *testing.T) {
	tr := newMoveTracker(500 * time.Millisecond)
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tr.note("/gone.txt", now)

	_, ok := tr.expire(now.Add(200 * time.Millisecond))
	assert.False(t, ok)
	assert.True(t, tr.active())

	path, ok := tr.expire(now.Add(time.Second))
	assert.True(t, ok)
	assert.Equal(t, "/gone.txt", path)
	assert.False(t, tr.active())
}

func TestMoveTrackerRemaining(t *testing.T) {
	tr := newMoveTracker(500 * time.Millisecond)
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tr.note("/pending.txt", now)
	assert.Equal(t, 300*time.Millisecond, tr.remaining(now.Add(200*time.Millisecond)))
	assert.Equal(t, time.Duration(0), tr.remaining(now.Add(time.Second)))
}
