package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"go", "music"}, NormalizeTags([]string{" Go ", "MUSIC", "go", ""}))
	assert.Empty(t, NormalizeTags([]string{"", "  "}))
	assert.Equal(t, []string{"b", "a"}, NormalizeTags([]string{"b", "a", "B"}), "first occurrence wins the position")
}

func TestNewVideo(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	owner := uuid.New()

	v, err := NewVideo(owner, " Title ", "desc", "https://cdn/v", "https://cdn/t", 12.5, []string{"Go"}, now)
	require.NoError(t, err)
	assert.Equal(t, "Title", v.Title)
	assert.Equal(t, []string{"go"}, v.Tags)
	assert.True(t, v.IsPublished, "new videos start published")
	assert.Equal(t, now, v.CreatedAt)

	_, err = NewVideo(owner, "", "desc", "", "", 0, []string{"go"}, now)
	require.Error(t, err)

	_, err = NewVideo(owner, "t", "d", "", "", 0, nil, now)
	require.Error(t, err, "at least one tag is required")
}

func TestLikeKind_Valid(t *testing.T) {
	assert.True(t, LikeVideo.Valid())
	assert.True(t, LikeTweet.Valid())
	assert.True(t, LikeComment.Valid())
	assert.False(t, LikeKind("channel").Valid())
	assert.False(t, LikeKind("").Valid())
}
