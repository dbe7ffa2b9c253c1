package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaFileType_String(t *testing.T) {
	assert.Equal(t, "image", MediaFileTypeImage.String())
	assert.Equal(t, "video", MediaFileTypeVideo.String())
}

func TestMediaFileType_IsValid(t *testing.T) {
	assert.True(t, MediaFileTypeImage.IsValid())
	assert.True(t, MediaFileTypeVideo.IsValid())
	assert.False(t, MediaFileTypeUnknown.IsValid())
	assert.False(t, MediaFileType("invalid").IsValid())
}

func TestDetectFileType(t *testing.T) {
	cases := []struct {
		input    string
		expected MediaFileType
	}{
		{"image/jpeg", MediaFileTypeImage},
		{"image/png", MediaFileTypeImage},
		{"IMAGE/JPEG", MediaFileTypeImage},
		{"video/mp4", MediaFileTypeVideo},
		{"Video/MP4", MediaFileTypeVideo},
		{"application/pdf", MediaFileTypeUnknown},
		{"text/plain; charset=utf-8", MediaFileTypeUnknown},
		{"", MediaFileTypeUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, DetectFileType(tc.input), "Failed for input: %s", tc.input)
	}
}
