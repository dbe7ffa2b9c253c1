package common

import "strings"

// MediaFileType classifies uploaded profile media.
type MediaFileType string

const (
	MediaFileTypeImage   MediaFileType = "image"
	MediaFileTypeVideo   MediaFileType = "video"
	MediaFileTypeUnknown MediaFileType = "unknown"
)

func (mft MediaFileType) String() string {
	return string(mft)
}

func (mft MediaFileType) IsValid() bool {
	return mft == MediaFileTypeImage || mft == MediaFileTypeVideo
}

func DetectFileType(mimeType string) MediaFileType {
	lowerMimeType := strings.ToLower(mimeType)
	if strings.HasPrefix(lowerMimeType, "image/") {
		return MediaFileTypeImage
	}
	if strings.HasPrefix(lowerMimeType, "video/") {
		return MediaFileTypeVideo
	}
	return MediaFileTypeUnknown
}
