package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gatherchat/internal/common"
)

type AvatarStorage struct {
	gridFS *gridfs.Bucket
}

func NewAvatarStorage(mongoClient *MongoClient) *AvatarStorage {
	return &AvatarStorage{
		gridFS: mongoClient.GridFS,
	}
}

type AvatarFile struct {
	ID         string               `json:"id"`
	Filename   string               `json:"filename"`
	Size       int64                `json:"size"`
	MimeType   string               `json:"mime_type"`
	FileType   common.MediaFileType `json:"file_type"`
	UploadedBy string               `json:"uploaded_by"`
	UploadedAt time.Time            `json:"uploaded_at"`
}

func (s *AvatarStorage) Upload(ctx context.Context, filename, mimeType, ownerID string, content io.Reader) (*AvatarFile, error) {
	fileType := common.DetectFileType(mimeType)
	uploadedAt := time.Now()

	metadata := bson.M{
		"file_type":   fileType.String(),
		"mime_type":   mimeType,
		"uploaded_by": ownerID,
		"uploaded_at": uploadedAt,
	}

	stream, err := s.gridFS.OpenUploadStream(filename, options.GridFSUpload().SetMetadata(metadata))
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetWriteDeadline(deadline)
	}

	size, err := io.Copy(stream, content)
	if err != nil {
		_ = stream.Abort()
		return nil, fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	return &AvatarFile{
		ID:         stream.FileID.(primitive.ObjectID).Hex(),
		Filename:   filename,
		Size:       size,
		MimeType:   mimeType,
		FileType:   fileType,
		UploadedBy: ownerID,
		UploadedAt: uploadedAt,
	}, nil
}

// Download returns an open stream; the caller closes it.
func (s *AvatarStorage) Download(ctx context.Context, fileID string) (io.ReadCloser, *AvatarFile, error) {
	objectID, err := parseFileID(fileID)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, fmt.Errorf("avatar %s: %w", fileID, common.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetReadDeadline(deadline)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		_ = bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	return stream, &AvatarFile{
		ID:         fileID,
		Filename:   fileInfo.Name,
		Size:       fileInfo.Length,
		MimeType:   stringFromMap(metadata, "mime_type"),
		FileType:   common.MediaFileType(stringFromMap(metadata, "file_type")),
		UploadedBy: stringFromMap(metadata, "uploaded_by"),
		UploadedAt: fileInfo.UploadDate,
	}, nil
}

func (s *AvatarStorage) Delete(ctx context.Context, fileID string) error {
	objectID, err := parseFileID(fileID)
	if err != nil {
		return err
	}
	if err := s.gridFS.DeleteContext(ctx, objectID); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return fmt.Errorf("avatar %s: %w", fileID, common.ErrNotFound)
		}
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

func parseFileID(fileID string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid file ID %q: %w", fileID, common.ErrInvalidInput)
	}
	return objectID, nil
}

func stringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
