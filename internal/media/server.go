// Package media serves stored profile images.
package media

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gatherchat/internal/common"
	"gatherchat/internal/dbmongo"
)

type FileSource interface {
	Download(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.AvatarFile, error)
}

type HTTPServer struct {
	files FileSource
	log   *zap.Logger
}

func NewHTTPServer(files FileSource, log *zap.Logger) *HTTPServer {
	return &HTTPServer{files: files, log: log}
}

// RegisterRoutes mounts GET /media/{fileID}.
func (s *HTTPServer) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/media/{fileID}", s.serveFile).Methods(http.MethodGet)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileID"]

	reader, file, err := s.files.Download(r.Context(), fileID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrInvalidInput) {
			common.WriteError(w, http.StatusNotFound, "file not found")
			return
		}
		s.log.Error("media download failed", zap.String("file_id", fileID), zap.Error(err))
		common.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer reader.Close()

	contentType := file.MimeType
	if contentType == "" {
		contentType = contentTypeFor(file.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(w, reader); err != nil {
		s.log.Warn("error streaming file", zap.String("file_id", fileID), zap.Error(err))
	}
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
