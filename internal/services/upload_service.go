package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tourcms/internal/storage"
	"tourcms/pkg/utils"
)

const UploadURLPrefix = "/uploads/"

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

type UploadServiceInterface interface {
	// Upload stores an image and returns the public path it is served from.
	Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error)
}

type UploadService struct {
	store storage.ImageStore
	log   *zap.Logger
}

func NewUploadService(store storage.ImageStore, log *zap.Logger) UploadServiceInterface {
	return &UploadService{store: store, log: log.Named("uploads")}
}

func (s *UploadService) Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return "", utils.ErrUnsupportedFileType
	}

	name := fmt.Sprintf("img_%s_%d%s", uuid.New().String()[:8], time.Now().Unix(), ext)
	if err := s.store.Put(ctx, name, r, size, contentType); err != nil {
		s.log.Error("upload failed", zap.String("filename", filename), zap.Error(err))
		return "", utils.ErrStorageError
	}

	s.log.Info("image uploaded", zap.String("name", name))
	return UploadURLPrefix + name, nil
}

func (s *UploadService) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, storage.ObjectInfo{}, utils.ErrFileNotFound
	}

	body, info, err := s.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.ObjectInfo{}, utils.ErrFileNotFound
		}
		s.log.Error("read object failed", zap.String("name", name), zap.Error(err))
		return nil, storage.ObjectInfo{}, utils.ErrStorageError
	}
	return body, info, nil
}
