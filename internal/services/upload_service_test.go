package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tourcms/internal/storage"
	"tourcms/pkg/utils"
)

type stubStore struct {
	putErr error
	getErr error
	names  []string
}

func (s *stubStore) Put(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	if s.putErr != nil {
		return s.putErr
	}
	_, _ = io.Copy(io.Discard, r)
	s.names = append(s.names, name)
	return nil
}

func (s *stubStore) Get(_ context.Context, _ string) (io.ReadCloser, storage.ObjectInfo, error) {
	if s.getErr != nil {
		return nil, storage.ObjectInfo{}, s.getErr
	}
	return io.NopCloser(strings.NewReader("x")), storage.ObjectInfo{ContentType: "image/jpeg", Size: 1}, nil
}

func TestUploadNamesObjects(t *testing.T) {
	store := &stubStore{}
	svc := NewUploadService(store, zap.NewNop())

	path, err := svc.Upload(context.Background(), "Beach.JPEG", strings.NewReader("x"), 1)
	require.NoError(t, err)
	require.Len(t, store.names, 1)
	assert.Equal(t, UploadURLPrefix+store.names[0], path)
	assert.Regexp(t, `^img_[0-9a-f]{8}_\d+\.jpeg$`, store.names[0])
}

func TestUploadErrors(t *testing.T) {
	svc := NewUploadService(&stubStore{}, zap.NewNop())
	_, err := svc.Upload(context.Background(), "script.sh", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, utils.ErrUnsupportedFileType)

	svc = NewUploadService(&stubStore{putErr: errors.New("bucket gone")}, zap.NewNop())
	_, err = svc.Upload(context.Background(), "a.png", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, utils.ErrStorageError)
}

func TestOpenErrors(t *testing.T) {
	svc := NewUploadService(&stubStore{getErr: storage.ErrObjectNotFound}, zap.NewNop())
	_, _, err := svc.Open(context.Background(), "a.png")
	assert.ErrorIs(t, err, utils.ErrFileNotFound)

	_, _, err = svc.Open(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, utils.ErrFileNotFound)

	svc = NewUploadService(&stubStore{getErr: errors.New("timeout")}, zap.NewNop())
	_, _, err = svc.Open(context.Background(), "a.png")
	assert.ErrorIs(t, err, utils.ErrStorageError)
}
