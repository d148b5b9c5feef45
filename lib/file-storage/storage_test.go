package filestorage

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadResumeValidation(t *testing.T) {
	// проверка ограничений не требует соединения с S3
	storage := impl{}

	t.Run(`принимается только PDF`, func(t *testing.T) {
		_, err := storage.UploadResume(context.Background(), []byte("GIF89a"), "image/gif")
		require.ErrorIs(t, err, ErrInvalidContentType)
	})

	t.Run(`файл больше 5МБ отклоняется`, func(t *testing.T) {
		big := bytes.Repeat([]byte("a"), MaxResumeSize+1)
		_, err := storage.UploadResume(context.Background(), big, ResumeContentType)
		require.ErrorIs(t, err, ErrFileTooLarge)
	})
}
