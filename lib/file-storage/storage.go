package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"referral-tracker-backend/config"
)

type impl struct {
	s3client *minio.Client
}

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

func (i impl) UploadResume(ctx context.Context, file []byte, contentType string) (string, error) {
	if contentType != ResumeContentType {
		return "", ErrInvalidContentType
	}
	if len(file) > MaxResumeSize {
		return "", ErrFileTooLarge
	}
	key := fmt.Sprintf("resumes/%s.pdf", uuid.NewString())
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, key,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: ResumeContentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения файла резюме в S3")
	}
	return key, nil
}

func (i impl) GetFile(ctx context.Context, key string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return body, nil
}

func (i impl) DeleteFile(ctx context.Context, key string) error {
	err := i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла из S3")
	}
	return nil
}
