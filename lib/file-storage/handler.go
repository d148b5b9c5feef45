package filestorage

import (
	"context"

	"github.com/pkg/errors"
)

const (
	ResumeContentType = "application/pdf"
	MaxResumeSize     = 5 * 1024 * 1024 // 5MB limit
)

var (
	ErrInvalidContentType = errors.New("only PDF files are allowed")
	ErrFileTooLarge       = errors.New("resume file cannot exceed 5MB")
)

type Provider interface {
	UploadResume(ctx context.Context, file []byte, contentType string) (key string, err error)
	GetFile(ctx context.Context, key string) ([]byte, error)
	DeleteFile(ctx context.Context, key string) error
}

var Instance Provider
