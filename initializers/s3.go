package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"referral-tracker-backend/config"
	filestorage "referral-tracker-backend/lib/file-storage"
	s3client "referral-tracker-backend/s3"
)

func InitS3(ctx context.Context) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	_, err = minioClient.ListBuckets(ctx)
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось, ListBuckets вернул ошибку")
	}

	s3client.Client = minioClient
	if err = s3client.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("Ошибка создания бакета для резюме")
	}
	filestorage.NewInstance(minioClient)
	log.Info("S3 клиент успешно инициализирован")
}
