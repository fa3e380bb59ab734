package storage

import (
	"bytes"
	"context"
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/exceptions"
	"mime"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

var _ contracts.MaskArchive = (*MinioMaskArchive)(nil)

// MinioMaskArchive stores segmentation masks under "masks/<uuid><ext>".
type MinioMaskArchive struct {
	MinioClient *minio.Client
	BucketName  string
	UrlExpiry   time.Duration
}

func NewMinioMaskArchive(minioClient *minio.Client, bucketName string, urlExpiry time.Duration) *MinioMaskArchive {
	return &MinioMaskArchive{
		MinioClient: minioClient,
		BucketName:  bucketName,
		UrlExpiry:   urlExpiry,
	}
}

func (m *MinioMaskArchive) ArchiveMask(ctx context.Context, mask []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = constvars.MIMEImagePNG
	}
	objectName := constvars.MaskObjectPrefix + uuid.New().String() + extensionFor(contentType)

	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(mask),
		int64(len(mask)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return objectName, nil
}

func (m *MinioMaskArchive) GetMaskUrl(ctx context.Context, objectName string) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, m.UrlExpiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, m.BucketName)
	}
	return presignedURL.String(), nil
}

func extensionFor(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil && mediaType != constvars.MIMEImagePNG {
		extensions, _ := mime.ExtensionsByType(mediaType)
		if len(extensions) > 0 {
			return extensions[0]
		}
	}
	return constvars.MaskObjectExtension
}
