// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/ciderlog/cider-backend/internal/config"
)

// StorageService archives product image bytes to S3 when AWS credentials
// are configured. The database blob stays the source of truth for the
// API; archival is best-effort and never fails a request.
type StorageService struct {
	s3Client *s3.S3
	cfg      config.AWSConfig
}

func NewStorageService(cfg config.AWSConfig) (*StorageService, error) {
	if cfg.AccessKeyID == "" {
		// No-op service for local development
		return &StorageService{cfg: cfg}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		cfg:      cfg,
	}, nil
}

func (s *StorageService) Enabled() bool {
	return s.s3Client != nil
}

// ArchiveImage writes the image under products/<id>/image. Failures are
// logged and swallowed.
func (s *StorageService) ArchiveImage(productID uint, data []byte) {
	if !s.Enabled() {
		return
	}

	key := fmt.Sprintf("products/%d/image", productID)
	contentType := http.DetectContentType(data)

	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("Failed to archive image to S3")
		return
	}

	logrus.WithFields(logrus.Fields{
		"key":  key,
		"size": len(data),
	}).Info("Image archived to S3")
}

// DeleteImage removes an archived image after its product is deleted.
func (s *StorageService) DeleteImage(productID uint) {
	if !s.Enabled() {
		return
	}

	key := fmt.Sprintf("products/%d/image", productID)
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("Failed to delete archived image from S3")
	}
}
