package media

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hungrypaws/hungry-paws-api/internal/config"
)

// Uploader is what the pet handler depends on.
type Uploader interface {
	UploadPetPhoto(ctx context.Context, petID uint, data []byte) (string, error)
}

type Storage struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

func NewStorage(cfg *config.Config) *Storage {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// custom endpoint supports MinIO in development
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Storage{
		client:        s3.New(opts),
		bucket:        cfg.S3Bucket,
		region:        cfg.S3Region,
		publicBaseURL: cfg.S3PublicBaseURL,
	}
}

func (s *Storage) UploadPetPhoto(
	ctx context.Context,
	petID uint,
	data []byte,
) (string, error) {

	key := fmt.Sprintf("pets/%d/photo.webp", petID)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

var _ Uploader = (*Storage)(nil)
