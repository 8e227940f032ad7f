// Package storage keeps todo attachments in an S3 compatible bucket.
package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	infraerrors "github.com/angristan/todo-music-api/internal/infra/errors"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	storageService = "minio"

	DefaultURLExpiration = 300 * time.Second
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
	Bucket    string
	// PublicURL is the base of stored attachment URLs. Defaults to the
	// endpoint followed by the bucket name.
	PublicURL     string
	URLExpiration time.Duration
}

type AttachmentStore struct {
	tracer    trace.Tracer
	client    *minio.Client
	bucket    string
	region    string
	publicURL string
	expiry    time.Duration
}

func NewAttachmentStore(tracer trace.Tracer, config Config) (*AttachmentStore, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:      credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure:     config.UseSSL,
		Region:     config.Region,
		MaxRetries: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("minio.New: %w", err)
	}

	publicURL := strings.TrimSuffix(config.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if config.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, config.Endpoint, config.Bucket)
	}

	expiry := config.URLExpiration
	if expiry <= 0 {
		expiry = DefaultURLExpiration
	}

	return &AttachmentStore{
		tracer:    tracer,
		client:    client,
		bucket:    config.Bucket,
		region:    config.Region,
		publicURL: publicURL,
		expiry:    expiry,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *AttachmentStore) EnsureBucket(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "AttachmentStore.EnsureBucket")
	defer span.End()

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		span.RecordError(err)
		return infraerrors.NewUpstreamError(storageService, "bucket exists", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		span.RecordError(err)
		return infraerrors.NewUpstreamError(storageService, "make bucket", err)
	}

	return nil
}

// UploadURL returns a presigned PUT URL for the attachment object.
func (s *AttachmentStore) UploadURL(ctx context.Context, attachmentID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "AttachmentStore.UploadURL")
	defer span.End()

	span.SetAttributes(attribute.String("attachment_id", attachmentID))

	u, err := s.client.PresignedPutObject(ctx, s.bucket, attachmentID, s.expiry)
	if err != nil {
		span.RecordError(err)
		return "", infraerrors.NewUpstreamError(storageService, "presign put", err)
	}

	return u.String(), nil
}

func (s *AttachmentStore) ObjectURL(attachmentID string) string {
	return s.publicURL + "/" + url.PathEscape(attachmentID)
}

func (s *AttachmentStore) Delete(ctx context.Context, attachmentID string) error {
	ctx, span := s.tracer.Start(ctx, "AttachmentStore.Delete")
	defer span.End()

	span.SetAttributes(attribute.String("attachment_id", attachmentID))

	if err := s.client.RemoveObject(ctx, s.bucket, attachmentID, minio.RemoveObjectOptions{}); err != nil {
		span.RecordError(err)
		return infraerrors.NewUpstreamError(storageService, "remove object", err)
	}

	return nil
}
