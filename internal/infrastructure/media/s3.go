package media

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vidstream/vidstream/internal/application/catalog"
	appconfig "github.com/vidstream/vidstream/internal/config"
)

// S3Store implements the media store against an S3-compatible backend
// (MinIO/R2/AWS). It takes a local file and hands back a durable public URL;
// for video it also reads the container duration.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
	log     zerolog.Logger
}

func NewS3Store(cfg *appconfig.Config, log zerolog.Logger) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.S3UsePathStyle
	})

	baseURL := strings.TrimRight(cfg.S3PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: baseURL,
		log:     log,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, localPath string, kind catalog.MediaKind) (*catalog.MediaAsset, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", localPath, err)
	}
	defer f.Close()

	ext := filepath.Ext(localPath)
	key := string(kind) + "/" + uuid.NewString() + ext

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	}); err != nil {
		return nil, fmt.Errorf("put object %s: %w", key, err)
	}

	asset := &catalog.MediaAsset{URL: s.baseURL + "/" + key}

	if kind == catalog.MediaVideo {
		d, err := probeDuration(localPath)
		if err != nil {
			// duration is metadata, not a reason to fail the upload
			s.log.Warn().Err(err).Str("path", localPath).Msg("duration probe failed")
		} else {
			asset.Duration = d
		}
	}

	return asset, nil
}

// Remove deletes the stored object for a URL this store minted. Foreign URLs
// are ignored.
func (s *S3Store) Remove(ctx context.Context, url string, kind catalog.MediaKind) error {
	if url == "" {
		return nil
	}
	key, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
