package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	internalConfig "github.com/photoclientpro/photoclient-backend/internal/config"
)

// R2Storage talks to Cloudflare R2 through the S3 API. All four stage
// buckets share one client; the bucket is chosen per call.
type R2Storage struct {
	client    *s3.Client
	presigner *s3.PresignClient
	accountID string
	publicURL string
}

func NewR2Storage(cfg *internalConfig.Config) (*R2Storage, error) {
	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2.AccountID),
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(r2Resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2.AccessKeyID,
			cfg.R2.SecretAccessKey,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &R2Storage{
		client:    client,
		presigner: s3.NewPresignClient(client),
		accountID: cfg.R2.AccountID,
		publicURL: cfg.R2.PublicURL,
	}, nil
}

func (s *R2Storage) Upload(bucket, key string, src io.Reader) error {
	buf, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read file content: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf),
		ContentLength: aws.Int64(int64(len(buf))),
	}

	if _, err := s.client.PutObject(context.TODO(), input); err != nil {
		return fmt.Errorf("failed to upload to R2: %w", err)
	}
	return nil
}

func (s *R2Storage) Download(bucket, key string) ([]byte, error) {
	out, err := s.client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download from R2: %w", err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (s *R2Storage) Delete(bucket, key string) error {
	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *R2Storage) List(bucket, prefix string) ([]Object, error) {
	var objects []Object

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(context.TODO())
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, err)
		}
		for _, obj := range page.Contents {
			o := Object{Key: aws.ToString(obj.Key)}
			if obj.Size != nil {
				o.Size = *obj.Size
			}
			if obj.LastModified != nil {
				o.LastModified = *obj.LastModified
			}
			objects = append(objects, o)
		}
	}

	return objects, nil
}

func (s *R2Storage) Count(bucket, prefix string) (int, error) {
	objects, err := s.List(bucket, prefix)
	if err != nil {
		return 0, err
	}
	return len(objects), nil
}

func (s *R2Storage) PresignGet(bucket, key string, expires time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}
	return req.URL, nil
}
