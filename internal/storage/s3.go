// Package storage keeps payment-proof images in an S3-compatible bucket
// (MinIO in development).
package storage

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ProofStore is what the payment service needs: store an uploaded proof and
// hand staff a short-lived link to review it.
type ProofStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	ReviewURL(ctx context.Context, key string) (string, error)
}

type S3ProofStore struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
}

func NewS3ProofStore() (*S3ProofStore, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	region := os.Getenv("AWS_REGION")
	bucketName := os.Getenv("S3_BUCKET_NAME")
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	usePathStyle := os.Getenv("S3_USE_PATH_STYLE") == "true"

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               endpoint,
			SigningRegion:     region,
			HostnameImmutable: true,
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(
		context.TODO(),
		config.WithRegion(region),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = usePathStyle
	})

	return &S3ProofStore{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucketName:    bucketName,
	}, nil
}

func (p *S3ProofStore) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	return err
}

func (p *S3ProofStore) ReviewURL(ctx context.Context, key string) (string, error) {
	request, err := p.presignClient.PresignGetObject(ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(p.bucketName),
			Key:    aws.String(key),
		},
		func(opts *s3.PresignOptions) {
			opts.Expires = 15 * time.Minute
		},
	)
	if err != nil {
		return "", err
	}
	return request.URL, nil
}
