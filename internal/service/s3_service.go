package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service uploads studio gallery images to the public bucket.
type S3Service struct {
	BucketName string
	Region     string
	Client     *s3.Client
}

// NewS3Service initializes the S3 service.
func NewS3Service(bucketName, region string) (*S3Service, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("bucket name is not configured")
	}
	if region == "" {
		region = "me-south-1"
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS configuration: %w", err)
	}

	return &S3Service{
		BucketName: bucketName,
		Region:     region,
		Client:     s3.NewFromConfig(cfg),
	}, nil
}

// UploadImage uploads a gallery image and returns its public URL.
func (s *S3Service) UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	defer file.Close()

	buffer := bytes.NewBuffer(nil)
	if _, err := buffer.ReadFrom(file); err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	// Prefix with a timestamp so repeated uploads of the same filename
	// never overwrite each other.
	key := fmt.Sprintf("gallery/%d_%s", time.Now().Unix(), fileHeader.Filename)

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buffer.Bytes()),
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.BucketName, s.Region, key), nil
}
