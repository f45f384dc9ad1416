//go:build api

package testdb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// MinIO credentials and the bucket uploaded images land in.
const (
	MinIOAccessKey = "minioadmin"
	MinIOSecretKey = "minioadmin"
	MinIOBucket    = "movie-images"
)

// MinIOContainer is the S3-compatible store behind the s3 storage driver.
// Client is used only for assertions and cleanup; the application builds its own.
type MinIOContainer struct {
	Container testcontainers.Container
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Client    *s3.Client
}

// SetupMinIO starts MinIO. The bucket is created by the application's storage client.
func SetupMinIO(ctx context.Context) (*MinIOContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	container, endpoint, err := startContainer(ctx, testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     MinIOAccessKey,
			"MINIO_ROOT_PASSWORD": MinIOSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/ready").WithPort("9000/tcp"),
	})
	if err != nil {
		return nil, err
	}

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String("http://" + endpoint),
		UsePathStyle: true,
		Credentials:  credentials.NewStaticCredentialsProvider(MinIOAccessKey, MinIOSecretKey, ""),
	})

	return &MinIOContainer{
		Container: container,
		Endpoint:  endpoint,
		AccessKey: MinIOAccessKey,
		SecretKey: MinIOSecretKey,
		Bucket:    MinIOBucket,
		Client:    client,
	}, nil
}

// ClearBucket deletes every stored object, one listing page at a time.
func (mc *MinIOContainer) ClearBucket(ctx context.Context) error {
	paginator := s3.NewListObjectsV2Paginator(mc.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(mc.Bucket),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return err
		}
		if len(page.Contents) == 0 {
			continue
		}

		ids := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			ids = append(ids, types.ObjectIdentifier{Key: obj.Key})
		}
		if _, err := mc.Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(mc.Bucket),
			Delete: &types.Delete{Objects: ids, Quiet: aws.Bool(true)},
		}); err != nil {
			return err
		}
	}
	return nil
}

// Cleanup terminates the container.
func (mc *MinIOContainer) Cleanup(ctx context.Context) error {
	if mc.Container != nil {
		return mc.Container.Terminate(ctx)
	}
	return nil
}

// ObjectExists reports whether key is stored in the bucket.
func (mc *MinIOContainer) ObjectExists(ctx context.Context, key string) bool {
	_, err := mc.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(mc.Bucket),
		Key:    aws.String(key),
	})
	return err == nil
}
