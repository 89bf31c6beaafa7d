package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ImagePresigner hands out short-lived upload URLs for product and
// avatar images. The application only ever stores the resulting URL.
type ImagePresigner struct {
	client     *s3.PresignClient
	bucketName string
	endpoint   string
}

func NewImagePresigner() (*ImagePresigner, error) {
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

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = usePathStyle
	})

	return &ImagePresigner{
		client:     s3.NewPresignClient(s3Client),
		bucketName: bucketName,
		endpoint:   endpoint,
	}, nil
}

// PresignProductImage returns a PUT URL for a fresh object key under the
// artisan's prefix, plus the public URL to store on the product.
func (p *ImagePresigner) PresignProductImage(ctx context.Context, artisanID uuid.UUID, ext string) (uploadURL string, publicURL string, err error) {
	objectKey := fmt.Sprintf("products/%s/%s%s", artisanID, uuid.New(), ext)

	request, err := p.client.PresignPutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket: aws.String(p.bucketName),
			Key:    aws.String(objectKey),
		},
		func(opts *s3.PresignOptions) {
			opts.Expires = 15 * time.Minute
		},
	)

	if err != nil {
		return "", "", err
	}

	publicURL = fmt.Sprintf("%s/%s/%s", p.endpoint, p.bucketName, objectKey)

	return request.URL, publicURL, nil
}
