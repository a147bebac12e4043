package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"mime"
	"os"
	"path"
	"strings"

	"homefix_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var (
	ErrMissingBucket     = errors.New("missing S3_BUCKET")
	ErrEmptyUploadBuffer = errors.New("upload buffer is empty")
)

// imageMaxWidth caps uploaded images; anything wider is downscaled before
// re-encoding to web-optimized JPEG.
const imageMaxWidth = 1600

// S3UploadGateway stores quotation documents and portfolio images in S3.
// The object key doubles as the deletable public key referenced by job
// orders and portfolio entries.
type S3UploadGateway struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
	mockMode      bool
}

var _ interfaces.IUploadGateway = (*S3UploadGateway)(nil)

func NewS3UploadGateway(cfg aws.Config) (*S3UploadGateway, error) {
	if isUploadGatewayMockEnabled() {
		log.Printf("[upload][gateway] mock mode enabled")
		return &S3UploadGateway{mockMode: true}, nil
	}

	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		log.Printf("[upload][gateway] missing S3_BUCKET")
		return nil, ErrMissingBucket
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	log.Printf("[upload][gateway] S3 client initialized bucket=%s", bucket)

	return &S3UploadGateway{
		client:        client,
		bucket:        bucket,
		region:        cfg.Region,
		publicBaseURL: strings.TrimRight(os.Getenv("S3_PUBLIC_BASE_URL"), "/"),
	}, nil
}

func (g *S3UploadGateway) UploadDocument(ctx context.Context, data []byte, filename string) (interfaces.UploadResult, error) {
	if len(data) == 0 {
		return interfaces.UploadResult{}, ErrEmptyUploadBuffer
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".pdf"
	}
	key := "quotations/" + uuid.NewString() + ext
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return g.put(ctx, key, data, contentType)
}

func (g *S3UploadGateway) UploadImage(ctx context.Context, data []byte, filename string) (interfaces.UploadResult, error) {
	if len(data) == 0 {
		return interfaces.UploadResult{}, ErrEmptyUploadBuffer
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		log.Printf("[upload][gateway] image decode failed filename=%q err=%v", filename, err)
		return interfaces.UploadResult{}, err
	}
	if img.Bounds().Dx() > imageMaxWidth {
		img = imaging.Resize(img, imageMaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return interfaces.UploadResult{}, err
	}

	key := "images/" + uuid.NewString() + ".jpg"
	return g.put(ctx, key, buf.Bytes(), "image/jpeg")
}

func (g *S3UploadGateway) DeleteByKey(ctx context.Context, key string) error {
	if g.mockMode {
		log.Printf("[upload][gateway] mock delete key=%s", key)
		return nil
	}
	if strings.TrimSpace(key) == "" {
		return nil
	}

	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Printf("[upload][gateway] delete failed key=%s err=%v", key, err)
		return err
	}
	log.Printf("[upload][gateway] delete success key=%s", key)
	return nil
}

func (g *S3UploadGateway) put(ctx context.Context, key string, data []byte, contentType string) (interfaces.UploadResult, error) {
	if g.mockMode {
		log.Printf("[upload][gateway] mock upload key=%s size=%d", key, len(data))
		return interfaces.UploadResult{URL: "https://uploads.invalid/" + key, PublicKey: key}, nil
	}

	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[upload][gateway] upload failed key=%s err=%v", key, err)
		return interfaces.UploadResult{}, err
	}
	log.Printf("[upload][gateway] upload success key=%s size=%d", key, len(data))

	return interfaces.UploadResult{URL: g.objectURL(key), PublicKey: key}, nil
}

func (g *S3UploadGateway) objectURL(key string) string {
	if g.publicBaseURL != "" {
		return g.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", g.bucket, g.region, key)
}

func isUploadGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("UPLOAD_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
