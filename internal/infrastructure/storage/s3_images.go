// Package storage guarda las imágenes del catálogo en Supabase Storage a través de su API
// compatible con S3.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// keyPrefix carpeta de las imágenes de productos dentro del bucket.
const keyPrefix = "products"

var _ repository.ImageStorage = (*S3Images)(nil)

// Config parámetros del bucket.
type Config struct {
	Bucket          string
	Region          string
	Endpoint        string // https://<ref>.supabase.co/storage/v1/s3
	AccessKeyID     string // vacío: cadena de credenciales por defecto
	SecretAccessKey string
	PublicBaseURL   string // https://<ref>.supabase.co
	HTTPClient      *http.Client
}

// S3Images sube imágenes y devuelve su URL pública.
type S3Images struct {
	client    *s3.Client
	bucket    string
	publicURL string
	log       zerolog.Logger
}

// New construye el cliente S3 con path-style (requerido por Supabase Storage).
func New(ctx context.Context, cfg Config, log zerolog.Logger) (*S3Images, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket requerido")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: config aws: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.HTTPClient != nil {
			o.HTTPClient = cfg.HTTPClient
		}
	})
	return &S3Images{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		log:       log.With().Str("component", "image_storage").Logger(),
	}, nil
}

// Upload guarda la imagen bajo una clave nueva y devuelve su URL pública.
func (s *S3Images) Upload(ctx context.Context, img repository.ImageUpload) (string, error) {
	if img.Body == nil {
		return "", fmt.Errorf("%w: imagen sin contenido", domain.ErrInvalidInput)
	}
	body, err := io.ReadAll(img.Body)
	if err != nil {
		return "", fmt.Errorf("leer imagen: %w", err)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("%w: imagen vacía", domain.ErrInvalidInput)
	}
	key := objectKey(img.Name, uuid.NewString())
	contentType := img.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(key))
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: tipo %q no es imagen", domain.ErrInvalidInput, contentType)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("subir %s: %w", key, err)
	}
	s.log.Debug().Str("key", key).Int("bytes", len(body)).Msg("imagen subida")
	return publicObjectURL(s.publicURL, s.bucket, key), nil
}

// objectKey products/<id><ext>; solo se conserva la extensión del nombre original.
func objectKey(name, id string) string {
	ext := strings.ToLower(filepath.Ext(name))
	return keyPrefix + "/" + id + ext
}

func publicObjectURL(base, bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", base, bucket, key)
}
