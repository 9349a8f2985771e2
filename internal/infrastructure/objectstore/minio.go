// Package objectstore adapta el bucket S3/MinIO donde viven adjuntos y avatares.
// El CRM solo guarda la clave del objeto; el contenido nunca pasa por la DB.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/tu-usuario/crm-pro/pkg/config"
)

// Store cliente del bucket de objetos.
type Store struct {
	client *minio.Client
	bucket string
}

// New conecta al endpoint S3/MinIO y garantiza que el bucket exista.
func New(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("cliente minio: %w", err)
	}
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("verificar bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("crear bucket: %w", err)
		}
	}
	return &Store{client: client, bucket: cfg.Bucket}, nil
}

// Put sube un objeto y devuelve la clave con la que quedó guardado.
// La clave se prefija con el tenant para que el bucket también quede particionado.
func (s *Store) Put(ctx context.Context, tenantID, objectKey string, r io.Reader, size int64, contentType string) (string, error) {
	key := tenantID + "/" + objectKey
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("subir objeto: %w", err)
	}
	return key, nil
}

// PresignedURL genera una URL de descarga temporal para un objeto.
func (s *Store) PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presigned url: %w", err)
	}
	return u.String(), nil
}

// Remove elimina un objeto del bucket.
func (s *Store) Remove(ctx context.Context, objectKey string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("eliminar objeto: %w", err)
	}
	return nil
}
