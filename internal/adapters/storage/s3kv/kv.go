package s3kv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"petcare-registry/internal/ports/kv"
)

// maxObjectSize acota lo que leemos de un objeto; las colecciones son chicas.
const maxObjectSize = 4 << 20

// ErrObjectTooLarge: el objeto supera el límite. Nunca se devuelve truncado,
// porque un JSON cortado se leería como colección vacía y la próxima escritura
// pisaría los datos reales.
var ErrObjectTooLarge = errors.New("s3: object too large")

type Config struct {
	Bucket   string
	Region   string
	Endpoint string // si viene, path-style (MinIO y similares)
	Prefix   string
}

// KVStore guarda cada key como un objeto <prefix>/<namespace>/<key>.
// PutObject reemplaza el objeto completo, que es justo el contrato de kv.Store.
type KVStore struct {
	client *s3.Client
	bucket  string
	prefix  string
	maxSize int64
}

func New(ctx context.Context, cfg Config) (*KVStore, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("s3: bucket required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var opts []func(*s3.Options)
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return NewWithClient(s3.NewFromConfig(awsCfg, opts...), cfg.Bucket, cfg.Prefix), nil
}

func NewWithClient(client *s3.Client, bucket, prefix string) *KVStore {
	return &KVStore{
		client:  client,
		bucket:  strings.TrimSpace(bucket),
		prefix:  strings.Trim(strings.TrimSpace(prefix), "/"),
		maxSize: maxObjectSize,
	}
}

func (s *KVStore) objectKey(namespace, key string) string {
	parts := []string{url.PathEscape(namespace), url.PathEscape(key)}
	if s.prefix != "" {
		parts = append([]string{s.prefix}, parts...)
	}
	return strings.Join(parts, "/")
}

func (s *KVStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(namespace, key)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("s3 get object: %w", err)
	}
	defer out.Body.Close()

	objKey := s.objectKey(namespace, key)
	if size := aws.ToInt64(out.ContentLength); size > s.maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrObjectTooLarge, objKey, size, s.maxSize)
	}

	// un byte de más para detectar cuerpos sin Content-Length que pasan el límite
	b, err := io.ReadAll(io.LimitReader(out.Body, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("s3 read object: %w", err)
	}
	if int64(len(b)) > s.maxSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrObjectTooLarge, objKey, s.maxSize)
	}
	return b, nil
}

func (s *KVStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	if strings.TrimSpace(namespace) == "" || strings.TrimSpace(key) == "" {
		return errors.New("namespace and key required")
	}
	if int64(len(value)) > s.maxSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrObjectTooLarge, len(value), s.maxSize)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(namespace, key)),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 put object: %w", err)
	}
	return nil
}

// Delete es idempotente del lado de S3: borrar algo inexistente no falla.
func (s *KVStore) Delete(ctx context.Context, namespace, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(namespace, key)),
	})
	if err != nil {
		return fmt.Errorf("s3 delete object: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
