package s3

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const incidentPrefix = "incidents"

type S3 struct {
	cli    *minio.Client
	bucket string
}

func New(conf config.Config) *S3 {
	cli, err := minio.New(
		conf.S3.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(conf.S3.AccessKey, conf.S3.SecretKey, ""),
			Secure: conf.S3.UseSSL,
		},
	)
	if err != nil {
		zap.L().Fatal("failed to create minio client", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, conf.S3.Bucket)
	if err != nil {
		zap.L().Fatal("failed to check bucket", zap.String("bucket", conf.S3.Bucket), zap.Error(err))
	}

	if !exists {
		if err = cli.MakeBucket(ctx, conf.S3.Bucket, minio.MakeBucketOptions{}); err != nil {
			zap.L().Fatal("failed to create bucket", zap.String("bucket", conf.S3.Bucket), zap.Error(err))
		}
		zap.L().Info("bucket created", zap.String("bucket", conf.S3.Bucket))
	}

	return &S3{cli: cli, bucket: conf.S3.Bucket}
}

// IncidentKey builds the object key for the fingerprint archived with an
// incident of the given employee.
func IncidentKey(employeeID string, at time.Time) string {
	return fmt.Sprintf("%s/%s/%d.json", incidentPrefix, employeeID, at.UnixNano())
}

// PutJSON stores payload under key and returns the key.
func (s *S3) PutJSON(ctx context.Context, key string, payload []byte) (string, error) {
	const op = "s3.PutJSON.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := s.cli.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"failed to put object",
			zap.String("op", op),
			zap.String("bucket", s.bucket),
			zap.String("key", key),
			zap.Error(err),
		)
		return "", err
	}

	return key, nil
}
