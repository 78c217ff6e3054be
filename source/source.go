// Package source opens the locations the command line tools read from and
// write to: "-" for the standard streams, s3://bucket/key for S3 objects, and
// anything else as a local path.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/boynton/step/internal/ctxlog"
)

const Stdio = "-"

const s3Scheme = "s3://"

// NewS3Client builds the client used for s3:// locations. It is a variable so
// tests can substitute a fake.
var NewS3Client = func() (s3iface.S3API, error) {
	sess, err := session.NewSessionWithOptions(session.Options{SharedConfigState: session.SharedConfigEnable})
	if err != nil {
		return nil, err
	}
	return s3.New(sess), nil
}

// ParseS3 splits an s3://bucket/key location.
func ParseS3(location string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(location, s3Scheme) {
		return "", "", false
	}
	bucket, key, found := strings.Cut(strings.TrimPrefix(location, s3Scheme), "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

func Open(ctx context.Context, location string) (io.ReadCloser, error) {
	logger := ctxlog.FromContext(ctx)
	if location == Stdio {
		return io.NopCloser(os.Stdin), nil
	}
	if strings.HasPrefix(location, s3Scheme) {
		bucket, key, ok := ParseS3(location)
		if !ok {
			return nil, fmt.Errorf("bad S3 location %q", location)
		}
		client, err := NewS3Client()
		if err != nil {
			return nil, fmt.Errorf("cannot create S3 client: %w", err)
		}
		logger.Debug("reading S3 object", "bucket", bucket, "key", key)
		out, err := client.GetObjectWithContext(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", location, err)
		}
		return out.Body, nil
	}
	logger.Debug("reading file", "path", location)
	return os.Open(location)
}

func Create(ctx context.Context, location string) (io.WriteCloser, error) {
	if location == Stdio {
		return nopWriteCloser{os.Stdout}, nil
	}
	if strings.HasPrefix(location, s3Scheme) {
		bucket, key, ok := ParseS3(location)
		if !ok {
			return nil, fmt.Errorf("bad S3 location %q", location)
		}
		client, err := NewS3Client()
		if err != nil {
			return nil, fmt.Errorf("cannot create S3 client: %w", err)
		}
		return &s3Writer{ctx: ctx, client: client, bucket: bucket, key: key}, nil
	}
	ctxlog.FromContext(ctx).Debug("writing file", "path", location)
	return os.Create(location)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// s3Writer buffers the object and uploads it on Close.
type s3Writer struct {
	ctx    context.Context
	client s3iface.S3API
	bucket string
	key    string
	buf    bytes.Buffer
	closed bool
}

func (w *s3Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("write to closed S3 object s3://%s/%s", w.bucket, w.key)
	}
	return w.buf.Write(p)
}

func (w *s3Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	ctxlog.FromContext(w.ctx).Debug("writing S3 object", "bucket", w.bucket, "key", w.key, "bytes", w.buf.Len())
	_, err := w.client.PutObjectWithContext(w.ctx, &s3.PutObjectInput{
		Bucket: aws.String(w.bucket),
		Key:    aws.String(w.key),
		Body:   bytes.NewReader(w.buf.Bytes()),
	})
	if err != nil {
		return fmt.Errorf("s3://%s/%s: %w", w.bucket, w.key, err)
	}
	return nil
}
