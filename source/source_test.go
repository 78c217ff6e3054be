package source

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	s3iface.S3API
	objects map[string][]byte
}

func (f *fakeS3) GetObjectWithContext(ctx aws.Context, in *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, os.ErrNotExist
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, in *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func useFake(test *testing.T) *fakeS3 {
	fake := &fakeS3{objects: map[string][]byte{}}
	saved := NewS3Client
	NewS3Client = func() (s3iface.S3API, error) { return fake, nil }
	test.Cleanup(func() { NewS3Client = saved })
	return fake
}

func TestParseS3(test *testing.T) {
	bucket, key, ok := ParseS3("s3://parts/dir/part.stp")
	assert.True(test, ok)
	assert.Equal(test, "parts", bucket)
	assert.Equal(test, "dir/part.stp", key)

	for _, bad := range []string{"s3://parts", "s3:///key", "s3://parts/", "/tmp/x.stp"} {
		_, _, ok := ParseS3(bad)
		assert.False(test, ok, bad)
	}
}

func TestLocalFiles(test *testing.T) {
	ctx := context.Background()
	path := filepath.Join(test.TempDir(), "out.stp")
	w, err := Create(ctx, path)
	require.NoError(test, err)
	_, err = io.WriteString(w, "contents")
	require.NoError(test, err)
	require.NoError(test, w.Close())

	r, err := Open(ctx, path)
	require.NoError(test, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(test, err)
	assert.Equal(test, "contents", string(data))

	_, err = Open(ctx, filepath.Join(test.TempDir(), "missing.stp"))
	assert.ErrorIs(test, err, os.ErrNotExist)
}

func TestS3RoundTrip(test *testing.T) {
	fake := useFake(test)
	ctx := context.Background()
	w, err := Create(ctx, "s3://parts/a/b.stp")
	require.NoError(test, err)
	_, err = io.WriteString(w, "ISO-10303-21;")
	require.NoError(test, err)
	assert.Empty(test, fake.objects)
	require.NoError(test, w.Close())
	assert.Equal(test, "ISO-10303-21;", string(fake.objects["parts/a/b.stp"]))

	_, err = w.Write([]byte("late"))
	assert.Error(test, err)

	r, err := Open(ctx, "s3://parts/a/b.stp")
	require.NoError(test, err)
	data, err := io.ReadAll(r)
	require.NoError(test, err)
	assert.Equal(test, "ISO-10303-21;", string(data))

	_, err = Open(ctx, "s3://parts/none.stp")
	assert.ErrorIs(test, err, os.ErrNotExist)
	_, err = Open(ctx, "s3://parts")
	assert.Error(test, err)
}
