package aws

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/youruser/newscard/internal/core"
)

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	f.types[*in.Bucket+"/"+*in.Key] = *in.ContentType
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func TestSaveAndGet(t *testing.T) {
	fake := newFakeS3()
	store := NewStoreWithClient(fake, "cards")
	ctx := context.Background()

	id, err := store.Save(ctx, []byte("png"))
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	key := "cards/outputs/" + id + ".png"
	if _, ok := fake.objects[key]; !ok {
		t.Fatalf("object %s not written", key)
	}
	if fake.types[key] != "image/png" {
		t.Errorf("content type = %q, want image/png", fake.types[key])
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != "png" {
		t.Errorf("Get() = %q", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	store := NewStoreWithClient(newFakeS3(), "cards")

	for _, id := range []string{"01ARZ3NDEKTSV4RRFFQ69G5FAV", "not-a-ulid"} {
		if _, err := store.Get(context.Background(), id); !errors.Is(err, core.ErrOutputNotFound) {
			t.Errorf("Get(%q) error = %v, want ErrOutputNotFound", id, err)
		}
	}
}
