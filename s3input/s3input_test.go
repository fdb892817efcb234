package s3input

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	uxsettings "github.com/goliatone/go-ux-settings"
)

type fakeObjects struct {
	objects map[string]string
	calls   []string
}

func (f *fakeObjects) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	id := aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key)
	f.calls = append(f.calls, id)

	body, ok := f.objects[id]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestParseURL(t *testing.T) {
	bucket, key, err := ParseURL("s3://ui-config/tenants/acme/settings.yaml")
	if err != nil {
		t.Fatalf("ParseURL: %v", err)
	}
	if bucket != "ui-config" || key != "tenants/acme/settings.yaml" {
		t.Fatalf("ParseURL = %q %q", bucket, key)
	}

	for _, location := range []string{"https://example.com/a.yaml", "s3://bucket", "s3:///key.yaml"} {
		if _, _, err := ParseURL(location); !errors.Is(err, ErrInvalidURL) {
			t.Fatalf("ParseURL(%q) error = %v", location, err)
		}
	}
}

func TestIsURL(t *testing.T) {
	if !IsURL("S3://bucket/key.json") || IsURL("settings.yaml") {
		t.Fatal("IsURL mismatch")
	}
}

func TestLoaderLoad(t *testing.T) {
	objects := &fakeObjects{objects: map[string]string{
		"ui-config/settings.yaml": "formats:\n  dates:\n    locales: fr\n",
		"ui-config/settings.txt":  "locales = fr",
	}}
	loader := New(objects)

	in, err := loader.Load(context.Background(), "s3://ui-config/settings.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if in.Formats.Dates == nil || in.Formats.Dates.Locales != "fr" {
		t.Fatalf("Load = %+v", in)
	}
	if len(objects.calls) != 1 || objects.calls[0] != "ui-config/settings.yaml" {
		t.Fatalf("calls = %v", objects.calls)
	}

	if _, err := loader.Load(context.Background(), "s3://ui-config/settings.txt"); !errors.Is(err, uxsettings.ErrUnsupportedFormat) {
		t.Fatalf("txt error = %v", err)
	}
	if _, err := loader.Load(context.Background(), "s3://ui-config/missing.yaml"); err == nil {
		t.Fatal("expected error for missing object")
	}
}
