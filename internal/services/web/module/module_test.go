package module

import (
	"testing"
	"time"

	"github.com/louisbranch/aicopilot/internal/content/sanity"
)

func TestDependenciesClock(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	deps := Dependencies{Now: func() time.Time { return fixed }}
	if got := deps.Clock(); !got.Equal(fixed) {
		t.Fatalf("Clock() = %v, want %v", got, fixed)
	}
	if got := (Dependencies{}).Clock(); got.IsZero() {
		t.Fatalf("Clock() without Now = zero time")
	}
}

func TestDependenciesImageURL(t *testing.T) {
	t.Parallel()

	img := &sanity.Image{Asset: &sanity.Reference{Ref: "image-abc123-640x480-jpg"}}
	deps := Dependencies{Images: sanity.Config{ProjectID: "proj42", Dataset: "production"}}
	want := "https://cdn.sanity.io/images/proj42/production/abc123-640x480.jpg?auto=format&w=320"
	if got := deps.ImageURL(img, 320); got != want {
		t.Fatalf("ImageURL() = %q, want %q", got, want)
	}
	if got := (Dependencies{}).ImageURL(img, 320); got != "" {
		t.Fatalf("ImageURL() without config = %q, want empty", got)
	}
	if got := deps.ImageURL(nil, 320); got != "" {
		t.Fatalf("ImageURL(nil) = %q, want empty", got)
	}
}
