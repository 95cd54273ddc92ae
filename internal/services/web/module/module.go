// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"
	"time"

	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/content/sanity"
	"github.com/louisbranch/aicopilot/internal/services/web/storage"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Dependencies carries the shared services page modules read from.
type Dependencies struct {
	// Content executes page queries. A nil executor renders every page in its
	// not-configured state.
	Content *content.Executor
	// Images resolves image asset references into CDN URLs.
	Images sanity.Config
	// Contact persists contact form submissions.
	Contact storage.ContactStore
	// Now is the wall clock for footers and submissions.
	Now func() time.Time
}

// Clock returns the current time.
func (d Dependencies) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// ImageURL resolves img scaled to width, or "" when it cannot be resolved.
func (d Dependencies) ImageURL(img *sanity.Image, width int) string {
	ref := img.AssetRef()
	if ref == "" {
		return ""
	}
	src, err := sanity.ImageURL(d.Images, ref, width)
	if err != nil {
		return ""
	}
	return src
}
