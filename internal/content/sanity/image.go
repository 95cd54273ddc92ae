package sanity

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const imageCDNHost = "cdn.sanity.io"

// Reference points at another document or asset.
type Reference struct {
	Ref  string `json:"_ref"`
	Type string `json:"_type,omitempty"`
}

// Image is an image field with its asset reference.
type Image struct {
	Asset *Reference `json:"asset,omitempty"`
	Alt   string     `json:"alt,omitempty"`
}

// AssetRef returns the referenced asset id, or "" when the image is empty.
func (i *Image) AssetRef() string {
	if i == nil || i.Asset == nil {
		return ""
	}
	return strings.TrimSpace(i.Asset.Ref)
}

// ImageURL resolves an image asset reference such as
// "image-Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000-jpg" to its CDN URL. A positive
// width asks the CDN to scale the image down.
func ImageURL(cfg Config, ref string, width int) (string, error) {
	if !cfg.Configured() {
		return "", fmt.Errorf("content source is not configured")
	}
	ref = strings.TrimSpace(ref)
	rest, ok := strings.CutPrefix(ref, "image-")
	if !ok {
		return "", fmt.Errorf("asset ref %q is not an image", ref)
	}
	extIdx := strings.LastIndex(rest, "-")
	if extIdx <= 0 || extIdx == len(rest)-1 {
		return "", fmt.Errorf("asset ref %q has no format", ref)
	}
	format := rest[extIdx+1:]
	rest = rest[:extIdx]
	dimIdx := strings.LastIndex(rest, "-")
	if dimIdx <= 0 {
		return "", fmt.Errorf("asset ref %q has no dimensions", ref)
	}
	id, dims := rest[:dimIdx], rest[dimIdx+1:]
	w, h, ok := strings.Cut(dims, "x")
	if !ok || !isDigits(w) || !isDigits(h) {
		return "", fmt.Errorf("asset ref %q has invalid dimensions %q", ref, dims)
	}

	u := url.URL{
		Scheme: "https",
		Host:   imageCDNHost,
		Path:   fmt.Sprintf("/images/%s/%s/%s-%s.%s", strings.TrimSpace(cfg.ProjectID), strings.TrimSpace(cfg.Dataset), id, dims, format),
	}
	if width > 0 {
		q := url.Values{}
		q.Set("w", strconv.Itoa(width))
		q.Set("auto", "format")
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
