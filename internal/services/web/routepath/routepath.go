// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root             = "/"
	Health           = "/up"
	HealthPrefix     = "/up/"
	StaticPrefix     = "/static/"
	Playbook         = "/playbook"
	PlaybookPrefix   = "/playbook/"
	Framework        = "/framework"
	FrameworkPrefix  = "/framework/"
	Work             = "/work"
	WorkPrefix       = "/work/"
	CaseStudyPattern = WorkPrefix + "{slug}"
	Talks            = "/talks"
	TalksPrefix      = "/talks/"
	Contact          = "/contact"
	ContactPrefix    = "/contact/"
)

// CaseStudy returns the detail route for a case study slug.
func CaseStudy(slug string) string {
	return WorkPrefix + escapeSegment(slug)
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
