package content

import (
	"cmp"
	"slices"
	"strings"

	"github.com/louisbranch/aicopilot/internal/content/portabletext"
	"github.com/louisbranch/aicopilot/internal/content/sanity"
)

// SEO carries per-page metadata overrides.
type SEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// TitleOr returns the SEO title, or fallback when none is set.
func (s *SEO) TitleOr(fallback string) string {
	if s == nil || strings.TrimSpace(s.Title) == "" {
		return fallback
	}
	return s.Title
}

// DescriptionOr returns the SEO description, or fallback when none is set.
func (s *SEO) DescriptionOr(fallback string) string {
	if s == nil || strings.TrimSpace(s.Description) == "" {
		return fallback
	}
	return s.Description
}

// Slug is a URL-safe document identifier.
type Slug struct {
	Current string `json:"current"`
}

// HomePage is the hero content for /.
type HomePage struct {
	ID           string      `json:"_id"`
	Headline     string      `json:"headline"`
	Subheadline  string      `json:"subheadline,omitempty"`
	CTAText      string      `json:"ctaText,omitempty"`
	CTALink      string      `json:"ctaLink,omitempty"`
	FeaturedWork []CaseStudy `json:"featuredWork,omitempty"`
	SEO          *SEO        `json:"seo,omitempty"`
}

// HasCTA reports whether both the button text and link are set.
func (h HomePage) HasCTA() bool {
	return strings.TrimSpace(h.CTAText) != "" && strings.TrimSpace(h.CTALink) != ""
}

// FileAsset is an uploaded file resolved through its asset reference.
type FileAsset struct {
	ID               string `json:"_id,omitempty"`
	URL              string `json:"url"`
	OriginalFilename string `json:"originalFilename,omitempty"`
	Size             int64  `json:"size,omitempty"`
}

// FileField wraps a resolved file asset.
type FileField struct {
	Asset *FileAsset `json:"asset,omitempty"`
}

// Playbook is the downloadable playbook page.
type Playbook struct {
	ID          string              `json:"_id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Content     portabletext.Blocks `json:"content,omitempty"`
	PDFFile     *FileField          `json:"pdfFile,omitempty"`
	SEO         *SEO                `json:"seo,omitempty"`
}

// Download returns the PDF asset when it has a URL.
func (p Playbook) Download() (FileAsset, bool) {
	if p.PDFFile == nil || p.PDFFile.Asset == nil || strings.TrimSpace(p.PDFFile.Asset.URL) == "" {
		return FileAsset{}, false
	}
	return *p.PDFFile.Asset, true
}

// FrameworkSection is one ordered part of the framework page.
type FrameworkSection struct {
	Key     string              `json:"_key,omitempty"`
	Heading string              `json:"heading,omitempty"`
	Content portabletext.Blocks `json:"content,omitempty"`
	Order   float64             `json:"order,omitempty"`
}

// FrameworkPage is the framework overview.
type FrameworkPage struct {
	ID          string             `json:"_id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Sections    []FrameworkSection `json:"sections,omitempty"`
	SEO         *SEO               `json:"seo,omitempty"`
}

// SortedSections returns the sections by ascending order, keeping the
// authored order for ties.
func (f FrameworkPage) SortedSections() []FrameworkSection {
	sections := slices.Clone(f.Sections)
	slices.SortStableFunc(sections, func(a, b FrameworkSection) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return sections
}

// Stat is one label/value figure in a stats section.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Case study section types.
const (
	SectionText  = "text"
	SectionImage = "image"
	SectionStats = "stats"
	SectionQuote = "quote"
)

// CaseStudySection is one block of a case study body.
type CaseStudySection struct {
	Key         string              `json:"_key,omitempty"`
	SectionType string              `json:"sectionType,omitempty"`
	Heading     string              `json:"heading,omitempty"`
	Content     portabletext.Blocks `json:"content,omitempty"`
	Image       *sanity.Image       `json:"image,omitempty"`
	Stats       []Stat              `json:"stats,omitempty"`
}

// CaseStudy is one piece of published work.
type CaseStudy struct {
	ID            string             `json:"_id"`
	Title         string             `json:"title"`
	Slug          Slug               `json:"slug"`
	Excerpt       string             `json:"excerpt,omitempty"`
	Client        string             `json:"client,omitempty"`
	Industry      string             `json:"industry,omitempty"`
	PublishedAt   string             `json:"publishedAt,omitempty"`
	FeaturedImage *sanity.Image      `json:"featuredImage,omitempty"`
	Tags          []string           `json:"tags,omitempty"`
	Sections      []CaseStudySection `json:"sections,omitempty"`
	SEO           *SEO               `json:"seo,omitempty"`
}

// Talk statuses.
const (
	TalkUpcoming  = "upcoming"
	TalkPast      = "past"
	TalkCancelled = "cancelled"
)

// Talk is a conference talk, workshop or similar appearance.
type Talk struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	Slug         Slug   `json:"slug"`
	Description  string `json:"description,omitempty"`
	Date         string `json:"date,omitempty"`
	Type         string `json:"type,omitempty"`
	Status       string `json:"status,omitempty"`
	Venue        string `json:"venue,omitempty"`
	Location     string `json:"location,omitempty"`
	RecordingURL string `json:"recordingUrl,omitempty"`
	SlidesURL    string `json:"slidesUrl,omitempty"`
}

// NavItem is a studio-managed navigation entry.
type NavItem struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// SiteSettings holds site-wide studio settings.
type SiteSettings struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	Navigation  []NavItem `json:"navigation,omitempty"`
	Footer      string    `json:"footer,omitempty"`
}
