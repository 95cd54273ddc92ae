package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"2024-03-01":                "Mar 1, 2024",
		"2024-03-01T09:30:00Z":      "Mar 1, 2024",
		"2024-12-31T23:30:00-05:00": "Jan 1, 2025",
		"2023-07-14T10:00:00.123Z":  "Jul 14, 2023",
		"":                          "",
		"   ":                       "",
		"March 1st":                 "",
	}
	for input, want := range tests {
		if got := FormatDate(input); got != want {
			t.Fatalf("FormatDate(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSortedSectionsIsStable(t *testing.T) {
	t.Parallel()

	page := FrameworkPage{Sections: []FrameworkSection{
		{Key: "c", Order: 3},
		{Key: "a1", Order: 1},
		{Key: "none"},
		{Key: "a2", Order: 1},
	}}
	var keys []string
	for _, section := range page.SortedSections() {
		keys = append(keys, section.Key)
	}
	if diff := cmp.Diff([]string{"none", "a1", "a2", "c"}, keys); diff != "" {
		t.Fatalf("section order mismatch (-want +got):\n%s", diff)
	}
	if page.Sections[0].Key != "c" {
		t.Fatal("SortedSections must not reorder the record")
	}
}

func TestPlaybookDownload(t *testing.T) {
	t.Parallel()

	if _, ok := (Playbook{}).Download(); ok {
		t.Fatal("expected no download without a file")
	}
	if _, ok := (Playbook{PDFFile: &FileField{Asset: &FileAsset{}}}).Download(); ok {
		t.Fatal("expected no download without a url")
	}
	asset, ok := (Playbook{PDFFile: &FileField{Asset: &FileAsset{URL: "https://cdn/x.pdf", Size: 2048}}}).Download()
	if !ok || asset.Size != 2048 {
		t.Fatalf("Download() = %+v, %t", asset, ok)
	}
}

func TestHomePageHasCTA(t *testing.T) {
	t.Parallel()

	if (HomePage{CTAText: "Start"}).HasCTA() {
		t.Fatal("expected missing link to hide CTA")
	}
	if !(HomePage{CTAText: "Start", CTALink: "/playbook"}).HasCTA() {
		t.Fatal("expected CTA")
	}
}

func TestSEOFallbacks(t *testing.T) {
	t.Parallel()

	var missing *SEO
	if got := missing.TitleOr("Work"); got != "Work" {
		t.Fatalf("TitleOr() = %q, want %q", got, "Work")
	}
	seo := &SEO{Title: "Case Studies", Description: " "}
	if got := seo.TitleOr("Work"); got != "Case Studies" {
		t.Fatalf("TitleOr() = %q, want %q", got, "Case Studies")
	}
	if got := seo.DescriptionOr("fallback"); got != "fallback" {
		t.Fatalf("DescriptionOr() = %q, want %q", got, "fallback")
	}
}
