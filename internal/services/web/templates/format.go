package templates

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/louisbranch/aicopilot/internal/content"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TalkTypeLabel renders a talk type value such as "conference" for display.
// A Caser holds state, so each call builds its own.
func TalkTypeLabel(value string) string {
	return cases.Title(language.English).String(strings.TrimSpace(value))
}

// FileSizeLabel renders a byte count such as "1.2 MB", or "" when unknown.
func FileSizeLabel(size int64) string {
	if size <= 0 {
		return ""
	}
	return humanize.Bytes(uint64(size))
}

// metaLine writes non-empty parts separated by bullets. The date part, when
// present, is written as a <time> element.
func metaLine(h *htmlWriter, class string, date string, parts ...string) {
	h.open("div", "class", class)
	first := true
	sep := func() {
		if !first {
			h.elem("span", "•", "aria-hidden", "true")
		}
		first = false
	}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sep()
		h.elem("span", part)
	}
	if formatted := content.FormatDate(date); formatted != "" {
		sep()
		h.elem("time", formatted, "datetime", strings.TrimSpace(date))
	}
	h.close("div")
}

func tagList(h *htmlWriter, tags []string) {
	var kept []string
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			kept = append(kept, tag)
		}
	}
	if len(kept) == 0 {
		return
	}
	h.open("ul", "class", "tags")
	for _, tag := range kept {
		h.elem("li", tag, "class", "tag")
	}
	h.close("ul")
}
