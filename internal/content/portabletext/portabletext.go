// Package portabletext renders rich-text block content to HTML.
package portabletext

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Span is a run of text sharing the same marks.
type Span struct {
	Key   string   `json:"_key,omitempty"`
	Type  string   `json:"_type,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef is an annotation referenced by key from span marks.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// Block is one paragraph, heading, quote or list item.
type Block struct {
	Key      string    `json:"_key,omitempty"`
	Type     string    `json:"_type"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
}

// Blocks is an ordered rich-text document.
type Blocks []Block

var styleTags = map[string]string{
	"normal":     "p",
	"h1":         "h1",
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"h5":         "h5",
	"h6":         "h6",
	"blockquote": "blockquote",
}

var decoratorTags = map[string]string{
	"strong":         "strong",
	"em":             "em",
	"code":           "code",
	"underline":      "u",
	"strike-through": "s",
}

// Empty reports whether the document has nothing renderable.
func (b Blocks) Empty() bool {
	for _, block := range b {
		if block.Type == "block" {
			return false
		}
	}
	return true
}

// PlainText joins the text of every block, one block per line.
func (b Blocks) PlainText() string {
	var lines []string
	for _, block := range b {
		if block.Type != "block" {
			continue
		}
		var line strings.Builder
		for _, span := range block.Children {
			line.WriteString(span.Text)
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// Render returns a component writing the blocks as HTML. Blocks of unknown
// types are skipped. All text is escaped.
func Render(blocks Blocks) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		r := &renderer{w: w}
		r.blocks(blocks)
		return r.err
	})
}

type renderer struct {
	w     io.Writer
	err   error
	lists []string
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *renderer) blocks(blocks Blocks) {
	for _, block := range blocks {
		if block.Type != "block" {
			continue
		}
		if block.ListItem != "" {
			r.listItem(block)
			continue
		}
		r.closeLists(0)
		tag, ok := styleTags[block.Style]
		if !ok {
			tag = "p"
		}
		r.write("<" + tag + ">")
		r.spans(block)
		r.write("</" + tag + ">")
	}
	r.closeLists(0)
}

func (r *renderer) listItem(block Block) {
	tag := "ul"
	if block.ListItem == "number" {
		tag = "ol"
	}
	level := block.Level
	if level < 1 {
		level = 1
	}
	if level > len(r.lists)+1 {
		level = len(r.lists) + 1
	}

	r.closeLists(level)
	if len(r.lists) == level && r.lists[level-1] != tag {
		r.closeLists(level - 1)
	}
	if len(r.lists) == level {
		r.write("</li>")
	} else {
		r.write("<" + tag + ">")
		r.lists = append(r.lists, tag)
	}
	r.write("<li>")
	r.spans(block)
}

// closeLists closes open lists until depth remain.
func (r *renderer) closeLists(depth int) {
	for len(r.lists) > depth {
		top := r.lists[len(r.lists)-1]
		r.lists = r.lists[:len(r.lists)-1]
		r.write("</li></" + top + ">")
	}
}

func (r *renderer) spans(block Block) {
	defs := make(map[string]MarkDef, len(block.MarkDefs))
	for _, def := range block.MarkDefs {
		defs[def.Key] = def
	}
	for _, span := range block.Children {
		var closers []string
		for _, mark := range span.Marks {
			if tag, ok := decoratorTags[mark]; ok {
				r.write("<" + tag + ">")
				closers = append(closers, "</"+tag+">")
				continue
			}
			def, ok := defs[mark]
			if !ok || def.Type != "link" || strings.TrimSpace(def.Href) == "" {
				continue
			}
			r.write(linkOpen(def.Href))
			closers = append(closers, "</a>")
		}
		r.text(span.Text)
		for i := len(closers) - 1; i >= 0; i-- {
			r.write(closers[i])
		}
	}
}

func (r *renderer) text(value string) {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		if i > 0 {
			r.write("<br>")
		}
		r.write(templ.EscapeString(line))
	}
}

func linkOpen(href string) string {
	href = strings.TrimSpace(href)
	safe := string(templ.URL(href))
	open := `<a href="` + templ.EscapeString(safe) + `"`
	if strings.HasPrefix(safe, "http://") || strings.HasPrefix(safe, "https://") {
		open += ` target="_blank" rel="noopener noreferrer"`
	}
	return open + ">"
}
