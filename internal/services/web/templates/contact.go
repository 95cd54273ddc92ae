package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

// ContactForm holds submitted values and per-field errors.
type ContactForm struct {
	Name    string
	Email   string
	Company string
	Message string
	Errors  map[string]string
	Sent    bool
	Failure string
}

// ContactPage renders the contact form, or a thank-you notice once sent.
func ContactPage(form ContactForm) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "container narrow")
		h.elem("h1", "Get in Touch")
		h.elem("p", "Tell us about your team and what you want AI to help with.", "class", "lead")
		if form.Sent {
			h.open("div", "class", "notice notice-success", "role", "status")
			h.elem("p", "Thanks for reaching out. We'll get back to you soon.")
			h.close("div")
			h.close("section")
			return
		}
		if form.Failure != "" {
			h.open("div", "class", "notice notice-error", "role", "alert")
			h.elem("p", form.Failure)
			h.close("div")
		}
		h.open("form", "method", "post", "action", routepath.Contact, "class", "contact-form", "novalidate", "novalidate")
		contactField(h, form, "name", "Name", "text", form.Name, true)
		contactField(h, form, "email", "Email", "email", form.Email, true)
		contactField(h, form, "company", "Company", "text", form.Company, false)
		contactField(h, form, "message", "Message", "textarea", form.Message, true)
		h.elem("button", "Send Message", "type", "submit", "class", "button")
		h.close("form")
		h.close("section")
	})
}

func contactField(h *htmlWriter, form ContactForm, name, label, kind, value string, required bool) {
	id := "contact-" + name
	errText := form.Errors[name]
	invalid := ""
	describedBy := ""
	if errText != "" {
		invalid = "true"
		describedBy = id + "-error"
	}
	req := ""
	if required {
		req = "required"
	}
	h.open("div", "class", "field")
	h.elem("label", label, "for", id)
	if kind == "textarea" {
		h.open("textarea", "id", id, "name", name, "rows", "6", "required", req, "aria-invalid", invalid, "aria-describedby", describedBy)
		h.text(value)
		h.close("textarea")
	} else {
		h.open("input", "id", id, "name", name, "type", kind, "value", value, "required", req, "aria-invalid", invalid, "aria-describedby", describedBy)
	}
	if errText != "" {
		h.elem("p", errText, "id", describedBy, "class", "field-error")
	}
	h.close("div")
}
