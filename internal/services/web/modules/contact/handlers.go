package contact

import (
	"errors"
	"log"
	"net/http"

	apperrors "github.com/louisbranch/aicopilot/internal/services/web/platform/errors"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/pagerender"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/publichandler"
	webtemplates "github.com/louisbranch/aicopilot/internal/services/web/templates"
)

const (
	pageTitle       = "Contact"
	pageDescription = "Get in touch about bringing AI into your team."
	maxFormBytes    = 64 << 10
	failureMessage  = "We couldn't send your message right now. Please try again later."
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(svc service, base publichandler.Base) handlers {
	return handlers{Base: base, service: svc}
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.handleSubmit(w, r)
		return
	}
	h.handleForm(w, r)
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	h.writeForm(w, r, http.StatusOK, webtemplates.ContactForm{})
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "Invalid form submission."))
		return
	}
	sub := Submission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Company: r.PostFormValue("company"),
		Message: r.PostFormValue("message"),
	}
	form := webtemplates.ContactForm{
		Name:    sub.Name,
		Email:   sub.Email,
		Company: sub.Company,
		Message: sub.Message,
	}

	saved, errs := h.service.submit(r.Context(), sub)
	if len(errs) == 0 {
		log.Printf("contact message stored id=%s", saved.ID)
		h.writeForm(w, r, http.StatusOK, webtemplates.ContactForm{Sent: true})
		return
	}

	form.Errors = make(map[string]string, len(errs))
	for _, err := range errs {
		if key := apperrors.FieldKey(err); key != "" {
			form.Errors[key] = err.Error()
		}
	}
	if len(form.Errors) > 0 {
		h.writeForm(w, r, http.StatusBadRequest, form)
		return
	}

	err := errors.Join(errs...)
	log.Printf("contact submission failed err=%v", err)
	form.Failure = failureMessage
	status := apperrors.HTTPStatus(err)
	if status < http.StatusInternalServerError {
		status = http.StatusInternalServerError
	}
	h.writeForm(w, r, status, form)
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, status int, form webtemplates.ContactForm) {
	h.WritePage(w, r, pagerender.Page{
		Title:       pageTitle,
		Description: pageDescription,
		StatusCode:  status,
		Body:        webtemplates.ContactPage(form),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
