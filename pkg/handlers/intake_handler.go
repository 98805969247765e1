package handlers

import (
	"errors"
	"net/http"

	domain "github.com/iWEX-Infomatics/iWebsite/internal/core"
	"github.com/iWEX-Infomatics/iWebsite/internal/service"

	"github.com/pocketbase/pocketbase/core"
)

// IntakeHandler serves the two write endpoints: contact form and
// newsletter signup.
type IntakeHandler struct {
	App        core.App
	Contact    *service.ContactService
	Newsletter *service.NewsletterService
}

// SubmitContact handles POST /api/website/contact.
// Accepts a JSON body or form-encoded fields; BindBody picks the decoder
// from the content type. Missing fields fall back to query/form values.
func (h *IntakeHandler) SubmitContact(e *core.RequestEvent) error {
	var req domain.ContactRequest
	if err := e.BindBody(&req); err != nil {
		h.App.Logger().Error("error reading contact form body", "error", err)
		return e.JSON(http.StatusOK, failure("An error occurred while submitting the form. Please try again later."))
	}
	if req.FullName == "" && req.Email == "" {
		fillFromValues(&req, e.Request)
	}

	leadID, err := h.Contact.Submit(&req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return e.JSON(http.StatusOK, failure(verr.Reason))
		}
		h.App.Logger().Error("error submitting contact form", "error", err)
		return e.JSON(http.StatusOK, failure("An error occurred while submitting the form. Please try again later."))
	}

	return e.JSON(http.StatusOK, Envelope{
		"success": true,
		"message": "Thank you for contacting us! We will get back to you soon.",
		"lead_id": leadID,
	})
}

// SubscribeNewsletter handles GET/POST /api/website/newsletter/subscribe
func (h *IntakeHandler) SubscribeNewsletter(e *core.RequestEvent) error {
	var req struct {
		Email string `json:"email" form:"email"`
	}
	if e.Request.Method == http.MethodPost {
		_ = e.BindBody(&req)
	}
	if req.Email == "" {
		req.Email = e.Request.URL.Query().Get("email")
	}

	if err := h.Newsletter.Subscribe(req.Email); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return e.JSON(http.StatusOK, failure(verr.Reason))
		}
		h.App.Logger().Error("error subscribing to newsletter", "error", err)
		return e.JSON(http.StatusOK, failure("An error occurred. Please try again later."))
	}

	return e.JSON(http.StatusOK, Envelope{
		"success": true,
		"message": "Successfully subscribed to newsletter!",
	})
}

// fillFromValues reads the classic form/query fallback used by clients
// that do not send a decodable body.
func fillFromValues(req *domain.ContactRequest, r *http.Request) {
	req.FullName = r.FormValue("full_name")
	req.Email = r.FormValue("email")
	req.Phone = r.FormValue("phone")
	req.Subject = r.FormValue("subject")
	req.Message = r.FormValue("message")
}
