package handlers

import (
	"net/http"

	"github.com/iWEX-Infomatics/iWebsite/internal/service"

	"github.com/pocketbase/pocketbase/core"
)

// WebsiteHandler serves the public read-only content endpoints.
// Collaborator failures are logged with context and reported to the
// caller as a fixed generic message; internals never leak.
type WebsiteHandler struct {
	App     core.App
	Website *service.WebsiteService
}

// Settings handles GET /api/website/settings
func (h *WebsiteHandler) Settings(e *core.RequestEvent) error {
	payload, err := h.Website.Settings()
	if err != nil {
		h.App.Logger().Error("error fetching website settings", "error", err)
		return e.JSON(http.StatusOK, failure("Error fetching website settings"))
	}
	return e.JSON(http.StatusOK, success(payload))
}

// Services handles GET /api/website/services
func (h *WebsiteHandler) Services(e *core.RequestEvent) error {
	services, err := h.Website.Services()
	if err != nil {
		h.App.Logger().Error("error fetching services", "error", err)
		return e.JSON(http.StatusOK, failure("Error fetching services"))
	}
	return e.JSON(http.StatusOK, success(services))
}

// FAQs handles GET /api/website/faqs?category=
func (h *WebsiteHandler) FAQs(e *core.RequestEvent) error {
	category := e.Request.URL.Query().Get("category")

	index, err := h.Website.FAQs(category)
	if err != nil {
		h.App.Logger().Error("error fetching FAQs", "category", category, "error", err)
		return e.JSON(http.StatusOK, failure("Error fetching FAQs"))
	}
	return e.JSON(http.StatusOK, success(index))
}

// FAQCategories handles GET /api/website/faq-categories
func (h *WebsiteHandler) FAQCategories(e *core.RequestEvent) error {
	categories, err := h.Website.FAQCategories()
	if err != nil {
		h.App.Logger().Error("error fetching FAQ categories", "error", err)
		return e.JSON(http.StatusOK, failure("Error fetching categories"))
	}
	return e.JSON(http.StatusOK, success(categories))
}

// Testimonials handles GET /api/website/testimonials
func (h *WebsiteHandler) Testimonials(e *core.RequestEvent) error {
	testimonials, err := h.Website.Testimonials()
	if err != nil {
		h.App.Logger().Error("error fetching testimonials", "error", err)
		return e.JSON(http.StatusOK, failure("Error fetching testimonials"))
	}
	return e.JSON(http.StatusOK, success(testimonials))
}

// ClientLogos handles GET /api/website/client-logos
func (h *WebsiteHandler) ClientLogos(e *core.RequestEvent) error {
	logos, err := h.Website.ClientLogos()
	if err != nil {
		h.App.Logger().Error("error fetching client logos", "error", err)
		return e.JSON(http.StatusOK, failure("Error fetching client logos"))
	}
	return e.JSON(http.StatusOK, success(logos))
}
