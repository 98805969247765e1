package service

import (
	"github.com/iWEX-Infomatics/iWebsite/internal/core"
)

// WebsiteService serves the read-only content endpoints: settings payload,
// services with features, FAQs, testimonials and the client logo strip.
type WebsiteService struct {
	settings  core.SettingsRepository
	content   core.ContentRepository
	customers core.CustomerRepository
}

func NewWebsiteService(
	settings core.SettingsRepository,
	content core.ContentRepository,
	customers core.CustomerRepository,
) *WebsiteService {
	return &WebsiteService{
		settings:  settings,
		content:   content,
		customers: customers,
	}
}

// Settings returns the nested settings payload. An absent record yields
// the full default tree with the same key structure.
func (s *WebsiteService) Settings() (*core.SettingsPayload, error) {
	settings, found, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	if !found {
		return core.BuildSettingsPayload(nil), nil
	}
	return core.BuildSettingsPayload(settings), nil
}

// Services lists published services ordered by display_order, each with
// its feature rows attached in sort order.
func (s *WebsiteService) Services() ([]*core.Service, error) {
	services, err := s.content.PublishedServices()
	if err != nil {
		return nil, err
	}

	for _, svc := range services {
		features, err := s.content.ServiceFeatures(svc.ID)
		if err != nil {
			return nil, err
		}
		svc.Features = features
	}
	return services, nil
}

// FAQs returns published FAQs (optionally limited to one category) as a
// flat list, grouped by category, and the distinct categories in
// first-seen order. Rows without a category fall under "General".
func (s *WebsiteService) FAQs(category string) (*core.FAQIndex, error) {
	faqs, err := s.content.PublishedFAQs(category)
	if err != nil {
		return nil, err
	}

	grouped := map[string][]*core.FAQ{}
	categories := []string{}
	for _, faq := range faqs {
		cat := faq.Category
		if cat == "" {
			cat = "General"
		}
		if _, ok := grouped[cat]; !ok {
			categories = append(categories, cat)
		}
		grouped[cat] = append(grouped[cat], faq)
	}

	return &core.FAQIndex{
		FAQs:       faqs,
		Grouped:    grouped,
		Categories: categories,
	}, nil
}

// FAQCategories lists the distinct categories of published FAQs
func (s *WebsiteService) FAQCategories() ([]string, error) {
	return s.content.FAQCategories()
}

// Testimonials lists published testimonials ordered by display_order
func (s *WebsiteService) Testimonials() ([]*core.Testimonial, error) {
	return s.content.PublishedTestimonials()
}

// ClientLogos returns up to max_client_logos customers that have an
// image, most recently updated first. The cap is a hard result-size
// limit: imageless rows inside the fetched window never push the count
// above it, they only shrink the result.
func (s *WebsiteService) ClientLogos() ([]*core.ClientLogo, error) {
	settings, found, err := s.settings.Get()
	if err != nil {
		return nil, err
	}

	if found && !settings.ShowClientLogos {
		return []*core.ClientLogo{}, nil
	}

	maxLogos := core.DefaultMaxClientLogos
	if found && settings.MaxClientLogos > 0 {
		maxLogos = settings.MaxClientLogos
	}

	customers, err := s.customers.RecentActive(maxLogos)
	if err != nil {
		return nil, err
	}

	logos := make([]*core.ClientLogo, 0, len(customers))
	for _, customer := range customers {
		if customer.Image == "" {
			continue
		}
		logos = append(logos, &core.ClientLogo{
			ID:           customer.ID,
			CustomerName: customer.CustomerName,
			Logo:         customer.Image,
		})
	}

	if len(logos) > maxLogos {
		logos = logos[:maxLogos]
	}
	return logos, nil
}
