package repository

import (
	domain "github.com/iWEX-Infomatics/iWebsite/internal/core"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBContentRepo struct {
	app pbCore.App
}

func NewContentRepo(app pbCore.App) domain.ContentRepository {
	return &PBContentRepo{app: app}
}

func (r *PBContentRepo) PublishedServices() ([]*domain.Service, error) {
	records, err := r.app.FindRecordsByFilter(
		"services",
		"is_published = true",
		"display_order",
		0,
		0,
	)
	if err != nil {
		return nil, err
	}

	services := make([]*domain.Service, 0, len(records))
	for _, rec := range records {
		services = append(services, &domain.Service{
			ID:           rec.Id,
			ServiceName:  rec.GetString("service_name"),
			Icon:         rec.GetString("icon"),
			IconClass:    rec.GetString("icon_class"),
			ShortDesc:    rec.GetString("short_description"),
			FullDesc:     rec.GetString("full_description"),
			Image:        rec.GetString("service_image"),
			ImageAlt:     rec.GetString("service_image_alt"),
			DisplayOrder: rec.GetInt("display_order"),
		})
	}
	return services, nil
}

func (r *PBContentRepo) ServiceFeatures(serviceID string) ([]*domain.ServiceFeature, error) {
	records, err := r.app.FindRecordsByFilter(
		"service_features",
		"service = {:service}",
		"sort_order",
		0,
		0,
		dbx.Params{"service": serviceID},
	)
	if err != nil {
		return nil, err
	}

	features := make([]*domain.ServiceFeature, 0, len(records))
	for _, rec := range records {
		features = append(features, &domain.ServiceFeature{
			Title:       rec.GetString("feature_title"),
			Description: rec.GetString("feature_description"),
		})
	}
	return features, nil
}

func (r *PBContentRepo) PublishedFAQs(category string) ([]*domain.FAQ, error) {
	filter := "is_published = true"
	params := dbx.Params{}
	if category != "" {
		filter += " && category = {:category}"
		params["category"] = category
	}

	records, err := r.app.FindRecordsByFilter(
		"faqs",
		filter,
		"display_order",
		0,
		0,
		params,
	)
	if err != nil {
		return nil, err
	}

	faqs := make([]*domain.FAQ, 0, len(records))
	for _, rec := range records {
		faqs = append(faqs, &domain.FAQ{
			ID:           rec.Id,
			Category:     rec.GetString("category"),
			Question:     rec.GetString("question"),
			Answer:       rec.GetString("answer"),
			DisplayOrder: rec.GetInt("display_order"),
		})
	}
	return faqs, nil
}

// FAQCategories returns the distinct categories of published FAQs,
// alphabetically, via a raw query (no record hydration needed).
func (r *PBContentRepo) FAQCategories() ([]string, error) {
	var categories []string
	err := r.app.DB().
		NewQuery("SELECT DISTINCT category FROM faqs WHERE is_published = 1 ORDER BY category").
		Column(&categories)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PBContentRepo) PublishedTestimonials() ([]*domain.Testimonial, error) {
	records, err := r.app.FindRecordsByFilter(
		"testimonials",
		"is_published = true",
		"display_order",
		0,
		0,
	)
	if err != nil {
		return nil, err
	}

	testimonials := make([]*domain.Testimonial, 0, len(records))
	for _, rec := range records {
		testimonials = append(testimonials, &domain.Testimonial{
			ID:           rec.Id,
			ClientName:   rec.GetString("client_name"),
			Company:      rec.GetString("company"),
			Designation:  rec.GetString("designation"),
			Text:         rec.GetString("testimonial_text"),
			Rating:       rec.GetInt("rating"),
			Image:        rec.GetString("client_image"),
			ImageAlt:     rec.GetString("image_alt"),
			DisplayOrder: rec.GetInt("display_order"),
		})
	}
	return testimonials, nil
}
