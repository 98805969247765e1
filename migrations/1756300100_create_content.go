package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/tools/types"
)

// Public website content: services (with feature children), FAQs and
// testimonials. All three share the is_published/display_order contract.
func init() {
	m.Register(func(app core.App) error {
		// ----------------------------------------------------
		// SERVICES
		// ----------------------------------------------------
		services := core.NewBaseCollection("services")

		services.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		services.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		services.ListRule = types.Pointer("is_published = true")
		services.ViewRule = types.Pointer("is_published = true")

		services.Fields.Add(&core.TextField{Name: "service_name", Required: true})
		services.Fields.Add(&core.TextField{Name: "icon"})
		services.Fields.Add(&core.TextField{Name: "icon_class"})
		services.Fields.Add(&core.TextField{Name: "short_description"})
		services.Fields.Add(&core.EditorField{Name: "full_description"})
		services.Fields.Add(&core.FileField{Name: "service_image", MaxSelect: 1})
		services.Fields.Add(&core.TextField{Name: "service_image_alt"})
		services.Fields.Add(&core.BoolField{Name: "is_published"})
		services.Fields.Add(&core.NumberField{Name: "display_order", OnlyInt: true})

		if err := app.Save(services); err != nil {
			return err
		}

		// ----------------------------------------------------
		// SERVICE FEATURES (children of a service)
		// ----------------------------------------------------
		features := core.NewBaseCollection("service_features")

		features.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		features.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		features.ListRule = types.Pointer("")
		features.ViewRule = types.Pointer("")

		features.Fields.Add(&core.RelationField{
			Name:          "service",
			CollectionId:  services.Id,
			MaxSelect:     1,
			Required:      true,
			CascadeDelete: true,
		})
		features.Fields.Add(&core.TextField{Name: "feature_title", Required: true})
		features.Fields.Add(&core.TextField{Name: "feature_description"})
		features.Fields.Add(&core.NumberField{Name: "sort_order", OnlyInt: true})

		if err := app.Save(features); err != nil {
			return err
		}

		// ----------------------------------------------------
		// FAQS
		// ----------------------------------------------------
		faqs := core.NewBaseCollection("faqs")

		faqs.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		faqs.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		faqs.ListRule = types.Pointer("is_published = true")
		faqs.ViewRule = types.Pointer("is_published = true")

		faqs.Fields.Add(&core.TextField{Name: "category"})
		faqs.Fields.Add(&core.TextField{Name: "question", Required: true})
		faqs.Fields.Add(&core.EditorField{Name: "answer"})
		faqs.Fields.Add(&core.BoolField{Name: "is_published"})
		faqs.Fields.Add(&core.NumberField{Name: "display_order", OnlyInt: true})

		if err := app.Save(faqs); err != nil {
			return err
		}

		// ----------------------------------------------------
		// TESTIMONIALS
		// ----------------------------------------------------
		testimonials := core.NewBaseCollection("testimonials")

		testimonials.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		testimonials.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		testimonials.ListRule = types.Pointer("is_published = true")
		testimonials.ViewRule = types.Pointer("is_published = true")

		testimonials.Fields.Add(&core.TextField{Name: "client_name", Required: true})
		testimonials.Fields.Add(&core.TextField{Name: "company"})
		testimonials.Fields.Add(&core.TextField{Name: "designation"})
		testimonials.Fields.Add(&core.EditorField{Name: "testimonial_text"})
		testimonials.Fields.Add(&core.NumberField{Name: "rating", OnlyInt: true})
		testimonials.Fields.Add(&core.FileField{Name: "client_image", MaxSelect: 1})
		testimonials.Fields.Add(&core.TextField{Name: "image_alt"})
		testimonials.Fields.Add(&core.BoolField{Name: "is_published"})
		testimonials.Fields.Add(&core.NumberField{Name: "display_order", OnlyInt: true})

		return app.Save(testimonials)
	}, func(app core.App) error {
		for _, name := range []string{"service_features", "services", "faqs", "testimonials"} {
			collection, err := app.FindCollectionByNameOrId(name)
			if err != nil {
				return err
			}
			if err := app.Delete(collection); err != nil {
				return err
			}
		}
		return nil
	})
}
