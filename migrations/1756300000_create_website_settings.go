package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/tools/types"
)

func init() {
	m.Register(func(app core.App) error {
		// ----------------------------------------------------
		// WEBSITE SETTINGS COLLECTION (singleton by convention)
		// ----------------------------------------------------
		// The API layer falls back to hardcoded defaults when no
		// record exists, so this migration does NOT seed one.
		settings := core.NewBaseCollection("website_settings")

		settings.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		settings.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		// Public read (branding/SEO is rendered on the public site),
		// writes only through the admin UI.
		settings.ListRule = types.Pointer("")
		settings.ViewRule = types.Pointer("")
		settings.CreateRule = nil
		settings.UpdateRule = nil
		settings.DeleteRule = nil

		// --- branding ---
		settings.Fields.Add(&core.TextField{Name: "company_name"})
		settings.Fields.Add(&core.TextField{Name: "tagline"})
		settings.Fields.Add(&core.FileField{Name: "company_logo", MaxSelect: 1})
		settings.Fields.Add(&core.FileField{Name: "company_logo_dark", MaxSelect: 1})
		settings.Fields.Add(&core.FileField{Name: "favicon", MaxSelect: 1})

		// --- founder ---
		settings.Fields.Add(&core.TextField{Name: "founder_name"})
		settings.Fields.Add(&core.TextField{Name: "founder_title"})
		settings.Fields.Add(&core.FileField{Name: "founder_image", MaxSelect: 1})
		settings.Fields.Add(&core.EditorField{Name: "founder_bio"})
		settings.Fields.Add(&core.TextField{Name: "founder_certifications"})

		// --- chatbot widget ---
		settings.Fields.Add(&core.BoolField{Name: "enable_chatbot"})
		settings.Fields.Add(&core.TextField{Name: "whatsapp_business_number"})
		settings.Fields.Add(&core.TextField{Name: "whatsapp_api_number"})
		settings.Fields.Add(&core.TextField{Name: "telegram_bot_username"})
		settings.Fields.Add(&core.TextField{Name: "telegram_bot_id"})
		settings.Fields.Add(&core.TextField{Name: "chatbot_greeting_message"})

		// --- stats counters ---
		settings.Fields.Add(&core.NumberField{Name: "stat_clients_count", OnlyInt: true})
		settings.Fields.Add(&core.NumberField{Name: "stat_years_experience", OnlyInt: true})
		settings.Fields.Add(&core.NumberField{Name: "stat_industries_served", OnlyInt: true})
		settings.Fields.Add(&core.NumberField{Name: "stat_projects_completed", OnlyInt: true})
		settings.Fields.Add(&core.NumberField{Name: "stat_team_size", OnlyInt: true})

		// --- hero section ---
		settings.Fields.Add(&core.TextField{Name: "hero_title"})
		settings.Fields.Add(&core.TextField{Name: "hero_subtitle"})
		settings.Fields.Add(&core.TextField{Name: "hero_cta_text"})
		settings.Fields.Add(&core.TextField{Name: "hero_cta_link"})
		settings.Fields.Add(&core.TextField{Name: "hero_secondary_cta_text"})
		settings.Fields.Add(&core.TextField{Name: "hero_secondary_cta_link"})
		settings.Fields.Add(&core.FileField{Name: "hero_image", MaxSelect: 1})
		settings.Fields.Add(&core.URLField{Name: "hero_video_url"})

		// --- about section ---
		settings.Fields.Add(&core.TextField{Name: "about_title"})
		settings.Fields.Add(&core.EditorField{Name: "about_description"})
		settings.Fields.Add(&core.FileField{Name: "about_image", MaxSelect: 1})
		settings.Fields.Add(&core.TextField{Name: "about_mission"})
		settings.Fields.Add(&core.TextField{Name: "about_vision"})

		// --- contact info ---
		settings.Fields.Add(&core.EmailField{Name: "contact_email"})
		settings.Fields.Add(&core.TextField{Name: "contact_phone"})
		settings.Fields.Add(&core.TextField{Name: "contact_address"})
		settings.Fields.Add(&core.URLField{Name: "contact_map_url"})

		// --- social links ---
		settings.Fields.Add(&core.URLField{Name: "facebook_url"})
		settings.Fields.Add(&core.URLField{Name: "twitter_url"})
		settings.Fields.Add(&core.URLField{Name: "linkedin_url"})
		settings.Fields.Add(&core.URLField{Name: "instagram_url"})
		settings.Fields.Add(&core.URLField{Name: "youtube_url"})
		settings.Fields.Add(&core.URLField{Name: "github_url"})

		// --- SEO ---
		settings.Fields.Add(&core.TextField{Name: "meta_title"})
		settings.Fields.Add(&core.TextField{Name: "meta_description"})
		settings.Fields.Add(&core.TextField{Name: "meta_keywords"})
		settings.Fields.Add(&core.FileField{Name: "og_image", MaxSelect: 1})
		settings.Fields.Add(&core.TextField{Name: "google_analytics_id"})

		// --- client logos section ---
		settings.Fields.Add(&core.BoolField{Name: "show_client_logos"})
		settings.Fields.Add(&core.NumberField{Name: "max_client_logos", OnlyInt: true})

		return app.Save(settings)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("website_settings")
		if err != nil {
			return err
		}
		return app.Delete(collection)
	})
}
