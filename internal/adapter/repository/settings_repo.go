package repository

import (
	domain "github.com/iWEX-Infomatics/iWebsite/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBSettingsRepo struct {
	app pbCore.App
}

func NewSettingsRepo(app pbCore.App) domain.SettingsRepository {
	return &PBSettingsRepo{app: app}
}

// Get fetches the single website_settings record. Missing record is not
// an error: the payload builder substitutes the documented defaults.
func (r *PBSettingsRepo) Get() (*domain.WebsiteSettings, bool, error) {
	records, err := r.app.FindRecordsByFilter(
		"website_settings",
		"1=1",
		"-created",
		1,
		0,
	)
	if err != nil {
		return nil, false, err
	}
	if len(records) == 0 {
		return nil, false, nil
	}

	rec := records[0]

	return &domain.WebsiteSettings{
		ID: rec.Id,

		CompanyName: rec.GetString("company_name"),
		Tagline:     rec.GetString("tagline"),
		Logo:        rec.GetString("company_logo"),
		LogoDark:    rec.GetString("company_logo_dark"),
		Favicon:     rec.GetString("favicon"),

		FounderName:           rec.GetString("founder_name"),
		FounderTitle:          rec.GetString("founder_title"),
		FounderImage:          rec.GetString("founder_image"),
		FounderBio:            rec.GetString("founder_bio"),
		FounderCertifications: rec.GetString("founder_certifications"),

		EnableChatbot:    rec.GetBool("enable_chatbot"),
		WhatsappBusiness: rec.GetString("whatsapp_business_number"),
		WhatsappAPI:      rec.GetString("whatsapp_api_number"),
		TelegramUsername: rec.GetString("telegram_bot_username"),
		TelegramID:       rec.GetString("telegram_bot_id"),
		ChatbotGreeting:  rec.GetString("chatbot_greeting_message"),

		StatClients:    rec.GetInt("stat_clients_count"),
		StatYears:      rec.GetInt("stat_years_experience"),
		StatIndustries: rec.GetInt("stat_industries_served"),
		StatProjects:   rec.GetInt("stat_projects_completed"),
		StatTeam:       rec.GetInt("stat_team_size"),

		HeroTitle:            rec.GetString("hero_title"),
		HeroSubtitle:         rec.GetString("hero_subtitle"),
		HeroCtaText:          rec.GetString("hero_cta_text"),
		HeroCtaLink:          rec.GetString("hero_cta_link"),
		HeroSecondaryCtaText: rec.GetString("hero_secondary_cta_text"),
		HeroSecondaryCtaLink: rec.GetString("hero_secondary_cta_link"),
		HeroImage:            rec.GetString("hero_image"),
		HeroVideoURL:         rec.GetString("hero_video_url"),

		AboutTitle:       rec.GetString("about_title"),
		AboutDescription: rec.GetString("about_description"),
		AboutImage:       rec.GetString("about_image"),
		AboutMission:     rec.GetString("about_mission"),
		AboutVision:      rec.GetString("about_vision"),

		ContactEmail:   rec.GetString("contact_email"),
		ContactPhone:   rec.GetString("contact_phone"),
		ContactAddress: rec.GetString("contact_address"),
		ContactMapURL:  rec.GetString("contact_map_url"),

		FacebookURL:  rec.GetString("facebook_url"),
		TwitterURL:   rec.GetString("twitter_url"),
		LinkedinURL:  rec.GetString("linkedin_url"),
		InstagramURL: rec.GetString("instagram_url"),
		YoutubeURL:   rec.GetString("youtube_url"),
		GithubURL:    rec.GetString("github_url"),

		MetaTitle:         rec.GetString("meta_title"),
		MetaDescription:   rec.GetString("meta_description"),
		MetaKeywords:      rec.GetString("meta_keywords"),
		OgImage:           rec.GetString("og_image"),
		GoogleAnalyticsID: rec.GetString("google_analytics_id"),

		ShowClientLogos: rec.GetBool("show_client_logos"),
		MaxClientLogos:  rec.GetInt("max_client_logos"),
	}, true, nil
}
