package core

// WebsiteSettings mirrors the website_settings singleton record. A nil
// value (no record yet) is a valid state; the payload builder falls back
// to the documented defaults field by field, so an absent record and a
// record with every field empty produce the same payload.
type WebsiteSettings struct {
	ID string

	// branding
	CompanyName string
	Tagline     string
	Logo        string
	LogoDark    string
	Favicon     string

	// founder
	FounderName           string
	FounderTitle          string
	FounderImage          string
	FounderBio            string
	FounderCertifications string

	// chatbot widget
	EnableChatbot    bool
	WhatsappBusiness string
	WhatsappAPI      string
	TelegramUsername string
	TelegramID       string
	ChatbotGreeting  string

	// stats counters
	StatClients    int
	StatYears      int
	StatIndustries int
	StatProjects   int
	StatTeam       int

	// hero
	HeroTitle            string
	HeroSubtitle         string
	HeroCtaText          string
	HeroCtaLink          string
	HeroSecondaryCtaText string
	HeroSecondaryCtaLink string
	HeroImage            string
	HeroVideoURL         string

	// about
	AboutTitle       string
	AboutDescription string
	AboutImage       string
	AboutMission     string
	AboutVision      string

	// contact
	ContactEmail   string
	ContactPhone   string
	ContactAddress string
	ContactMapURL  string

	// social
	FacebookURL  string
	TwitterURL   string
	LinkedinURL  string
	InstagramURL string
	YoutubeURL   string
	GithubURL    string

	// seo
	MetaTitle         string
	MetaDescription   string
	MetaKeywords      string
	OgImage           string
	GoogleAnalyticsID string

	// client logos section
	ShowClientLogos bool
	MaxClientLogos  int
}

// Documented fallback values used when the singleton is absent or a
// field is left empty.
const (
	DefaultCompanyName     = "iWEX Infomatics"
	DefaultFounderName     = "Ameer Babu"
	DefaultFounderTitle    = "Founder & Chief Consultant"
	DefaultFounderCerts    = "World's First Frappe Certified Consultant (Manufacturing, HR & Payroll)"
	DefaultWhatsappBiz     = "+919349125225"
	DefaultWhatsappAPI     = "+919744763336"
	DefaultTelegramBot     = "@iWEXinfo_bot"
	DefaultChatbotGreeting = "Hello! 👋 Welcome to iWEX Infomatics."
	DefaultHeroTitle       = "Welcome to iWEX Infomatics"
	DefaultHeroSubtitle    = "Transforming businesses through innovative web solutions"
	DefaultHeroCtaText     = "Get Started"
	DefaultHeroCtaLink     = "#contact"
	DefaultHeroSecondText  = "Our Services"
	DefaultHeroSecondLink  = "#services"
	DefaultAboutTitle      = "About iWEX Infomatics"
	DefaultAboutDesc       = "We are a leading provider of innovative web solutions."
	DefaultAboutMission    = "To empower businesses with innovative technology solutions."
	DefaultAboutVision     = "To be the most trusted partner for digital transformation."
	DefaultContactEmail    = "emails@iwex.in"
	DefaultContactPhone    = "+91 97447 83338"
	DefaultContactAddress  = "S41, SBC2, Thapasya, Phase 1, Infopark Kochi, Kerala, India - 682042"
	DefaultMetaTitle       = "iWEX Infomatics"
	DefaultMetaDesc        = "Innovative Web Solutions"
	DefaultMaxClientLogos  = 12

	DefaultStatClients    = 150
	DefaultStatYears      = 9
	DefaultStatIndustries = 5
	DefaultStatProjects   = 200
	DefaultStatTeam       = 15
)

// SettingsPayload is the nested response shape of the settings endpoint
type SettingsPayload struct {
	Branding BrandingInfo `json:"branding"`
	Founder  FounderInfo  `json:"founder"`
	Chatbot  ChatbotInfo  `json:"chatbot"`
	Stats    StatsInfo    `json:"stats"`
	Hero     HeroInfo     `json:"hero"`
	About    AboutInfo    `json:"about"`
	Contact  ContactInfo  `json:"contact"`
	Social   SocialInfo   `json:"social"`
	SEO      SEOInfo      `json:"seo"`
}

type BrandingInfo struct {
	CompanyName string `json:"company_name"`
	Tagline     string `json:"tagline"`
	Logo        string `json:"logo"`
	LogoDark    string `json:"logo_dark"`
	Favicon     string `json:"favicon"`
}

type FounderInfo struct {
	Name           string `json:"name"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	Bio            string `json:"bio"`
	Certifications string `json:"certifications"`
}

type ChatbotInfo struct {
	Enabled          bool   `json:"enabled"`
	WhatsappBusiness string `json:"whatsapp_business"`
	WhatsappAPI      string `json:"whatsapp_api"`
	TelegramUsername string `json:"telegram_username"`
	TelegramID       string `json:"telegram_id"`
	Greeting         string `json:"greeting"`
}

type StatsInfo struct {
	Clients    int `json:"clients"`
	Years      int `json:"years"`
	Industries int `json:"industries"`
	Projects   int `json:"projects"`
	Team       int `json:"team"`
}

type HeroInfo struct {
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	CtaText          string `json:"cta_text"`
	CtaLink          string `json:"cta_link"`
	SecondaryCtaText string `json:"secondary_cta_text"`
	SecondaryCtaLink string `json:"secondary_cta_link"`
	Image            string `json:"image"`
	VideoURL         string `json:"video_url"`
}

type AboutInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Mission     string `json:"mission"`
	Vision      string `json:"vision"`
}

type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	MapURL  string `json:"map_url"`
}

type SocialInfo struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Linkedin  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	Youtube   string `json:"youtube"`
	Github    string `json:"github"`
}

type SEOInfo struct {
	MetaTitle         string `json:"meta_title"`
	MetaDescription   string `json:"meta_description"`
	MetaKeywords      string `json:"meta_keywords"`
	OgImage           string `json:"og_image"`
	GoogleAnalyticsID string `json:"google_analytics_id"`
}

// BuildSettingsPayload shapes a settings record into the public payload,
// substituting defaults for empty fields. Accepts nil when no record
// exists; the chatbot widget is enabled in that case.
func BuildSettingsPayload(s *WebsiteSettings) *SettingsPayload {
	if s == nil {
		s = &WebsiteSettings{EnableChatbot: true}
	}

	return &SettingsPayload{
		Branding: BrandingInfo{
			CompanyName: fallback(s.CompanyName, DefaultCompanyName),
			Tagline:     s.Tagline,
			Logo:        s.Logo,
			LogoDark:    s.LogoDark,
			Favicon:     s.Favicon,
		},
		Founder: FounderInfo{
			Name:           fallback(s.FounderName, DefaultFounderName),
			Title:          fallback(s.FounderTitle, DefaultFounderTitle),
			Image:          s.FounderImage,
			Bio:            s.FounderBio,
			Certifications: fallback(s.FounderCertifications, DefaultFounderCerts),
		},
		Chatbot: ChatbotInfo{
			Enabled:          s.EnableChatbot,
			WhatsappBusiness: fallback(s.WhatsappBusiness, DefaultWhatsappBiz),
			WhatsappAPI:      fallback(s.WhatsappAPI, DefaultWhatsappAPI),
			TelegramUsername: fallback(s.TelegramUsername, DefaultTelegramBot),
			TelegramID:       s.TelegramID,
			Greeting:         fallback(s.ChatbotGreeting, DefaultChatbotGreeting),
		},
		Stats: StatsInfo{
			Clients:    fallbackInt(s.StatClients, DefaultStatClients),
			Years:      fallbackInt(s.StatYears, DefaultStatYears),
			Industries: fallbackInt(s.StatIndustries, DefaultStatIndustries),
			Projects:   fallbackInt(s.StatProjects, DefaultStatProjects),
			Team:       fallbackInt(s.StatTeam, DefaultStatTeam),
		},
		Hero: HeroInfo{
			Title:            fallback(s.HeroTitle, DefaultHeroTitle),
			Subtitle:         fallback(s.HeroSubtitle, DefaultHeroSubtitle),
			CtaText:          fallback(s.HeroCtaText, DefaultHeroCtaText),
			CtaLink:          fallback(s.HeroCtaLink, DefaultHeroCtaLink),
			SecondaryCtaText: fallback(s.HeroSecondaryCtaText, DefaultHeroSecondText),
			SecondaryCtaLink: fallback(s.HeroSecondaryCtaLink, DefaultHeroSecondLink),
			Image:            s.HeroImage,
			VideoURL:         s.HeroVideoURL,
		},
		About: AboutInfo{
			Title:       fallback(s.AboutTitle, DefaultAboutTitle),
			Description: fallback(s.AboutDescription, DefaultAboutDesc),
			Image:       s.AboutImage,
			Mission:     fallback(s.AboutMission, DefaultAboutMission),
			Vision:      fallback(s.AboutVision, DefaultAboutVision),
		},
		Contact: ContactInfo{
			Email:   fallback(s.ContactEmail, DefaultContactEmail),
			Phone:   fallback(s.ContactPhone, DefaultContactPhone),
			Address: fallback(s.ContactAddress, DefaultContactAddress),
			MapURL:  s.ContactMapURL,
		},
		Social: SocialInfo{
			Facebook:  s.FacebookURL,
			Twitter:   s.TwitterURL,
			Linkedin:  s.LinkedinURL,
			Instagram: s.InstagramURL,
			Youtube:   s.YoutubeURL,
			Github:    s.GithubURL,
		},
		SEO: SEOInfo{
			MetaTitle:         fallback(s.MetaTitle, DefaultMetaTitle),
			MetaDescription:   fallback(s.MetaDescription, DefaultMetaDesc),
			MetaKeywords:      s.MetaKeywords,
			OgImage:           s.OgImage,
			GoogleAnalyticsID: s.GoogleAnalyticsID,
		},
	}
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func fallbackInt(value, def int) int {
	if value == 0 {
		return def
	}
	return value
}
