package core

// SettingsRepository loads the website_settings singleton.
// Get returns (nil, false, nil) when no record exists yet; callers treat
// that as "use defaults", not as an error.
type SettingsRepository interface {
	Get() (*WebsiteSettings, bool, error)
}

// ContentRepository defines read access to the published website content
type ContentRepository interface {
	PublishedServices() ([]*Service, error)
	ServiceFeatures(serviceID string) ([]*ServiceFeature, error)
	PublishedFAQs(category string) ([]*FAQ, error)
	FAQCategories() ([]string, error)
	PublishedTestimonials() ([]*Testimonial, error)
}

// CustomerRepository reads shared customer records for the logo strip
type CustomerRepository interface {
	// RecentActive returns up to limit non-disabled customers, most
	// recently updated first. Entries without an image are included;
	// the service filters them out.
	RecentActive(limit int) ([]*Customer, error)
}

// CRMRepository persists contact form intake records
type CRMRepository interface {
	CreateLead(lead *Lead) error // fills lead.ID on success
	CreateCommunication(comm *Communication) error
}

// NewsletterRepository manages subscriber groups and memberships
type NewsletterRepository interface {
	IsSubscribed(group, email string) (bool, error)
	EnsureGroup(title string) error
	AddMember(group, email string) error
}

// ContactNotifier delivers the admin notification for a new lead.
// Implementations are best-effort; intake never fails on notify errors.
type ContactNotifier interface {
	NotifyNewLead(recipient string, req *ContactRequest, leadID string) error
}
