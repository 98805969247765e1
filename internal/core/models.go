package core

// Service represents a published service offering shown on the website
type Service struct {
	ID           string            `json:"name"`
	ServiceName  string            `json:"service_name"`
	Icon         string            `json:"icon"`
	IconClass    string            `json:"icon_class"`
	ShortDesc    string            `json:"short_description"`
	FullDesc     string            `json:"full_description"`
	Image        string            `json:"service_image"`
	ImageAlt     string            `json:"service_image_alt"`
	DisplayOrder int               `json:"display_order"`
	Features     []*ServiceFeature `json:"features"`
}

// ServiceFeature is a bullet point belonging to a service
type ServiceFeature struct {
	Title       string `json:"feature_title"`
	Description string `json:"feature_description"`
}

// FAQ is a single published question/answer pair
type FAQ struct {
	ID           string `json:"name"`
	Category     string `json:"category"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	DisplayOrder int    `json:"display_order"`
}

// FAQIndex bundles the three views the FAQ endpoint returns: the flat
// ordered list, the same records grouped by category, and the distinct
// categories in first-seen order.
type FAQIndex struct {
	FAQs       []*FAQ            `json:"faqs"`
	Grouped    map[string][]*FAQ `json:"grouped"`
	Categories []string          `json:"categories"`
}

// Testimonial is a published client quote
type Testimonial struct {
	ID           string `json:"name"`
	ClientName   string `json:"client_name"`
	Company      string `json:"company"`
	Designation  string `json:"designation"`
	Text         string `json:"testimonial_text"`
	Rating       int    `json:"rating"`
	Image        string `json:"client_image"`
	ImageAlt     string `json:"image_alt"`
	DisplayOrder int    `json:"display_order"`
}

// Customer is the slice of the shared customer record the website reads
// when building the client logo strip.
type Customer struct {
	ID           string
	CustomerName string
	Image        string
}

// ClientLogo is the public projection of a customer with an image
type ClientLogo struct {
	ID           string `json:"name"`
	CustomerName string `json:"customer_name"`
	Logo         string `json:"logo"`
}

// Lead is a CRM prospect created from a contact form submission
type Lead struct {
	ID          string
	LeadName    string
	Email       string
	Phone       string
	Source      string
	Status      string
	CompanyName string
}

// Communication is a free-text note attached to a lead
type Communication struct {
	ID         string
	Type       string
	Medium     string
	Subject    string
	Content    string
	LeadID     string
	Sender     string
	SenderName string
}

// ContactRequest carries a contact form submission into the intake service
type ContactRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Subject  string `json:"subject" form:"subject"`
	Message  string `json:"message" form:"message"`
}

// ValidationError marks failures caused by caller input. Handlers surface
// its reason verbatim; every other error maps to a generic message.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Invalid builds a ValidationError with the given user-facing reason
func Invalid(reason string) error {
	return &ValidationError{Reason: reason}
}
