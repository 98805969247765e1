package service

import (
	"strings"

	"github.com/iWEX-Infomatics/iWebsite/internal/core"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// NewsletterGroup is the subscriber list the website signs addresses
// up to. It is created lazily on the first subscription.
const NewsletterGroup = "Newsletter"

type NewsletterService struct {
	newsletter core.NewsletterRepository
}

func NewNewsletterService(newsletter core.NewsletterRepository) *NewsletterService {
	return &NewsletterService{newsletter: newsletter}
}

// Subscribe adds the email to the newsletter group. Duplicates are
// rejected with a ValidationError before any write happens; the unique
// index on (group, email) backstops concurrent submissions.
func (s *NewsletterService) Subscribe(email string) error {
	email = strings.TrimSpace(email)

	if email == "" {
		return core.Invalid("Invalid email address")
	}
	if err := validation.Validate(email, is.EmailFormat); err != nil {
		return core.Invalid("Invalid email address")
	}

	subscribed, err := s.newsletter.IsSubscribed(NewsletterGroup, email)
	if err != nil {
		return err
	}
	if subscribed {
		return core.Invalid("You are already subscribed to our newsletter")
	}

	if err := s.newsletter.EnsureGroup(NewsletterGroup); err != nil {
		return err
	}

	return s.newsletter.AddMember(NewsletterGroup, email)
}
