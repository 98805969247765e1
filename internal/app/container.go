// Package app provides the dependency injection container for the
// website backend. All service initialization happens in one place.
package app

import (
	"github.com/iWEX-Infomatics/iWebsite/internal/adapter/notify"
	"github.com/iWEX-Infomatics/iWebsite/internal/adapter/repository"
	domain "github.com/iWEX-Infomatics/iWebsite/internal/core"
	"github.com/iWEX-Infomatics/iWebsite/internal/service"

	"github.com/pocketbase/pocketbase"
)

// Container holds all application dependencies
type Container struct {
	PB *pocketbase.PocketBase

	// Repositories (Data Access Layer)
	SettingsRepo   domain.SettingsRepository
	ContentRepo    domain.ContentRepository
	CustomerRepo   domain.CustomerRepository
	CRMRepo        domain.CRMRepository
	NewsletterRepo domain.NewsletterRepository

	// External
	Notifier domain.ContactNotifier

	// Domain Services
	WebsiteService    *service.WebsiteService
	ContactService    *service.ContactService
	NewsletterService *service.NewsletterService
}

// NewContainer creates and wires all dependencies
func NewContainer(pb *pocketbase.PocketBase) *Container {
	c := &Container{PB: pb}

	// 1. Repositories (Adapters)
	c.SettingsRepo = repository.NewSettingsRepo(pb)
	c.ContentRepo = repository.NewContentRepo(pb)
	c.CustomerRepo = repository.NewCustomerRepo(pb)
	c.CRMRepo = repository.NewCRMRepo(pb)
	c.NewsletterRepo = repository.NewNewsletterRepo(pb)

	// 2. Outbound notification
	c.Notifier = notify.NewMailNotifier(pb)

	// 3. Domain services
	c.WebsiteService = service.NewWebsiteService(c.SettingsRepo, c.ContentRepo, c.CustomerRepo)
	c.ContactService = service.NewContactService(c.CRMRepo, c.SettingsRepo, c.Notifier, pb.Logger())
	c.NewsletterService = service.NewNewsletterService(c.NewsletterRepo)

	return c
}
