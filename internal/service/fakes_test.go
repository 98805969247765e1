package service

import (
	"fmt"

	"github.com/iWEX-Infomatics/iWebsite/internal/core"
)

// In-memory port implementations shared by the service tests.

type fakeSettingsRepo struct {
	settings *core.WebsiteSettings
	found    bool
	err      error
}

func (f *fakeSettingsRepo) Get() (*core.WebsiteSettings, bool, error) {
	return f.settings, f.found, f.err
}

type fakeContentRepo struct {
	services     []*core.Service
	features     map[string][]*core.ServiceFeature
	faqs         []*core.FAQ
	categories   []string
	testimonials []*core.Testimonial
	err          error

	faqCategoryArg string
}

func (f *fakeContentRepo) PublishedServices() ([]*core.Service, error) {
	return f.services, f.err
}

func (f *fakeContentRepo) ServiceFeatures(serviceID string) ([]*core.ServiceFeature, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.features[serviceID], nil
}

func (f *fakeContentRepo) PublishedFAQs(category string) ([]*core.FAQ, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.faqCategoryArg = category
	if category == "" {
		return f.faqs, nil
	}
	filtered := []*core.FAQ{}
	for _, faq := range f.faqs {
		if faq.Category == category {
			filtered = append(filtered, faq)
		}
	}
	return filtered, nil
}

func (f *fakeContentRepo) FAQCategories() ([]string, error) {
	return f.categories, f.err
}

func (f *fakeContentRepo) PublishedTestimonials() ([]*core.Testimonial, error) {
	return f.testimonials, f.err
}

type fakeCustomerRepo struct {
	customers []*core.Customer
	err       error

	lastLimit int
	calls     int
}

func (f *fakeCustomerRepo) RecentActive(limit int) ([]*core.Customer, error) {
	f.calls++
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if len(f.customers) > limit {
		return f.customers[:limit], nil
	}
	return f.customers, nil
}

type fakeCRMRepo struct {
	leads   []*core.Lead
	comms   []*core.Communication
	leadErr error
	commErr error
}

func (f *fakeCRMRepo) CreateLead(lead *core.Lead) error {
	if f.leadErr != nil {
		return f.leadErr
	}
	lead.ID = fmt.Sprintf("lead_%d", len(f.leads)+1)
	f.leads = append(f.leads, lead)
	return nil
}

func (f *fakeCRMRepo) CreateCommunication(comm *core.Communication) error {
	if f.commErr != nil {
		return f.commErr
	}
	comm.ID = fmt.Sprintf("comm_%d", len(f.comms)+1)
	f.comms = append(f.comms, comm)
	return nil
}

type fakeNewsletterRepo struct {
	groups  map[string]bool
	members map[string][]string
	err     error
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{
		groups:  map[string]bool{},
		members: map[string][]string{},
	}
}

func (f *fakeNewsletterRepo) IsSubscribed(group, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, member := range f.members[group] {
		if member == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNewsletterRepo) EnsureGroup(title string) error {
	if f.err != nil {
		return f.err
	}
	f.groups[title] = true
	return nil
}

func (f *fakeNewsletterRepo) AddMember(group, email string) error {
	if f.err != nil {
		return f.err
	}
	if !f.groups[group] {
		return fmt.Errorf("email group does not exist: %s", group)
	}
	f.members[group] = append(f.members[group], email)
	return nil
}

type fakeNotifier struct {
	calls     int
	recipient string
	leadID    string
	err       error
}

func (f *fakeNotifier) NotifyNewLead(recipient string, req *core.ContactRequest, leadID string) error {
	f.calls++
	f.recipient = recipient
	f.leadID = leadID
	return f.err
}
