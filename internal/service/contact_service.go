package service

import (
	"log/slog"
	"strings"

	"github.com/iWEX-Infomatics/iWebsite/internal/core"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ContactService turns a validated contact form submission into a Lead
// (plus a Communication when a message was left) and notifies the admin
// address best-effort.
type ContactService struct {
	crm      core.CRMRepository
	settings core.SettingsRepository
	notifier core.ContactNotifier
	logger   *slog.Logger
}

func NewContactService(
	crm core.CRMRepository,
	settings core.SettingsRepository,
	notifier core.ContactNotifier,
	logger *slog.Logger,
) *ContactService {
	return &ContactService{
		crm:      crm,
		settings: settings,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit validates the request, persists the intake records and returns
// the new lead's id. Validation failures surface as ValidationError and
// create nothing.
func (s *ContactService) Submit(req *core.ContactRequest) (string, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)

	if req.FullName == "" || req.Email == "" {
		return "", core.Invalid("Name and email are required")
	}
	if err := validation.Validate(req.Email, is.EmailFormat); err != nil {
		return "", core.Invalid("Invalid email address")
	}

	companyName := req.Subject
	if companyName == "" {
		companyName = "Website Inquiry"
	}

	lead := &core.Lead{
		LeadName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Source:      "Website",
		Status:      "Lead",
		CompanyName: companyName,
	}
	if err := s.crm.CreateLead(lead); err != nil {
		return "", err
	}

	if req.Message != "" {
		subject := req.Subject
		if subject == "" {
			subject = "Website Contact Form"
		}
		comm := &core.Communication{
			Type:       "Communication",
			Medium:     "Website",
			Subject:    subject,
			Content:    req.Message,
			LeadID:     lead.ID,
			Sender:     req.Email,
			SenderName: req.FullName,
		}
		if err := s.crm.CreateCommunication(comm); err != nil {
			return "", err
		}
	}

	// The lead is already durably created; a failed notification must
	// not fail the request.
	if err := s.notifier.NotifyNewLead(s.notifyRecipient(), req, lead.ID); err != nil {
		s.logger.Error("contact notification email failed", "lead", lead.ID, "error", err)
	}

	return lead.ID, nil
}

// notifyRecipient resolves the admin address from settings, falling back
// to the documented default. A settings read failure also falls back,
// since notification is best-effort anyway.
func (s *ContactService) notifyRecipient() string {
	settings, found, err := s.settings.Get()
	if err != nil || !found || settings.ContactEmail == "" {
		return core.DefaultContactEmail
	}
	return settings.ContactEmail
}
