package repository

import (
	domain "github.com/iWEX-Infomatics/iWebsite/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBCRMRepo struct {
	app pbCore.App
}

func NewCRMRepo(app pbCore.App) domain.CRMRepository {
	return &PBCRMRepo{app: app}
}

func (r *PBCRMRepo) CreateLead(lead *domain.Lead) error {
	collection, err := r.app.FindCollectionByNameOrId("leads")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("lead_name", lead.LeadName)
	record.Set("email_id", lead.Email)
	record.Set("phone", lead.Phone)
	record.Set("source", lead.Source)
	record.Set("status", lead.Status)
	record.Set("company_name", lead.CompanyName)

	if err := r.app.Save(record); err != nil {
		return err
	}

	lead.ID = record.Id
	return nil
}

func (r *PBCRMRepo) CreateCommunication(comm *domain.Communication) error {
	collection, err := r.app.FindCollectionByNameOrId("communications")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("communication_type", comm.Type)
	record.Set("communication_medium", comm.Medium)
	record.Set("subject", comm.Subject)
	record.Set("content", comm.Content)
	record.Set("lead", comm.LeadID)
	record.Set("sender", comm.Sender)
	record.Set("sender_full_name", comm.SenderName)

	if err := r.app.Save(record); err != nil {
		return err
	}

	comm.ID = record.Id
	return nil
}
