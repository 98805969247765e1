package repository

import (
	domain "github.com/iWEX-Infomatics/iWebsite/internal/core"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBNewsletterRepo struct {
	app pbCore.App
}

func NewNewsletterRepo(app pbCore.App) domain.NewsletterRepository {
	return &PBNewsletterRepo{app: app}
}

func (r *PBNewsletterRepo) findGroup(title string) (*pbCore.Record, error) {
	records, err := r.app.FindRecordsByFilter(
		"email_groups",
		"title = {:title}",
		"",
		1,
		0,
		dbx.Params{"title": title},
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func (r *PBNewsletterRepo) IsSubscribed(group, email string) (bool, error) {
	groupRec, err := r.findGroup(group)
	if err != nil {
		return false, err
	}
	if groupRec == nil {
		return false, nil
	}

	members, err := r.app.FindRecordsByFilter(
		"email_group_members",
		"email_group = {:group} && email = {:email}",
		"",
		1,
		0,
		dbx.Params{"group": groupRec.Id, "email": email},
	)
	if err != nil {
		return false, err
	}
	return len(members) > 0, nil
}

func (r *PBNewsletterRepo) EnsureGroup(title string) error {
	groupRec, err := r.findGroup(title)
	if err != nil {
		return err
	}
	if groupRec != nil {
		return nil
	}

	collection, err := r.app.FindCollectionByNameOrId("email_groups")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("title", title)

	// A concurrent first-time subscription may have created the group
	// between the lookup and this save; the unique title index rejects
	// the second insert, which is the outcome we want.
	return r.app.Save(record)
}

func (r *PBNewsletterRepo) AddMember(group, email string) error {
	groupRec, err := r.findGroup(group)
	if err != nil {
		return err
	}
	if groupRec == nil {
		return errNoGroup(group)
	}

	collection, err := r.app.FindCollectionByNameOrId("email_group_members")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("email_group", groupRec.Id)
	record.Set("email", email)

	return r.app.Save(record)
}

type errNoGroup string

func (e errNoGroup) Error() string {
	return "email group does not exist: " + string(e)
}
