package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// CRM intake records created by the contact form. Leads are never read
// back by the website; they are worked in the admin UI.
func init() {
	m.Register(func(app core.App) error {
		// ----------------------------------------------------
		// LEADS
		// ----------------------------------------------------
		leads := core.NewBaseCollection("leads")

		leads.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		leads.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		// API rules stay closed; inserts happen server-side.
		leads.Fields.Add(&core.TextField{Name: "lead_name", Required: true})
		leads.Fields.Add(&core.EmailField{Name: "email_id", Required: true})
		leads.Fields.Add(&core.TextField{Name: "phone"})
		leads.Fields.Add(&core.TextField{Name: "source"})
		leads.Fields.Add(&core.TextField{Name: "status"})
		leads.Fields.Add(&core.TextField{Name: "company_name"})

		if err := app.Save(leads); err != nil {
			return err
		}

		// ----------------------------------------------------
		// COMMUNICATIONS (notes attached to a lead)
		// ----------------------------------------------------
		communications := core.NewBaseCollection("communications")

		communications.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		communications.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		communications.Fields.Add(&core.TextField{Name: "communication_type"})
		communications.Fields.Add(&core.TextField{Name: "communication_medium"})
		communications.Fields.Add(&core.TextField{Name: "subject"})
		communications.Fields.Add(&core.EditorField{Name: "content"})
		communications.Fields.Add(&core.RelationField{
			Name:          "lead",
			CollectionId:  leads.Id,
			MaxSelect:     1,
			Required:      true,
			CascadeDelete: true,
		})
		communications.Fields.Add(&core.EmailField{Name: "sender"})
		communications.Fields.Add(&core.TextField{Name: "sender_full_name"})

		return app.Save(communications)
	}, func(app core.App) error {
		for _, name := range []string{"communications", "leads"} {
			collection, err := app.FindCollectionByNameOrId(name)
			if err != nil {
				return err
			}
			if err := app.Delete(collection); err != nil {
				return err
			}
		}
		return nil
	})
}
