package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Newsletter subscriber lists. The unique index on (email_group, email)
// makes concurrent duplicate subscriptions lose at the storage layer
// instead of racing the application-level existence check.
func init() {
	m.Register(func(app core.App) error {
		// ----------------------------------------------------
		// EMAIL GROUPS
		// ----------------------------------------------------
		groups := core.NewBaseCollection("email_groups")

		groups.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		groups.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		groups.Fields.Add(&core.TextField{Name: "title", Required: true})

		groups.AddIndex("idx_email_groups_title", true, "title", "")

		if err := app.Save(groups); err != nil {
			return err
		}

		// ----------------------------------------------------
		// EMAIL GROUP MEMBERS
		// ----------------------------------------------------
		members := core.NewBaseCollection("email_group_members")

		members.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		members.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		members.Fields.Add(&core.RelationField{
			Name:          "email_group",
			CollectionId:  groups.Id,
			MaxSelect:     1,
			Required:      true,
			CascadeDelete: true,
		})
		members.Fields.Add(&core.EmailField{Name: "email", Required: true})
		members.Fields.Add(&core.BoolField{Name: "unsubscribed"})

		members.AddIndex("idx_email_group_members_unique", true, "email_group, email", "")

		return app.Save(members)
	}, func(app core.App) error {
		for _, name := range []string{"email_group_members", "email_groups"} {
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
