package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Customers are shared with the wider business system; the website only
// reads them as a source of client logos.
func init() {
	m.Register(func(app core.App) error {
		customers := core.NewBaseCollection("customers")

		customers.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		customers.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		// Not publicly listable; logos are exposed through the API only.
		customers.ListRule = nil
		customers.ViewRule = nil

		customers.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		customers.Fields.Add(&core.FileField{Name: "image", MaxSelect: 1})
		customers.Fields.Add(&core.URLField{Name: "website"})
		customers.Fields.Add(&core.BoolField{Name: "disabled"})

		return app.Save(customers)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			return err
		}
		return app.Delete(collection)
	})
}
