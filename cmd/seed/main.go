package main

import (
	"fmt"
	"log"

	_ "github.com/iWEX-Infomatics/iWebsite/migrations"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Seeds demo website content (services with features, FAQs,
// testimonials) for local development. Safe to run repeatedly.
func main() {
	app := pocketbase.New()

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		if err := seedServices(app); err != nil {
			return err
		}
		if err := seedFAQs(app); err != nil {
			return err
		}
		if err := seedTestimonials(app); err != nil {
			return err
		}
		return e.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func seedServices(app *pocketbase.PocketBase) error {
	existing, _ := app.FindRecordsByFilter("services", "service_name='ERPNext Implementation'", "", 1, 0, nil)
	if len(existing) > 0 {
		fmt.Printf("Services already seeded: %s\n", existing[0].Id)
		return nil
	}

	services, err := app.FindCollectionByNameOrId("services")
	if err != nil {
		return err
	}
	features, err := app.FindCollectionByNameOrId("service_features")
	if err != nil {
		return err
	}

	record := core.NewRecord(services)
	record.Set("service_name", "ERPNext Implementation")
	record.Set("icon_class", "fa-cogs")
	record.Set("short_description", "End-to-end ERPNext rollout for manufacturing, HR and payroll")
	record.Set("is_published", true)
	record.Set("display_order", 1)
	if err := app.Save(record); err != nil {
		return err
	}

	featureTitles := []string{
		"Requirement analysis",
		"Data migration",
		"Go-live support",
	}
	for i, title := range featureTitles {
		feature := core.NewRecord(features)
		feature.Set("service", record.Id)
		feature.Set("feature_title", title)
		feature.Set("sort_order", i+1)
		if err := app.Save(feature); err != nil {
			return err
		}
	}

	fmt.Printf("Created service: %s\n", record.Id)
	return nil
}

func seedFAQs(app *pocketbase.PocketBase) error {
	existing, _ := app.FindRecordsByFilter("faqs", "question~'ERPNext'", "", 1, 0, nil)
	if len(existing) > 0 {
		return nil
	}

	faqs, err := app.FindCollectionByNameOrId("faqs")
	if err != nil {
		return err
	}

	rows := []struct {
		category string
		question string
		answer   string
	}{
		{"Implementation", "How long does an ERPNext implementation take?", "A typical rollout takes 8-12 weeks depending on scope."},
		{"Implementation", "Do you migrate data from our old system?", "Yes, data migration is part of every implementation."},
		{"", "Where are you located?", "Infopark Kochi, Kerala, India."},
	}
	for i, row := range rows {
		record := core.NewRecord(faqs)
		record.Set("category", row.category)
		record.Set("question", row.question)
		record.Set("answer", row.answer)
		record.Set("is_published", true)
		record.Set("display_order", i+1)
		if err := app.Save(record); err != nil {
			return err
		}
	}
	return nil
}

func seedTestimonials(app *pocketbase.PocketBase) error {
	existing, _ := app.FindRecordsByFilter("testimonials", "client_name='Demo Client'", "", 1, 0, nil)
	if len(existing) > 0 {
		return nil
	}

	testimonials, err := app.FindCollectionByNameOrId("testimonials")
	if err != nil {
		return err
	}

	record := core.NewRecord(testimonials)
	record.Set("client_name", "Demo Client")
	record.Set("company", "Demo Manufacturing Ltd")
	record.Set("designation", "Operations Head")
	record.Set("testimonial_text", "The rollout was smooth and the team was responsive throughout.")
	record.Set("rating", 5)
	record.Set("is_published", true)
	record.Set("display_order", 1)
	return app.Save(record)
}
