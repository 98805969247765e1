package app

import (
	internalApp "github.com/iWEX-Infomatics/iWebsite/internal/app"
	"github.com/iWEX-Infomatics/iWebsite/pkg/handlers"
	"github.com/iWEX-Infomatics/iWebsite/pkg/middleware"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// RegisterRoutes wires the website API onto the PocketBase router
func RegisterRoutes(pb *pocketbase.PocketBase, c *internalApp.Container) {
	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {
		website := &handlers.WebsiteHandler{
			App:     pb,
			Website: c.WebsiteService,
		}

		intake := &handlers.IntakeHandler{
			App:        pb,
			Contact:    c.ContactService,
			Newsletter: c.NewsletterService,
		}

		group := se.Router.Group("/api/website")
		group.BindFunc(middleware.PublicAPI())

		group.GET("/settings", website.Settings)
		group.GET("/services", website.Services)
		group.GET("/faqs", website.FAQs)
		group.GET("/faq-categories", website.FAQCategories)
		group.GET("/testimonials", website.Testimonials)
		group.GET("/client-logos", website.ClientLogos)

		group.POST("/contact", intake.SubmitContact)
		group.GET("/newsletter/subscribe", intake.SubscribeNewsletter)
		group.POST("/newsletter/subscribe", intake.SubscribeNewsletter)

		return se.Next()
	})
}
