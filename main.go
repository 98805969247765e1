package main

import (
	"log"

	internalApp "github.com/iWEX-Infomatics/iWebsite/internal/app"
	"github.com/iWEX-Infomatics/iWebsite/pkg/app"

	_ "github.com/iWEX-Infomatics/iWebsite/migrations"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
)

func main() {
	// Optional .env (SMTP credentials, app URL) for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	pb := pocketbase.New()

	// 1. Migrations
	migratecmd.MustRegister(pb, pb.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// 2. Dependency wiring
	container := internalApp.NewContainer(pb)

	// 3. Routes
	app.RegisterRoutes(pb, container)

	if err := pb.Start(); err != nil {
		log.Fatal(err)
	}
}
