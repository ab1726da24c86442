package main

import (
	"log"

	"inventory/condb"
	"inventory/config"
	"inventory/controllers"
	"inventory/mailer"
	"inventory/repository"
	"inventory/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	db, err := condb.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("cannot connect to database: ", err)
	}
	if err := condb.Migrate(db); err != nil {
		log.Fatal("migration failed: ", err)
	}

	repo := repository.New(db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(app,
		controllers.NewSupplierController(repo),
		controllers.NewProductController(repo, repo),
		controllers.NewEmailController(repo, repo, mailer.New(cfg.MailUsername, cfg.MailPassword)),
	)

	log.Fatal(app.Listen(":8080"))
}
