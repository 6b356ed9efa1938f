package main

import (
	"fmt"
	"log"
	"painel-app/config"
	"painel-app/controllers/idgen"
	"painel-app/database"
	"painel-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	// Garante que o banco da aplicação existe
	if err := database.EnsureDatabaseExists(config.DBName); err != nil {
		log.Fatalf("Failed to ensure database: %v", err)
	}

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init(int64(config.SnowflakeNode))
	database.RunSeeders(db)

	// Setup CORS middleware
	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupFactoryRoutes(app, db)
	routes.SetupQuoteRoutes(app, db)
	routes.SetupImportRoutes(app, db)
	routes.SetupContainerRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Servidor rodando na porta " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
