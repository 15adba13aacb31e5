package main

import (
	"log"

	"paydesk/config"
	"paydesk/database"
	"paydesk/routers"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	app := routers.NewApp(cfg)
	routers.Setup(app, db, cfg)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
