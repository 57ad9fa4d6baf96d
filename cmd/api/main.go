package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/ronankibharath98/JobHunt/internal/auth"
	"github.com/ronankibharath98/JobHunt/internal/database"
	"github.com/ronankibharath98/JobHunt/internal/handlers"
	"github.com/ronankibharath98/JobHunt/internal/storage"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	// 2. Database Connection
	db := database.Connect()

	// 3. Session Tokens
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	tokens := auth.NewManager(secret)

	// 4. Upload Storage
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	store, err := storage.NewDiskStorage(uploadDir)
	if err != nil {
		log.Fatal("Failed to set up upload storage:", err)
	}

	// 5. Router & CORS
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	r := handlers.NewRouter(handlers.RouterConfig{
		DB:         db,
		Tokens:     tokens,
		Storage:    store,
		CORSOrigin: origin,
		UploadDir:  uploadDir,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("Server starting on port " + port + "...")
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
