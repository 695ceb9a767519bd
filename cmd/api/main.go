package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Nomtt/knote-voice-backend/internal/catalog"
	"github.com/Nomtt/knote-voice-backend/internal/db"
	"github.com/Nomtt/knote-voice-backend/internal/order"
	"github.com/Nomtt/knote-voice-backend/internal/speech"
	"github.com/Nomtt/knote-voice-backend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Fatal("Missing env var: OPENAI_API_KEY")
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── CATALOG ─────────────────────────
	var catalogRepo catalog.Repository
	if os.Getenv("DATABASE_URL") != "" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()
		catalogRepo = catalog.NewPostgresRepository(pgDB)
	} else {
		catalogRepo = catalog.NewMemoryRepository()
	}

	catalogService := catalog.NewService(catalogRepo)
	if err := catalogService.Seed(context.Background(), catalog.Defaults()); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}
	catalogHandler := catalog.NewHandler(catalogService)

	r.GET("/menu", catalogHandler.ListMenu)
	r.POST("/menu", catalogHandler.AddMenuItem)
	r.DELETE("/menu/:id", catalogHandler.DeleteMenuItem)

	// ───────────────────────── AUDIO ARCHIVE ─────────────────────────
	var archive order.Archive
	if storage.Configured() {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		archive = r2Client
	}

	// ───────────────────────── VOICE ORDERS ─────────────────────────
	speechClient := speech.NewOpenAIClient()
	orderService := order.NewService(catalogRepo, speechClient, archive)
	orderHandler := order.NewHandler(orderService)

	r.POST("/process_audio", orderHandler.ProcessAudio)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
