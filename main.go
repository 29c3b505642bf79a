package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/panmitra/form49a-service/client"
	"github.com/panmitra/form49a-service/config"
	"github.com/panmitra/form49a-service/handler"
	"github.com/panmitra/form49a-service/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize clients
	contentClient := client.NewContentClient(cfg.FetchTimeout)
	storeClient := client.NewStoreClient(cfg.StoreURL, cfg.StoreAPIKey, cfg.FetchTimeout)
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	formService := service.NewFormService(contentClient, pdfProcessor, cfg.TemplateURL)
	verifyService := service.NewVerifyService(tesseractClient, pdfProcessor)

	// Initialize handler layer
	formHandler := handler.NewFormHandler(storeClient, formService)
	trackHandler := handler.NewTrackHandler(storeClient)
	ackHandler := handler.NewAckHandler(storeClient)
	verifyHandler := handler.NewVerifyHandler(storeClient, verifyService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Form 49A Document Service",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		applications := api.Group("/applications")
		{
			applications.GET("/:id/form", formHandler.GenerateForm)
			applications.GET("/:id/acknowledgement", ackHandler.Acknowledgement)
			applications.GET("/track/:no", trackHandler.TrackApplication)
		}

		documents := api.Group("/documents")
		{
			documents.POST("/verify", verifyHandler.VerifyDocument)
		}
	}

	// Start server
	log.Printf("Starting Form 49A Document Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
