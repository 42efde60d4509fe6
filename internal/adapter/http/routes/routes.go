package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "clima_hogar/docs" // This will be auto-generated
	"clima_hogar/internal/adapter/http/handlers"
	"clima_hogar/internal/infrastructure/inventory"
	"clima_hogar/internal/infrastructure/launcher"
	"clima_hogar/internal/infrastructure/staticdata"
	"clima_hogar/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			port = n
		}
	}

	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	inventorySource := inventory.NewHTTPInventorySource()
	linkLauncher := launcher.NewLogLauncher()

	registry := usecase.NewSessionRegistry()
	pricing := staticdata.MaintenancePricing()

	catalogUseCase := usecase.NewCatalogUseCase(inventorySource, staticdata.FallbackCatalog(), staticdata.EquipmentImages())
	sessionUseCase := usecase.NewSessionUseCase(registry)
	galleryUseCase := usecase.NewGalleryUseCase(registry, catalogUseCase)
	quoteUseCase := usecase.NewQuoteUseCase(registry, pricing)
	handoffUseCase := usecase.NewHandoffUseCase(registry, pricing, linkLauncher, handoffConfigFromEnv())

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	galleryHandler := handlers.NewGalleryHandler(galleryUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, handoffUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addSessionRoutes(v1, sessionHandler, quoteHandler, galleryHandler)
}

func handoffConfigFromEnv() usecase.HandoffConfig {
	return usecase.HandoffConfig{
		WhatsAppPhone: getenvDefault("WHATSAPP_PHONE", "+56 9 8765 4321"),
		ContactEmail:  getenvDefault("CONTACT_EMAIL", "contacto@climahogar.cl"),
		MailLinkDelay: envMillis("MAIL_LINK_DELAY_MS", 1000),
		ResetDelay:    envMillis("RESET_DELAY_MS", 3000),
	}
}

func envMillis(key string, def int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(def) * time.Millisecond
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
