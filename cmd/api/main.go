package main

import (
	_ "clima_hogar/docs"
	"clima_hogar/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Clima Hogar Web API
// @version         1.0
// @description     Equipment catalog and quotation handoff for the Clima Hogar site.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  contacto@climahogar.cl

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
