package main

import (
	_ "github.com/MBARUDI/menthorhub-backend/docs"
	"github.com/MBARUDI/menthorhub-backend/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           MenthorHub Payments API
// @version         1.0
// @description     Pix/card payment intents and Mercado Pago webhook confirmation for MenthorHub premium access.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
