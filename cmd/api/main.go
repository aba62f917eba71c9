package main

import (
	_ "sistema_cvt/docs"
	"sistema_cvt/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Sistema CVT API
// @version         1.0
// @description     Visit report (CVT) service backed by Google Sheets with local CSV failover.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey SessionToken
// @in header
// @name X-Session-Token
// @description Opaque session token returned by /auth/login.

func main() {
	routes.Run()
}
