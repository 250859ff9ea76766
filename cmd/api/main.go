package main

import (
	_ "backpedidos/docs"
	"backpedidos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pedidos API
// @version         1.0
// @description     Municipal procurement backend: pedidos, workflow, archivos and proveedores over Postgres.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000

// @BasePath  /v1

func main() {
	routes.Run()
}
