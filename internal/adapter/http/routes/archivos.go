package routes

import (
	"backpedidos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathArchivos = "/archivos"
)

func addArchivoRoutes(rg *gin.RouterGroup, archivoHandler *handlers.ArchivoHandler) {
	archivos := rg.Group(PathArchivos)
	{
		// :id is the pedido on register and the archivo on review; the
		// router cannot hold two wildcard names at the same position.
		archivos.POST("/:id", archivoHandler.RegisterArchivo)
		archivos.GET("/pedido/:id", archivoHandler.ListArchivos)
		archivos.POST("/:id/review", archivoHandler.ReviewArchivo)
	}
}
