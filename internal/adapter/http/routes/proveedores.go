package routes

import (
	"backpedidos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProveedores = "/proveedores"
)

func addProveedorRoutes(rg *gin.RouterGroup, proveedorHandler *handlers.ProveedorHandler) {
	proveedores := rg.Group(PathProveedores)
	{
		proveedores.PUT("", proveedorHandler.UpsertProveedor)
		proveedores.GET("/:cuit", proveedorHandler.GetProveedor)
		proveedores.POST("/vincular/:pedido_id", proveedorHandler.VincularProveedor)
	}
}
