package routes

import (
	"backpedidos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPedidos = "/pedidos"
)

func addPedidoRoutes(rg *gin.RouterGroup, pedidoHandler *handlers.PedidoHandler, workflowHandler *handlers.WorkflowHandler) {
	pedidos := rg.Group(PathPedidos)
	{
		pedidos.POST("", pedidoHandler.CreatePedido)
		pedidos.GET("/list", pedidoHandler.ListPedidos)
		pedidos.GET("/list/:id", pedidoHandler.GetPedidoListItem)
		pedidos.GET("/detail/:id", pedidoHandler.GetPedidoDetail)
		pedidos.PATCH("/:id", pedidoHandler.UpdatePedido)

		// state machine
		pedidos.POST("/:id/decision", workflowHandler.Decide)
		pedidos.POST("/:id/estado", workflowHandler.SetEstado)
		pedidos.GET("/:id/historial", workflowHandler.History)
	}
}
