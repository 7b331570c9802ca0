package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/filial-service/internal/adapter/api/controller"
)

// SetupFilialRoutes configura as rotas para o módulo de filiais
func SetupFilialRoutes(router *gin.RouterGroup, filialController *controller.FilialController) {
	filialRouter := router.Group("/filiais")
	{
		filialRouter.POST("", filialController.Create)
		filialRouter.GET("", filialController.List)
		filialRouter.GET("/by-phone", filialController.GetByUserPhone)
		filialRouter.GET("/users", filialController.GetUsersByFilial)
		filialRouter.DELETE("/:id", filialController.Delete)
	}
}
