package handler

import (
	"employee-directory/internal/service"
	"employee-directory/pkg/util"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"net/http"
)

type Handlers struct {
	services    *service.Services
	enablePprof bool
}

func NewHandlers(services *service.Services, enablePprof bool) *Handlers {
	return &Handlers{services: services, enablePprof: enablePprof}
}

func (h *Handlers) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(requestID(), recovery(), accessLog(), util.CORS())
	if h.enablePprof {
		pprof.Register(router)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, messageResponse{Message: "pong"})
	})

	router.PUT("/login", h.login)

	users := router.Group("/users")
	{
		get := users.Group("/get/:id")
		get.GET("/personal", h.getPersonal)
		get.GET("/job_info", h.getJobInfo)
		get.GET("/details", h.getDetails)
		get.GET("/photo", h.getPhoto)

		users.POST("/upload/:id/photo", h.uploadPhoto)
	}

	return router
}
