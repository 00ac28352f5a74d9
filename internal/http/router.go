package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"carwash-dashboard/internal/config"
)

func NewRouter(handler *Handler, authMiddleware, requestLogger gin.HandlerFunc, cfg *config.Config) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	handler.Register(r, authMiddleware)
	return r
}
