package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"carwash-dashboard/internal/service"
)

type Handler struct {
	auth  *service.AuthService
	users *service.UserService
	stats *service.StatsService
	cars  *service.CarService

	log          zerolog.Logger
	devMode      bool
	cookieSecure bool
	cookieTTL    time.Duration
}

type HandlerConfig struct {
	DevMode      bool
	CookieSecure bool
	CookieTTL    time.Duration
}

func NewHandler(
	authSvc *service.AuthService,
	userSvc *service.UserService,
	statsSvc *service.StatsService,
	carSvc *service.CarService,
	log zerolog.Logger,
	cfg HandlerConfig,
) *Handler {
	return &Handler{
		auth:         authSvc,
		users:        userSvc,
		stats:        statsSvc,
		cars:         carSvc,
		log:          log,
		devMode:      cfg.DevMode,
		cookieSecure: cfg.CookieSecure,
		cookieTTL:    cfg.CookieTTL,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	authGroup.POST("/login", h.login)
	authGroup.POST("/logout", authMiddleware, h.logout)
	authGroup.GET("/check-auth", authMiddleware, h.checkAuth)

	userGroup := r.Group("/users")
	userGroup.Use(authMiddleware)
	userGroup.POST("/create", h.createUser)
	userGroup.GET("", h.listUsers)
	userGroup.POST("/reset-password", h.resetPassword)

	statsGroup := r.Group("/stats")
	statsGroup.Use(authMiddleware)
	statsGroup.GET("/revenue", h.getRevenue)
	statsGroup.GET("/revenue-by-type", h.getRevenueByType)
	statsGroup.GET("/confirmed-cars-count", h.getConfirmedCarsCount)

	carGroup := r.Group("/cars")
	carGroup.GET("/confirmed_cars", authMiddleware, h.listConfirmedCars)
	carGroup.GET("/latest_cars", authMiddleware, h.latestCars)
	carGroup.GET("/confirmed_cars_summary", authMiddleware, h.carSummary)
	carGroup.GET("/washing-stats", h.washingStats)
}

// parseShopID extracts the mandatory numeric shop_id query parameter. A
// missing or non-numeric value answers the request with 400 before any
// query runs.
func (h *Handler) parseShopID(c *gin.Context) (int64, bool) {
	raw := strings.TrimSpace(c.Query("shop_id"))
	shopID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || shopID == 0 {
		c.JSON(http.StatusBadRequest, statusError("Shop ID is required"))
		return 0, false
	}
	return shopID, true
}

// statusError is the {status, message} error shape used by the cars and
// stats endpoint families.
func statusError(message string) gin.H {
	return gin.H{"status": "error", "message": message}
}

// internalError logs the cause and answers with a generic message; the
// underlying detail is exposed only in development mode.
func (h *Handler) internalError(c *gin.Context, err error, body gin.H) {
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("handler error")
	if h.devMode {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
