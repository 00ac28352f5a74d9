package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carwash-dashboard/internal/service"
)

func (h *Handler) listConfirmedCars(c *gin.Context) {
	shopID, ok := h.parseShopID(c)
	if !ok {
		return
	}

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 0)

	result, err := h.cars.ListConfirmed(c.Request.Context(), page, limit, shopID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, statusError("No confirmed cars found for this shop"))
			return
		}
		h.internalError(c, err, statusError("Unable to fetch car data"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"data":       result.Cars,
		"pagination": result.Pagination,
	})
}

func (h *Handler) latestCars(c *gin.Context) {
	shopID, ok := h.parseShopID(c)
	if !ok {
		return
	}

	cars, err := h.cars.Latest(c.Request.Context(), shopID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, statusError("No recent cars found"))
			return
		}
		h.internalError(c, err, statusError("Unable to fetch latest cars"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   cars,
		"count":  len(cars),
	})
}

func (h *Handler) carSummary(c *gin.Context) {
	shopID, ok := h.parseShopID(c)
	if !ok {
		return
	}

	summary, err := h.cars.Summary(c.Request.Context(), shopID)
	if err != nil {
		h.internalError(c, err, statusError("Unable to fetch confirmed cars summary"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   summary,
	})
}

func (h *Handler) washingStats(c *gin.Context) {
	stats, err := h.cars.WashingStats(c.Request.Context())
	if err != nil {
		h.internalError(c, err, statusError("Unable to fetch washing statistics"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}

// intQuery parses an integer query parameter, falling back on malformed
// input; range clamping happens in the service.
func intQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return value
}
