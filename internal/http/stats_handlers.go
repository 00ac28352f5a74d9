package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carwash-dashboard/internal/service"
)

func (h *Handler) getRevenue(c *gin.Context) {
	shopID, ok := h.parseShopID(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", "weekly")

	series, err := h.stats.GetRevenueSeries(c.Request.Context(), period, shopID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period parameter"})
			return
		}
		h.internalError(c, err, gin.H{"error": "Failed to fetch revenue stats"})
		return
	}

	// No data is not an error here: the series comes back with canonical
	// labels and all-zero datasets.
	c.JSON(http.StatusOK, series)
}

func (h *Handler) getRevenueByType(c *gin.Context) {
	shopID, ok := h.parseShopID(c)
	if !ok {
		return
	}

	result, err := h.stats.GetRevenueByType(c.Request.Context(), shopID)
	if err != nil {
		h.internalError(c, err, statusError("Failed to fetch revenue by type statistics"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   result,
	})
}

func (h *Handler) getConfirmedCarsCount(c *gin.Context) {
	shopID, ok := h.parseShopID(c)
	if !ok {
		return
	}

	result, err := h.stats.GetCarCounts(c.Request.Context(), shopID)
	if err != nil {
		h.internalError(c, err, statusError("Failed to fetch confirmed cars count"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   result,
	})
}
