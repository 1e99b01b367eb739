package handlers

import (
	"errors"
	"math"
	"net/http"

	"growth_decay/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errInvalidData = "invalid data: please check the submitted values"
	errInternal    = "calculation failed"
)

// Decimal places used when presenting results.
const (
	decTemperature = 2
	decCoolingRate = 6
	decQuantity    = 4
	decDecayRate   = 6
	decDecayTime   = 4
	decPercent     = 2
)

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errInvalidData})
		return false
	}
	return true
}

// respondError maps service errors to HTTP statuses:
// invalid input → 400, not computable → 422, anything else → 500.
func (h *Handler) respondError(c *gin.Context, logKey string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		if h.log != nil {
			h.log.Infow(logKey, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, service.ErrNotComputable):
		if h.log != nil {
			h.log.Infow(logKey, "err", err)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": errInternal})
	}
}

// respondInfinite reports a target that is only reached asymptotically.
func respondInfinite(c *gin.Context, msg string, extra gin.H) {
	resp := gin.H{"success": false, "infinite": true, "error": msg}
	for k, v := range extra {
		resp[k] = v
	}
	c.JSON(http.StatusOK, resp)
}

// respondOK writes a success payload.
func respondOK(c *gin.Context, body gin.H) {
	body["success"] = true
	c.JSON(http.StatusOK, body)
}

// round rounds half away from zero for presentation. Values too large to
// scale are returned unchanged.
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	scaled := v * p
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return v
	}
	return math.Round(scaled) / p
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
