package handlers

import (
	"growth_decay/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTOs. Pointers make "missing" distinguishable from zero.
type temperatureRequest struct {
	Tm *float64 `json:"tm" binding:"required"`
	C  *float64 `json:"c" binding:"required"`
	K  *float64 `json:"k" binding:"required"`
	T  *float64 `json:"t" binding:"required"`
}

type coolingTimeRequest struct {
	Tm         *float64 `json:"tm" binding:"required"`
	C          *float64 `json:"c" binding:"required"`
	K          *float64 `json:"k" binding:"required"`
	TargetTemp *float64 `json:"target_temp" binding:"required"`
}

type coolingRateRequest struct {
	T0      *float64 `json:"t0" binding:"required"`
	Tm      *float64 `json:"tm" binding:"required"`
	TempAtT *float64 `json:"temp_at_t" binding:"required"`
	T       *float64 `json:"t" binding:"required"`
}

type offsetRequest struct {
	InitialTemp *float64 `json:"initial_temp" binding:"required"`
	Tm          *float64 `json:"tm" binding:"required"`
}

type coolingTableRequest struct {
	Tm        *float64 `json:"tm" binding:"required"`
	C         *float64 `json:"c" binding:"required"`
	K         *float64 `json:"k" binding:"required"`
	TotalTime *float64 `json:"total_time" binding:"required"`
	Step      *float64 `json:"step" binding:"required"`
}

// TemperatureRequest is an exported model for Swagger docs of the temperature payload.
type TemperatureRequest struct {
	// Ambient temperature
	Tm float64 `json:"tm" example:"20"`
	// Offset constant, T0 - Tm
	C float64 `json:"c" example:"70"`
	// Rate constant (negative cools)
	K float64 `json:"k" example:"-0.05"`
	// Elapsed time (minutes)
	T float64 `json:"t" example:"10"`
}

// CoolingTimeRequest is an exported model for Swagger docs of the cooling time payload.
type CoolingTimeRequest struct {
	// Ambient temperature
	Tm float64 `json:"tm" example:"20"`
	// Offset constant, T0 - Tm
	C float64 `json:"c" example:"70"`
	// Rate constant
	K float64 `json:"k" example:"-0.05"`
	// Temperature to reach
	TargetTemp float64 `json:"target_temp" example:"55"`
}

// CoolingRateRequest is an exported model for Swagger docs of the cooling rate payload.
type CoolingRateRequest struct {
	// Initial temperature
	T0 float64 `json:"t0" example:"90"`
	// Ambient temperature
	Tm float64 `json:"tm" example:"20"`
	// Temperature measured at t
	TempAtT float64 `json:"temp_at_t" example:"55"`
	// Elapsed time (minutes), greater than 0
	T float64 `json:"t" example:"10"`
}

// OffsetRequest is an exported model for Swagger docs of the offset payload.
type OffsetRequest struct {
	InitialTemp float64 `json:"initial_temp" example:"90"`
	Tm          float64 `json:"tm" example:"20"`
}

// CoolingTableRequest is an exported model for Swagger docs of the cooling table payload.
type CoolingTableRequest struct {
	Tm float64 `json:"tm" example:"20"`
	C  float64 `json:"c" example:"70"`
	K  float64 `json:"k" example:"-0.05"`
	// Last sampled time; the table covers [0, total_time]
	TotalTime float64 `json:"total_time" example:"60"`
	// Sampling step. At most 1000 rows are allowed
	Step float64 `json:"step" example:"5"`
}

// @Summary      Temperature at time t
// @Description  T(t) = Tm + C·e^(K·t)
// @Tags         cooling
// @Accept       json
// @Produce      json
// @Param        body  body      TemperatureRequest  true  "Model constants and time"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /api/v1/cooling/temperature [post]
func (h *Handler) coolingTemperature(c *gin.Context) {
	var req temperatureRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	res, err := h.services.Cooling.Temperature(service.TemperatureParams{
		Tm: *req.Tm, C: *req.C, K: *req.K, T: *req.T,
	})
	if err != nil {
		h.respondError(c, "cooling_temperature_rejected", err)
		return
	}
	respondOK(c, gin.H{
		"temperature": round(res.Temperature, decTemperature),
		"time":        res.Time,
		"formula":     res.Formula,
	})
}

// @Summary      Time to reach a temperature
// @Description  Infinite when the target equals the ambient temperature.
// @Tags         cooling
// @Accept       json
// @Produce      json
// @Param        body  body      CoolingTimeRequest  true  "Model constants and target temperature"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /api/v1/cooling/time [post]
func (h *Handler) coolingTime(c *gin.Context) {
	var req coolingTimeRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	res, err := h.services.Cooling.TimeToReach(service.CoolingTimeParams{
		Tm: *req.Tm, C: *req.C, K: *req.K, Target: *req.TargetTemp,
	})
	if err != nil {
		h.respondError(c, "cooling_time_rejected", err)
		return
	}
	if res.Infinite {
		respondInfinite(c, "the object never reaches exactly that temperature", gin.H{
			"target_temp": res.Target,
		})
		return
	}
	respondOK(c, gin.H{
		"time":        round(res.Minutes, decTemperature),
		"time_hours":  round(res.Hours, decTemperature),
		"target_temp": res.Target,
	})
}

// @Summary      Fit K from measurements
// @Description  C = T0 - Tm, K = ln((T(t) - Tm) / C) / t
// @Tags         cooling
// @Accept       json
// @Produce      json
// @Param        body  body      CoolingRateRequest  true  "Initial, ambient and measured temperatures"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /api/v1/cooling/rate [post]
func (h *Handler) coolingRate(c *gin.Context) {
	var req coolingRateRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	res, err := h.services.Cooling.SolveRate(service.CoolingRateParams{
		T0: *req.T0, Tm: *req.Tm, TempAtT: *req.TempAtT, T: *req.T,
	})
	if err != nil {
		h.respondError(c, "cooling_rate_rejected", err)
		return
	}
	respondOK(c, gin.H{
		"k":              round(res.K, decCoolingRate),
		"c":              round(res.C, decTemperature),
		"tm":             res.Tm,
		"t0":             res.T0,
		"verification":   round(res.Verification, decTemperature),
		"verification_t": res.At,
		"process":        res.Process,
		"formula":        res.Formula,
	})
}

// @Summary      Offset constant C
// @Description  C = T_initial - Tm with a sign interpretation.
// @Tags         cooling
// @Accept       json
// @Produce      json
// @Param        body  body      OffsetRequest  true  "Initial and ambient temperatures"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /api/v1/cooling/offset [post]
func (h *Handler) coolingOffset(c *gin.Context) {
	var req offsetRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	res, err := h.services.Cooling.Offset(service.OffsetParams{Initial: *req.InitialTemp, Tm: *req.Tm})
	if err != nil {
		h.respondError(c, "cooling_offset_rejected", err)
		return
	}
	respondOK(c, gin.H{
		"c":            round(res.C, decTemperature),
		"initial_temp": res.Initial,
		"tm":           res.Tm,
		"interpretation": gin.H{
			"type":        res.Class,
			"description": res.Class.Description(),
			"behavior":    res.Class.Behavior(),
		},
		"formula": res.Formula,
	})
}

// @Summary      Temperature table
// @Description  Samples T(t) every step up to total_time inclusive (max 1000 points by default).
// @Tags         cooling
// @Accept       json
// @Produce      json
// @Param        body  body      CoolingTableRequest  true  "Model constants and time range"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /api/v1/cooling/table [post]
func (h *Handler) coolingTable(c *gin.Context) {
	var req coolingTableRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	res, err := h.services.Cooling.Table(service.CoolingTableParams{
		Tm: *req.Tm, C: *req.C, K: *req.K, Total: *req.TotalTime, Step: *req.Step,
	})
	if err != nil {
		h.respondError(c, "cooling_table_rejected", err)
		return
	}
	rows := make([]gin.H, len(res.Points))
	for i, p := range res.Points {
		rows[i] = gin.H{
			"time":        round(p.Time, decTemperature),
			"temperature": round(p.Temperature, decTemperature),
		}
	}
	respondOK(c, gin.H{
		"table":      rows,
		"tm":         res.Tm,
		"c":          res.C,
		"k":          res.K,
		"num_points": len(rows),
	})
}
