package handlers

import (
	"net/http"

	"growth_decay/internal/service"

	"github.com/gin-gonic/gin"
)

type quantityRequest struct {
	N0 *float64 `json:"n0" binding:"required"`
	K  *float64 `json:"k" binding:"required"`
	T  *float64 `json:"t" binding:"required"`
}

type decayTimeRequest struct {
	N0      *float64 `json:"n0" binding:"required"`
	TargetN *float64 `json:"target_n" binding:"required"`
	K       *float64 `json:"k" binding:"required"`
}

// decayRateRequest accepts either half_life or the n0/n_at_t/t triple.
type decayRateRequest struct {
	HalfLife *float64 `json:"half_life"`
	N0       *float64 `json:"n0"`
	NAtT     *float64 `json:"n_at_t"`
	T        *float64 `json:"t"`
}

type initialQuantityRequest struct {
	N *float64 `json:"n" binding:"required"`
	K *float64 `json:"k" binding:"required"`
	T *float64 `json:"t" binding:"required"`
}

type halfLifeRequest struct {
	K *float64 `json:"k" binding:"required"`
}

type decayTableRequest struct {
	N0        *float64 `json:"n0" binding:"required"`
	K         *float64 `json:"k" binding:"required"`
	TotalTime *float64 `json:"total_time" binding:"required"`
	Step      *float64 `json:"step" binding:"required"`
}

// DecayRateRequest is an exported model for Swagger docs of the decay rate payload.
type DecayRateRequest struct {
	// Half-life; when present the other fields are ignored
	HalfLife float64 `json:"half_life,omitempty" example:"5730"`
	// Initial quantity
	N0 float64 `json:"n0,omitempty" example:"100"`
	// Quantity measured at t
	NAtT float64 `json:"n_at_t,omitempty" example:"50"`
	// Elapsed time
	T float64 `json:"t,omitempty" example:"10"`
}

// QuantityRequest is an exported model for Swagger docs of the quantity payload.
type QuantityRequest struct {
	// Initial quantity, greater than 0
	N0 float64 `json:"n0" example:"100"`
	// Decay constant, greater than 0
	K float64 `json:"k" example:"0.1"`
	// Elapsed time
	T float64 `json:"t" example:"5"`
}

// DecayTimeRequest is an exported model for Swagger docs of the decay time payload.
type DecayTimeRequest struct {
	N0 float64 `json:"n0" example:"100"`
	// Quantity to reach, between 0 and n0
	TargetN float64 `json:"target_n" example:"25"`
	K       float64 `json:"k" example:"0.1"`
}

// InitialQuantityRequest is an exported model for Swagger docs of the initial quantity payload.
type InitialQuantityRequest struct {
	// Quantity measured at t
	N float64 `json:"n" example:"60.65"`
	K float64 `json:"k" example:"0.1"`
	T float64 `json:"t" example:"5"`
}

// HalfLifeRequest is an exported model for Swagger docs of the half-life payload.
type HalfLifeRequest struct {
	// Decay constant, greater than 0
	K float64 `json:"k" example:"0.000121"`
}

// DecayTableRequest is an exported model for Swagger docs of the decay table payload.
type DecayTableRequest struct {
	N0 float64 `json:"n0" example:"100"`
	K  float64 `json:"k" example:"0.1"`
	// Last sampled time; the table covers [0, total_time]
	TotalTime float64 `json:"total_time" example:"50"`
	// Sampling step. At most 1000 rows are allowed
	Step float64 `json:"step" example:"5"`
}

// @Summary      Quantity at time t
// @Description  N(t) = N0·e^(-k·t)
// @Tags         decay
// @Accept       json
// @Produce      json
// @Param        body  body      QuantityRequest  true  "Initial quantity, decay constant and time"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /api/v1/decay/quantity [post]
func (h *Handler) decayQuantity(c *gin.Context) {
	var req quantityRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	res, err := h.services.Decay.Quantity(service.QuantityParams{N0: *req.N0, K: *req.K, T: *req.T})
	if err != nil {
		h.respondError(c, "decay_quantity_rejected", err)
		return
	}
	respondOK(c, gin.H{
		"n":       round(res.N, decQuantity),
		"percent": round(res.Percent, decPercent),
		"n0":      res.N0,
		"t":       res.T,
		"k":       res.K,
		"formula": res.Formula,
	})
}

// @Summary      Time to reach a quantity
// @Description  Infinite when the target quantity is 0.
// @Tags         decay
// @Accept       json
// @Produce      json
// @Param        body  body      DecayTimeRequest  true  "Initial quantity, target and decay constant"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /api/v1/decay/time [post]
func (h *Handler) decayTime(c *gin.Context) {
	var req decayTimeRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	res, err := h.services.Decay.TimeToReach(service.DecayTimeParams{N0: *req.N0, Target: *req.TargetN, K: *req.K})
	if err != nil {
		h.respondError(c, "decay_time_rejected", err)
		return
	}
	if res.Infinite {
		respondInfinite(c, "reaching exactly 0 takes infinite time", gin.H{
			"target_n": res.Target,
			"n0":       res.N0,
			"k":        res.K,
		})
		return
	}
	respondOK(c, gin.H{
		"time":     round(res.Time, decDecayTime),
		"target_n": res.Target,
		"percent":  round(res.Percent, decPercent),
		"n0":       res.N0,
		"k":        res.K,
	})
}

// @Summary      Decay constant
// @Description  From half_life, or from n0, n_at_t and t.
// @Tags         decay
// @Accept       json
// @Produce      json
// @Param        body  body      DecayRateRequest  true  "Half-life or experimental data"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /api/v1/decay/rate [post]
func (h *Handler) decayRate(c *gin.Context) {
	var req decayRateRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	params := service.DecayRateParams{HalfLife: req.HalfLife}
	if req.HalfLife == nil {
		if req.N0 == nil || req.NAtT == nil || req.T == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errInvalidData})
			return
		}
		params.N0, params.NAtT, params.T = *req.N0, *req.NAtT, *req.T
	}

	res, err := h.services.Decay.SolveRate(params)
	if err != nil {
		h.respondError(c, "decay_rate_rejected", err)
		return
	}

	body := gin.H{
		"k":              round(res.K, decDecayRate),
		"formula":        res.Formula,
		"from_half_life": res.FromHalfLife,
	}
	if hl, finite := res.HalfLife.Get(); finite {
		body["half_life"] = round(hl, decDecayTime)
	} else {
		body["half_life"] = nil
		body["half_life_infinite"] = true
	}
	if !res.FromHalfLife {
		body["n0"] = res.N0
		body["n_at_t"] = res.NAtT
		body["t"] = res.T
		body["percent"] = round(res.Percent, decPercent)
		body["verification"] = round(res.Verification, decQuantity)
	}
	respondOK(c, body)
}

// @Summary      Initial quantity
// @Description  N0 = N·e^(k·t)
// @Tags         decay
// @Accept       json
// @Produce      json
// @Param        body  body      InitialQuantityRequest  true  "Measured quantity, decay constant and time"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /api/v1/decay/initial [post]
func (h *Handler) decayInitial(c *gin.Context) {
	var req initialQuantityRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	res, err := h.services.Decay.InitialQuantity(service.InitialQuantityParams{N: *req.N, K: *req.K, T: *req.T})
	if err != nil {
		h.respondError(c, "decay_initial_rejected", err)
		return
	}
	respondOK(c, gin.H{
		"n0":      round(res.N0, decQuantity),
		"n":       res.N,
		"k":       res.K,
		"t":       res.T,
		"formula": res.Formula,
	})
}

// @Summary      Half-life
// @Description  t_half = ln2 / k
// @Tags         decay
// @Accept       json
// @Produce      json
// @Param        body  body      HalfLifeRequest  true  "Decay constant"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /api/v1/decay/half-life [post]
func (h *Handler) decayHalfLife(c *gin.Context) {
	var req halfLifeRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	res, err := h.services.Decay.HalfLife(*req.K)
	if err != nil {
		h.respondError(c, "decay_half_life_rejected", err)
		return
	}
	respondOK(c, gin.H{
		"k":         res.K,
		"half_life": round(res.HalfLife, decDecayTime),
	})
}

// @Summary      Decay table
// @Description  Samples N(t) and percent remaining every step up to total_time inclusive.
// @Tags         decay
// @Accept       json
// @Produce      json
// @Param        body  body      DecayTableRequest  true  "Decay constants and time range"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      422   {object}  map[string]interface{}
// @Router       /api/v1/decay/table [post]
func (h *Handler) decayTable(c *gin.Context) {
	var req decayTableRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	res, err := h.services.Decay.Table(service.DecayTableParams{
		N0: *req.N0, K: *req.K, Total: *req.TotalTime, Step: *req.Step,
	})
	if err != nil {
		h.respondError(c, "decay_table_rejected", err)
		return
	}
	rows := make([]gin.H, len(res.Points))
	for i, p := range res.Points {
		rows[i] = gin.H{
			"time":    round(p.Time, decDecayTime),
			"n":       round(p.Quantity, decQuantity),
			"percent": round(p.PercentRemaining, decPercent),
		}
	}
	respondOK(c, gin.H{
		"table":      rows,
		"n0":         res.N0,
		"k":          res.K,
		"half_life":  round(res.HalfLife, decDecayTime),
		"num_points": len(rows),
	})
}
