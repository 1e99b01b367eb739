package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"growth_decay/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockCooling struct {
	temperatureRes service.TemperatureResult
	timeRes        service.CoolingTimeResult
	rateRes        service.CoolingRateResult
	offsetRes      service.OffsetResult
	tableRes       service.CoolingTableResult
	err            error

	lastTemperature service.TemperatureParams
	lastTime        service.CoolingTimeParams
	lastTable       service.CoolingTableParams
	calls           int
}

func (m *mockCooling) Temperature(p service.TemperatureParams) (service.TemperatureResult, error) {
	m.calls++
	m.lastTemperature = p
	return m.temperatureRes, m.err
}
func (m *mockCooling) TimeToReach(p service.CoolingTimeParams) (service.CoolingTimeResult, error) {
	m.calls++
	m.lastTime = p
	return m.timeRes, m.err
}
func (m *mockCooling) SolveRate(p service.CoolingRateParams) (service.CoolingRateResult, error) {
	m.calls++
	return m.rateRes, m.err
}
func (m *mockCooling) Offset(p service.OffsetParams) (service.OffsetResult, error) {
	m.calls++
	return m.offsetRes, m.err
}
func (m *mockCooling) Table(p service.CoolingTableParams) (service.CoolingTableResult, error) {
	m.calls++
	m.lastTable = p
	return m.tableRes, m.err
}

type mockDecay struct {
	quantityRes service.QuantityResult
	timeRes     service.DecayTimeResult
	rateRes     service.DecayRateResult
	initialRes  service.InitialQuantityResult
	halfLifeRes service.HalfLifeResult
	tableRes    service.DecayTableResult
	err         error

	lastRate service.DecayRateParams
	calls    int
}

func (m *mockDecay) Quantity(p service.QuantityParams) (service.QuantityResult, error) {
	m.calls++
	return m.quantityRes, m.err
}
func (m *mockDecay) TimeToReach(p service.DecayTimeParams) (service.DecayTimeResult, error) {
	m.calls++
	return m.timeRes, m.err
}
func (m *mockDecay) SolveRate(p service.DecayRateParams) (service.DecayRateResult, error) {
	m.calls++
	m.lastRate = p
	return m.rateRes, m.err
}
func (m *mockDecay) InitialQuantity(p service.InitialQuantityParams) (service.InitialQuantityResult, error) {
	m.calls++
	return m.initialRes, m.err
}
func (m *mockDecay) HalfLife(k float64) (service.HalfLifeResult, error) {
	m.calls++
	return m.halfLifeRes, m.err
}
func (m *mockDecay) Table(p service.DecayTableParams) (service.DecayTableResult, error) {
	m.calls++
	return m.tableRes, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// newRealRouter wires the production calculators.
func newRealRouter() *gin.Engine {
	return newTestRouter(service.NewService(service.Limits{}))
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}
