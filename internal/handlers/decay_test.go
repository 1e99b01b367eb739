package handlers

import (
	"net/http"
	"strings"
	"testing"

	"growth_decay/internal/models"
	"growth_decay/internal/service"
)

func TestDecayQuantity(t *testing.T) {
	r := newRealRouter()

	w := postJSON(r, "/api/v1/decay/quantity", `{"n0":100,"k":0.1,"t":5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	out := decode(t, w)
	if !out.Success || out.Raw["n"] != 60.6531 || out.Raw["percent"] != 60.65 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero n0", `{"n0":0,"k":0.1,"t":5}`, "N0 must be greater than 0"},
		{"zero k", `{"n0":100,"k":0,"t":5}`, "k must be greater than 0"},
		{"negative time", `{"n0":100,"k":0.1,"t":-1}`, "time must be greater than or equal to 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, "/api/v1/decay/quantity", tc.body)
			if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), tc.want) {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestDecayTime(t *testing.T) {
	r := newRealRouter()

	w := postJSON(r, "/api/v1/decay/time", `{"n0":100,"target_n":50,"k":0.1}`)
	out := decode(t, w)
	if w.Code != http.StatusOK || out.Raw["time"] != 6.9315 || out.Raw["percent"] != 50.0 {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/api/v1/decay/time", `{"n0":100,"target_n":0,"k":0.1}`)
	out = decode(t, w)
	if w.Code != http.StatusOK || out.Success || !out.Infinite {
		t.Fatalf("zero target: status=%d body=%s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/api/v1/decay/time", `{"n0":100,"target_n":150,"k":0.1}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("target above n0: status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestDecayRate(t *testing.T) {
	r := newRealRouter()

	w := postJSON(r, "/api/v1/decay/rate", `{"half_life":5730}`)
	out := decode(t, w)
	if w.Code != http.StatusOK || out.Raw["k"] != 0.000121 || out.Raw["from_half_life"] != true {
		t.Fatalf("half-life path: status=%d body=%s", w.Code, w.Body.String())
	}
	if _, ok := out.Raw["n0"]; ok {
		t.Fatalf("half-life path must not echo measurements: %s", w.Body.String())
	}

	w = postJSON(r, "/api/v1/decay/rate", `{"n0":100,"n_at_t":50,"t":10}`)
	out = decode(t, w)
	if w.Code != http.StatusOK || out.Raw["k"] != 0.069315 || out.Raw["half_life"] != 10.0 || out.Raw["verification"] != 50.0 {
		t.Fatalf("data path: status=%d body=%s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/api/v1/decay/rate", `{"n0":100,"n_at_t":100,"t":10}`)
	out = decode(t, w)
	if w.Code != http.StatusOK || out.Raw["half_life"] != nil || out.Raw["half_life_infinite"] != true {
		t.Fatalf("no decay: status=%d body=%s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/api/v1/decay/rate", `{"n0":100,"t":10}`)
	if w.Code != http.StatusBadRequest || decode(t, w).Error != errInvalidData {
		t.Fatalf("incomplete data: status=%d body=%s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/api/v1/decay/rate", `{"n0":50,"n_at_t":100,"t":10}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("growth data: status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestDecayRate_HalfLifeWins(t *testing.T) {
	md := &mockDecay{rateRes: service.DecayRateResult{K: 0.5, HalfLife: models.FiniteOutcome(1.386294), FromHalfLife: true}}
	r := newTestRouter(&service.Service{Decay: md})

	w := postJSON(r, "/api/v1/decay/rate", `{"half_life":1.386294,"n0":1,"n_at_t":2,"t":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if md.lastRate.HalfLife == nil || *md.lastRate.HalfLife != 1.386294 || md.lastRate.N0 != 0 {
		t.Fatalf("unexpected params: %+v", md.lastRate)
	}
	if out := decode(t, w); out.Raw["half_life"] != 1.3863 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestDecayInitialAndHalfLife(t *testing.T) {
	r := newRealRouter()

	w := postJSON(r, "/api/v1/decay/initial", `{"n":50,"k":0.1,"t":6.931471805599453}`)
	out := decode(t, w)
	if w.Code != http.StatusOK || out.Raw["n0"] != 100.0 {
		t.Fatalf("initial: status=%d body=%s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/api/v1/decay/half-life", `{"k":0.1}`)
	out = decode(t, w)
	if w.Code != http.StatusOK || out.Raw["half_life"] != 6.9315 {
		t.Fatalf("half-life: status=%d body=%s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/api/v1/decay/half-life", `{"k":-1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative k: status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestDecayTable(t *testing.T) {
	r := newRealRouter()

	w := postJSON(r, "/api/v1/decay/table", `{"n0":100,"k":0.1,"total_time":1,"step":0.1}`)
	out := decode(t, w)
	if w.Code != http.StatusOK || out.Raw["num_points"] != 11.0 {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	rows, _ := out.Raw["table"].([]interface{})
	first, _ := rows[0].(map[string]interface{})
	if first["n"] != 100.0 || first["percent"] != 100.0 {
		t.Fatalf("first row: %v", first)
	}

	w = postJSON(r, "/api/v1/decay/table", `{"n0":100,"k":0.1,"total_time":10,"step":0}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "step must be greater than 0") {
		t.Fatalf("zero step: status=%d body=%s", w.Code, w.Body.String())
	}
}
