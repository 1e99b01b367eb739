package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type swaggerDoc struct {
	Definitions map[string]json.RawMessage `json:"definitions"`
	Paths       map[string]map[string]struct {
		Parameters []struct {
			In     string `json:"in"`
			Schema struct {
				Ref string `json:"$ref"`
			} `json:"schema"`
		} `json:"parameters"`
	} `json:"paths"`
}

func TestSwaggerDoc_EveryPostRouteHasABodySchema(t *testing.T) {
	r := newRealRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var doc swaggerDoc
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json is not valid JSON: %v", err)
	}

	posts := 0
	for path, ops := range doc.Paths {
		op, ok := ops["post"]
		if !ok {
			continue
		}
		posts++
		if len(op.Parameters) != 1 || op.Parameters[0].In != "body" {
			t.Fatalf("%s: expected one body parameter, got %+v", path, op.Parameters)
		}
		name := strings.TrimPrefix(op.Parameters[0].Schema.Ref, "#/definitions/")
		if _, ok := doc.Definitions[name]; !ok {
			t.Fatalf("%s: schema %q is not defined", path, name)
		}
	}
	if posts != 11 {
		t.Fatalf("got %d POST routes, want 11", posts)
	}
}
