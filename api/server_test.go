package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matt-g-everett/ledtween/stream"
)

type fixedStatus stream.Status

func (f fixedStatus) Status() stream.Status {
	return stream.Status(f)
}

func TestStatusEndpoint(t *testing.T) {
	a := NewApi(":0", t.TempDir(), fixedStatus{Scene: "intro", ActiveClips: 3, Frames: 42})

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got stream.Status
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if got.Scene != "intro" || got.ActiveClips != 3 || got.Frames != 42 {
		t.Errorf("unexpected status %+v", got)
	}
}

func TestStatusRejectsPost(t *testing.T) {
	a := NewApi(":0", t.TempDir(), fixedStatus{})

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/status", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}
