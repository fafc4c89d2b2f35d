package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/ledtween/stream"
)

// StatusSource reports the state of the animation loop.
type StatusSource interface {
	Status() stream.Status
}

type Api struct {
	addr   string
	source StatusSource
	mux    *http.ServeMux
}

// NewApi creates an Api serving static files from staticDir and the status
// of source.
func NewApi(addr string, staticDir string, source StatusSource) *Api {
	a := new(Api)
	a.addr = addr
	a.source = source
	a.mux = http.NewServeMux()
	a.mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	a.mux.HandleFunc("/status", a.handleStatus)
	return a
}

// Handler returns the HTTP handler for the Api.
func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.source.Status()); err != nil {
		log.Printf("Encode status: %v", err)
	}
}

func (a *Api) Serve() error {
	log.Printf("Listening on %s...", a.addr)
	return http.ListenAndServe(a.addr, a.mux)
}
