package frontend

import (
	"net/http"
	"net/http/pprof"

	"github.com/alpacahq/holidaystore/utils/log"
)

// NewProfileHandler returns a mux with the pprof endpoints under /pprof/.
func NewProfileHandler() http.Handler {
	r := http.NewServeMux()
	r.HandleFunc("/pprof/", pprof.Index)
	r.HandleFunc("/pprof/cmdline", pprof.Cmdline)
	r.HandleFunc("/pprof/profile", pprof.Profile)
	r.HandleFunc("/pprof/symbol", pprof.Symbol)
	r.HandleFunc("/pprof/trace", pprof.Trace)
	return r
}

// Profile serves the pprof endpoints on address until the listener fails.
func Profile(address string) {
	if err := http.ListenAndServe(address, NewProfileHandler()); err != nil {
		log.Error("listen and serve pprof endpoints. err=%v", err)
	}
}
