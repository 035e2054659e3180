package frontend

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/alpacahq/holidaystore/utils"
	"github.com/alpacahq/holidaystore/utils/log"
)

type HeartbeatMessage struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	GitHash string `json:"git_hash"`
	Uptime  string `json:"uptime"`
	Regions int    `json:"regions"`
}

// Heartbeat reports whether the server is ready to answer queries.
type Heartbeat struct {
	startTime time.Time
	regions   int
	ready     uint32 // treated as bool
}

func NewHeartbeat(startTime time.Time, regions int) *Heartbeat {
	return &Heartbeat{startTime: startTime, regions: regions}
}

// SetReady flips the reported status.
func (h *Heartbeat) SetReady(ready bool) {
	var v uint32
	if ready {
		v = 1
	}
	atomic.StoreUint32(&h.ready, v)
}

func (h *Heartbeat) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	msg := HeartbeatMessage{
		Status:  "ready",
		Version: utils.Tag,
		GitHash: utils.GitHash,
		Uptime:  time.Since(h.startTime).String(),
		Regions: h.regions,
	}
	status := http.StatusOK
	if atomic.LoadUint32(&h.ready) == 0 {
		msg.Status = "not ready"
		status = http.StatusServiceUnavailable
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(msg); err != nil {
		log.Error("Failed to write heartbeat message - Error: %v", err)
	}
}
