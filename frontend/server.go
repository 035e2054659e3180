package frontend

import (
	"context"
	"net/http"
	"time"

	rpc "github.com/alpacahq/rpc/rpc2"
	"github.com/alpacahq/rpc/rpc2/json2"

	"github.com/alpacahq/holidaystore/metrics"
	"github.com/alpacahq/holidaystore/utils"
	"github.com/alpacahq/holidaystore/utils/log"
	"github.com/alpacahq/holidaystore/utils/rpc/msgpack2"
)

type RPCServer struct {
	*rpc.Server
}

func (s *RPCServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("holidaystore-version", utils.GitHash)
	s.Server.ServeHTTP(w, r)
	metrics.RPCTotalRequestsTotal.Inc()
	metrics.RPCTotalRequestDuration.Observe(time.Since(start).Seconds())
}

// NewServer registers service under the name "HolidayService" with the
// JSON and msgpack codecs.
func NewServer(service *HolidayService) (*RPCServer, error) {
	s := &RPCServer{
		Server: rpc.NewServer(),
	}
	s.RegisterCodec(json2.NewCodec(), "application/json")
	s.RegisterCodec(json2.NewCodec(), "application/json;charset=UTF-8")
	s.RegisterCodec(msgpack2.NewCodec(), msgpack2.ContentType)
	s.RegisterInterceptFunc(intercept)
	s.RegisterAfterFunc(after)
	if err := s.RegisterService(service, ""); err != nil {
		log.Error("Failed to register service - Error: %v", err)
		return nil, err
	}
	return s, nil
}

type key int

const startTimeKey key = 0

func intercept(i *rpc.RequestInfo) *http.Request {
	return i.Request.WithContext(context.WithValue(i.Request.Context(), startTimeKey, time.Now()))
}

func after(i *rpc.RequestInfo) {
	if i.Error != nil {
		metrics.RPCFailedRequestsTotal.WithLabelValues(i.Method).Inc()
		log.Debug("rpc %s failed: %v", i.Method, i.Error)
		return
	}
	v := i.Request.Context().Value(startTimeKey)
	if v == nil {
		log.Error("start time not set on context")
		return
	}
	t, ok := v.(time.Time)
	if !ok {
		log.Error("start time not correct type")
		return
	}

	metrics.RPCSuccessfulRequestDuration.WithLabelValues(i.Method).Observe(time.Since(t).Seconds())
}
