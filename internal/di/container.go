package di

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alpacahq/holidaystore/calendar"
	"github.com/alpacahq/holidaystore/clock"
	"github.com/alpacahq/holidaystore/frontend"
	"github.com/alpacahq/holidaystore/utils"
	"github.com/alpacahq/holidaystore/utils/log"
)

// Container builds the services of a holidaystore process once and hands
// out the same instances afterwards. It is not safe for concurrent use;
// resolve everything during startup.
type Container struct {
	config         *utils.Config
	clock          clock.Clock
	registry       *calendar.Registry
	holidayService *frontend.HolidayService
	rpcServer      *frontend.RPCServer
	heartbeat      *frontend.Heartbeat
	httpHandler    http.Handler
}

func NewContainer(cfg *utils.Config) *Container {
	if cfg == nil {
		cfg = utils.NewDefaultConfig()
	}
	return &Container{config: cfg}
}

// WithClock replaces the system clock, e.g. to pin "today" in tests.
func (c *Container) WithClock(clk clock.Clock) *Container {
	c.clock = clk
	return c
}

func (c *Container) GetConfig() *utils.Config {
	return c.config
}

func (c *Container) GetClock() clock.Clock {
	if c.clock != nil {
		return c.clock
	}
	c.clock = clock.NewSystem()
	return c.clock
}

// GetRegistry returns the built-in regions overlaid with the configured ones.
func (c *Container) GetRegistry() (*calendar.Registry, error) {
	if c.registry != nil {
		return c.registry, nil
	}
	registry, err := c.config.Registry()
	if err != nil {
		return nil, err
	}
	log.Debug("registered regions: %v", registry.Regions())
	c.registry = registry
	return c.registry, nil
}

func (c *Container) GetHolidayService() (*frontend.HolidayService, error) {
	if c.holidayService != nil {
		return c.holidayService, nil
	}
	registry, err := c.GetRegistry()
	if err != nil {
		return nil, err
	}
	c.holidayService = frontend.NewHolidayService(registry, c.GetClock(),
		c.config.Timezone, c.config.DefaultRegion)
	return c.holidayService, nil
}

func (c *Container) GetRPCServer() (*frontend.RPCServer, error) {
	if c.rpcServer != nil {
		return c.rpcServer, nil
	}
	service, err := c.GetHolidayService()
	if err != nil {
		return nil, err
	}
	server, err := frontend.NewServer(service)
	if err != nil {
		return nil, err
	}
	c.rpcServer = server
	return c.rpcServer, nil
}

func (c *Container) GetHeartbeat() (*frontend.Heartbeat, error) {
	if c.heartbeat != nil {
		return c.heartbeat, nil
	}
	registry, err := c.GetRegistry()
	if err != nil {
		return nil, err
	}
	c.heartbeat = frontend.NewHeartbeat(c.config.StartTime, len(registry.Regions()))
	return c.heartbeat, nil
}

// GetHTTPHandler routes /rpc, /heartbeat and /metrics.
func (c *Container) GetHTTPHandler() (http.Handler, error) {
	if c.httpHandler != nil {
		return c.httpHandler, nil
	}
	server, err := c.GetRPCServer()
	if err != nil {
		return nil, err
	}
	heartbeat, err := c.GetHeartbeat()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/rpc", server)
	mux.Handle("/heartbeat", heartbeat)
	mux.Handle("/metrics", promhttp.Handler())
	c.httpHandler = mux
	return c.httpHandler, nil
}
