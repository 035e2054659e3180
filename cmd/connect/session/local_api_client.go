package session

import (
	"fmt"
	"os"

	"github.com/alpacahq/holidaystore/frontend"
)

// NewLocalAPIClient serves the session from an in-process holiday service.
func NewLocalAPIClient(service *frontend.HolidayService) *LocalAPIClient {
	return &LocalAPIClient{service: service}
}

type LocalAPIClient struct {
	service *frontend.HolidayService
}

func (lc *LocalAPIClient) PrintConnectInfo() {
	fmt.Fprintf(os.Stderr, "Connected to the built-in holiday calendar\n")
}

func (lc *LocalAPIClient) ListRegions(req *frontend.ListRegionsRequest, resp *frontend.ListRegionsResponse) error {
	return lc.service.ListRegions(nil, req, resp)
}

func (lc *LocalAPIClient) ListHolidays(req *frontend.ListHolidaysRequest, resp *frontend.ListHolidaysResponse) error {
	return lc.service.ListHolidays(nil, req, resp)
}

func (lc *LocalAPIClient) GetMonth(req *frontend.MonthRequest, resp *frontend.MonthResponse) error {
	return lc.service.GetMonth(nil, req, resp)
}

func (lc *LocalAPIClient) IsBusinessDay(req *frontend.BusinessDayRequest, resp *frontend.BusinessDayResponse) error {
	return lc.service.IsBusinessDay(nil, req, resp)
}
