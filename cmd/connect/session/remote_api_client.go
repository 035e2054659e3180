package session

import (
	"fmt"
	"os"

	"github.com/alpacahq/holidaystore/frontend"
)

// NewRemoteAPIClient generates a new client struct.
func NewRemoteAPIClient(url string, client RPCClient) *RemoteAPIClient {
	return &RemoteAPIClient{url: url, rpcClient: client}
}

// RemoteAPIClient forwards session commands to a holidaystore server.
type RemoteAPIClient struct {
	// url is the address of the server.
	url string
	// rpcClient is the remote client.
	rpcClient RPCClient
}

func (rc *RemoteAPIClient) PrintConnectInfo() {
	fmt.Fprintf(os.Stderr, "Connected to remote instance at: %v\n", rc.url)
}

func (rc *RemoteAPIClient) ListRegions(req *frontend.ListRegionsRequest, resp *frontend.ListRegionsResponse) error {
	respI, err := rc.rpcClient.DoRPC("ListRegions", req)
	if err != nil {
		return fmt.Errorf("DoRPC:ListRegions error:%w", err)
	}
	val, ok := respI.(*frontend.ListRegionsResponse)
	if !ok {
		return fmt.Errorf("[bug] unexpected data type returned from DoRPC:ListRegions func. resp=%v", respI)
	}
	*resp = *val
	return nil
}

func (rc *RemoteAPIClient) ListHolidays(req *frontend.ListHolidaysRequest, resp *frontend.ListHolidaysResponse) error {
	respI, err := rc.rpcClient.DoRPC("ListHolidays", req)
	if err != nil {
		return fmt.Errorf("DoRPC:ListHolidays error:%w", err)
	}
	val, ok := respI.(*frontend.ListHolidaysResponse)
	if !ok {
		return fmt.Errorf("[bug] unexpected data type returned from DoRPC:ListHolidays func. resp=%v", respI)
	}
	*resp = *val
	return nil
}

func (rc *RemoteAPIClient) GetMonth(req *frontend.MonthRequest, resp *frontend.MonthResponse) error {
	respI, err := rc.rpcClient.DoRPC("GetMonth", req)
	if err != nil {
		return fmt.Errorf("DoRPC:GetMonth error:%w", err)
	}
	val, ok := respI.(*frontend.MonthResponse)
	if !ok {
		return fmt.Errorf("[bug] unexpected data type returned from DoRPC:GetMonth func. resp=%v", respI)
	}
	*resp = *val
	return nil
}

func (rc *RemoteAPIClient) IsBusinessDay(req *frontend.BusinessDayRequest, resp *frontend.BusinessDayResponse) error {
	respI, err := rc.rpcClient.DoRPC("IsBusinessDay", req)
	if err != nil {
		return fmt.Errorf("DoRPC:IsBusinessDay error:%w", err)
	}
	val, ok := respI.(*frontend.BusinessDayResponse)
	if !ok {
		return fmt.Errorf("[bug] unexpected data type returned from DoRPC:IsBusinessDay func. resp=%v", respI)
	}
	*resp = *val
	return nil
}
