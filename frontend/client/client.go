package client

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/alpacahq/holidaystore/frontend"
	"github.com/alpacahq/holidaystore/utils/rpc/msgpack2"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	BaseURL string
	http    *http.Client
}

// NewClient intializes a new holidaystore RPC client.
func NewClient(baseurl string) (cl *Client, err error) {
	if _, err = url.Parse(baseurl); err != nil {
		return nil, err
	}
	return &Client{
		BaseURL: baseurl,
		http:    &http.Client{Timeout: defaultTimeout},
	}, nil
}

// DoRPC calls HolidayService.<functionName> over msgpack2 and returns the
// typed response of that method.
func (cl *Client) DoRPC(functionName string, args interface{}) (response interface{}, err error) {
	if args == nil {
		return nil, fmt.Errorf("args must be non-nil - have: args: %v", args)
	}

	var result interface{}
	switch functionName {
	case "ListRegions":
		result = &frontend.ListRegionsResponse{}
	case "ListHolidays":
		result = &frontend.ListHolidaysResponse{}
	case "GetMonth":
		result = &frontend.MonthResponse{}
	case "IsBusinessDay":
		result = &frontend.BusinessDayResponse{}
	default:
		return nil, fmt.Errorf("unsupported RPC method %q", functionName)
	}

	message, err := msgpack2.EncodeClientRequest("HolidayService."+functionName, args)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		cl.BaseURL+"/rpc", bytes.NewBuffer(message))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", msgpack2.ContentType)
	resp, err := cl.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, err := ioutil.ReadAll(resp.Body)
		errText := string(bodyBytes)
		if err != nil {
			errText = err.Error()
		}
		return nil, fmt.Errorf("response error (%d): %s", resp.StatusCode, errText)
	}

	if err = msgpack2.DecodeClientResponse(resp.Body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// CloseIdleConnections releases the keep-alive connections of the client.
func (cl *Client) CloseIdleConnections() {
	cl.http.CloseIdleConnections()
}
