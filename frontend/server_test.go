package frontend_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alpacahq/rpc/rpc2/json2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alpacahq/holidaystore/frontend"
	"github.com/alpacahq/holidaystore/frontend/client"
	"github.com/alpacahq/holidaystore/utils/rpc/msgpack2"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	serv, err := frontend.NewServer(newService(t))
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("/rpc", serv)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestNewServer(t *testing.T) {
	t.Parallel()
	serv, err := frontend.NewServer(newService(t))
	require.NoError(t, err)
	for _, method := range []string{"ListRegions", "ListHolidays", "GetMonth", "IsBusinessDay"} {
		assert.True(t, serv.HasMethod("HolidayService."+method), method)
	}
	assert.False(t, serv.HasMethod("HolidayService.build"))
}

func TestMsgpackRoundTrip(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	cl, err := client.NewClient(ts.URL)
	require.NoError(t, err)
	defer cl.CloseIdleConnections()

	resp, err := cl.DoRPC("ListHolidays", &frontend.ListHolidaysRequest{Region: "US", Year: 2024})
	require.NoError(t, err)
	holidays, ok := resp.(*frontend.ListHolidaysResponse)
	require.True(t, ok)
	require.Len(t, holidays.Holidays, 11)
	assert.Equal(t, "2024-01-15", holidays.Holidays[1].Date)
	assert.Equal(t, "MLK Jr. Day", holidays.Holidays[1].Name)

	resp, err = cl.DoRPC("ListRegions", &frontend.ListRegionsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"IN", "US"}, resp.(*frontend.ListRegionsResponse).Regions)

	resp, err = cl.DoRPC("IsBusinessDay", &frontend.BusinessDayRequest{Date: "2024-11-28"})
	require.NoError(t, err)
	bd := resp.(*frontend.BusinessDayResponse)
	assert.False(t, bd.BusinessDay)
	assert.Equal(t, "Thanksgiving", bd.Holiday)
	assert.Equal(t, "2024-11-29", bd.NextBusinessDay)
}

func TestMsgpackError(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	cl, err := client.NewClient(ts.URL)
	require.NoError(t, err)
	defer cl.CloseIdleConnections()

	_, err = cl.DoRPC("ListHolidays", &frontend.ListHolidaysRequest{Region: "ZZ"})
	require.Error(t, err)
	var rpcErr *msgpack2.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Contains(t, rpcErr.Message, "unknown region")

	_, err = cl.DoRPC("Nope", &frontend.ListRegionsRequest{})
	assert.Error(t, err)
	_, err = cl.DoRPC("ListRegions", nil)
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	body, err := json2.EncodeClientRequest("HolidayService.GetMonth",
		&frontend.MonthRequest{Region: "US", Year: 2025, Month: 7})
	require.NoError(t, err)
	httpClient := ts.Client()
	httpClient.Timeout = 5 * time.Second
	resp, err := httpClient.Post(ts.URL+"/rpc", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var month frontend.MonthResponse
	require.NoError(t, json2.DecodeClientResponse(resp.Body, &month))
	assert.Equal(t, 7, month.Month)
	// July 2025 starts on a Tuesday
	first := month.Weeks[0]
	assert.Equal(t, 0, first[1].Day)
	assert.Equal(t, 1, first[2].Day)
	assert.Equal(t, []string{"Independence Day"}, first[5].Holidays)
}

func TestHeartbeat(t *testing.T) {
	t.Parallel()
	hb := frontend.NewHeartbeat(time.Now().Add(-time.Minute), 2)

	rec := httptest.NewRecorder()
	hb.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/heartbeat", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	hb.SetReady(true)
	rec = httptest.NewRecorder()
	hb.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/heartbeat", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var msg frontend.HeartbeatMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&msg))
	assert.Equal(t, "ready", msg.Status)
	assert.Equal(t, 2, msg.Regions)
	assert.NotEmpty(t, msg.Uptime)
}

func TestProfileHandler(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	frontend.NewProfileHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pprof/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
