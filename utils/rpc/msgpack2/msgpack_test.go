// This is a copy from gorilla's jsonrpc2 using msgpack
//
// Copyright 2009 The Go Authors. All rights reserved.
// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msgpack2_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	rpc "github.com/alpacahq/rpc/rpc2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	msgpack "github.com/vmihailenco/msgpack"

	"github.com/alpacahq/holidaystore/utils/rpc/msgpack2"
)

var errWeekend = errors.New("weekend")

type ShiftRequest struct {
	Day   int `msgpack:"day"`
	Shift int `msgpack:"shift"`
}

type ShiftResponse struct {
	Day int `msgpack:"day"`
}

type Weekdays struct{}

const defaultDay = 1

func (Weekdays) Shift(r *http.Request, req *ShiftRequest, res *ShiftResponse) error {
	if req.Day == 0 && req.Shift == 0 {
		// sentinel for requests without params
		res.Day = defaultDay
		return nil
	}
	res.Day = (req.Day + req.Shift) % 7
	if res.Day == 0 || res.Day == 6 {
		return errWeekend
	}
	return nil
}

func newServer() *rpc.Server {
	s := rpc.NewServer()
	s.RegisterCodec(msgpack2.NewCodec(), msgpack2.ContentType)
	_ = s.RegisterService(new(Weekdays), "")
	return s
}

func post(t *testing.T, s *rpc.Server, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	r, err := http.NewRequest(http.MethodPost, "http://localhost:5995/rpc", bytes.NewReader(body))
	require.NoError(t, err)
	r.Header.Set("Content-Type", msgpack2.ContentType)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

func execute(t *testing.T, s *rpc.Server, method string, req, res interface{}) error {
	t.Helper()
	require.True(t, s.HasMethod(method), "expected to be registered: %s", method)
	buf, err := msgpack2.EncodeClientRequest(method, req)
	require.NoError(t, err)
	w := post(t, s, buf)
	return msgpack2.DecodeClientResponse(w.Body, res)
}

func TestService(t *testing.T) {
	t.Parallel()
	s := newServer()

	var res ShiftResponse
	require.NoError(t, execute(t, s, "Weekdays.Shift", &ShiftRequest{Day: 1, Shift: 3}, &res))
	assert.Equal(t, 4, res.Day)

	err := execute(t, s, "Weekdays.Shift", &ShiftRequest{Day: 4, Shift: 2}, &res)
	require.Error(t, err)
	assert.Equal(t, errWeekend.Error(), err.Error())
	var rpcErr *msgpack2.Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, msgpack2.ErrServer, rpcErr.Code)
}

func TestServiceWithoutParams(t *testing.T) {
	t.Parallel()
	s := newServer()

	raw, err := msgpack.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "Weekdays.Shift",
		"id":      7,
	})
	require.NoError(t, err)
	w := post(t, s, raw)

	var res ShiftResponse
	require.NoError(t, msgpack2.DecodeClientResponse(w.Body, &res))
	assert.Equal(t, defaultDay, res.Day)
	assert.Equal(t, msgpack2.ContentType, w.Header().Get("Content-Type"))
}

func TestWrongVersion(t *testing.T) {
	t.Parallel()
	s := newServer()

	raw, err := msgpack.Marshal(map[string]interface{}{
		"jsonrpc": "1.0",
		"method":  "Weekdays.Shift",
		"id":      7,
	})
	require.NoError(t, err)
	w := post(t, s, raw)

	var res ShiftResponse
	err = msgpack2.DecodeClientResponse(w.Body, &res)
	var rpcErr *msgpack2.Error
	require.True(t, errors.As(err, &rpcErr), "got %v", err)
	assert.Equal(t, msgpack2.ErrInvalidReq, rpcErr.Code)
}

func TestDecodeNullResult(t *testing.T) {
	t.Parallel()
	data := []byte(`{"jsonrpc": "2.0", "id": 12345, "result": null}`)
	var obj interface{}
	require.NoError(t, json.Unmarshal(data, &obj))
	data, err := msgpack.Marshal(obj)
	require.NoError(t, err)

	var result interface{}
	err = msgpack2.DecodeClientResponse(bytes.NewReader(data), &result)
	assert.Equal(t, msgpack2.ErrNullResult, err)
	assert.Nil(t, result)
}
