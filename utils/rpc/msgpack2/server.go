// This is a copy from gorilla's jsonrpc2 using msgpack
//
// Copyright 2009 The Go Authors. All rights reserved.
// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msgpack2

import (
	"errors"
	"net/http"

	rpc "github.com/alpacahq/rpc/rpc2"
	msgpack "github.com/vmihailenco/msgpack"
)

const (
	Version     = "2.0"
	ContentType = "application/x-msgpack"
)

var errNoParams = errors.New("rpc: request has no params")

// serverRequest represents a JSON-RPC request received by the server.
type serverRequest struct {
	Version string `msgpack:"jsonrpc"`

	// A String containing the name of the method to be invoked.
	Method string `msgpack:"method"`

	// A Structured value to pass as arguments to the method.
	Params interface{} `msgpack:"params"`

	// The request id. MUST be a string, number or null.
	ID interface{} `msgpack:"id"`
}

// serverResponse represents a JSON-RPC response returned by the server.
type serverResponse struct {
	Version string `msgpack:"jsonrpc"`

	// The Object that was returned by the invoked method. This must be null
	// in case there was an error invoking the method.
	Result interface{} `msgpack:"result,omitempty"`

	// An Error object if there was an error invoking the method. It must be
	// null if there was no error.
	Error *Error `msgpack:"error,omitempty"`

	// This must be the same id as the request it is responding to.
	ID interface{} `msgpack:"id"`
}

// NewCodec returns a new msgpack Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Codec creates a CodecRequest to process each request.
type Codec struct{}

// NewRequest returns a CodecRequest.
func (c *Codec) NewRequest(r *http.Request) rpc.CodecRequest {
	return newCodecRequest(r)
}

func newCodecRequest(r *http.Request) *CodecRequest {
	req := new(serverRequest)
	err := msgpack.NewDecoder(r.Body).Decode(req)
	if err != nil {
		err = &Error{
			Code:    ErrParse,
			Message: err.Error(),
			Data:    req,
		}
	} else if req.Version != Version {
		err = &Error{
			Code:    ErrInvalidReq,
			Message: "jsonrpc must be " + Version,
			Data:    req,
		}
	}
	_ = r.Body.Close()
	return &CodecRequest{request: req, err: err}
}

// CodecRequest decodes and encodes a single request.
type CodecRequest struct {
	request *serverRequest
	err     error
}

// Method returns the RPC method for the current request.
//
// The method uses a dotted notation as in "Service.Method".
func (c *CodecRequest) Method() (string, error) {
	if c.err == nil {
		return c.request.Method, nil
	}
	return "", c.err
}

// ReadRequest fills the request object for the RPC method.
//
// Params may be an object matching args, or an array whose single
// element matches args. Missing params leave args zeroed.
func (c *CodecRequest) ReadRequest(args interface{}) error {
	if c.err != nil {
		return c.err
	}
	if c.request.Params == nil {
		return nil
	}
	encoded, err := msgpack.Marshal(c.request.Params)
	if err != nil {
		c.err = &Error{Code: ErrInvalidReq, Message: err.Error(), Data: c.request.Params}
		return c.err
	}
	if err := msgpack.Unmarshal(encoded, args); err != nil {
		params := [1]interface{}{args}
		if err = msgpack.Unmarshal(encoded, &params); err != nil {
			c.err = &Error{Code: ErrInvalidReq, Message: err.Error(), Data: c.request.Params}
		}
	}
	return c.err
}

// WriteResponse encodes the response and writes it to the ResponseWriter.
func (c *CodecRequest) WriteResponse(w http.ResponseWriter, reply interface{}) {
	res := &serverResponse{
		Version: Version,
		Result:  reply,
		ID:      c.request.ID,
	}
	c.writeServerResponse(w, res)
}

func (c *CodecRequest) WriteError(w http.ResponseWriter, status int, err error) {
	var rpcErr *Error
	if !errors.As(err, &rpcErr) {
		rpcErr = &Error{
			Code:    ErrServer,
			Message: err.Error(),
		}
	}
	res := &serverResponse{
		Version: Version,
		Error:   rpcErr,
		ID:      c.request.ID,
	}
	c.writeServerResponse(w, res)
}

func (c *CodecRequest) writeServerResponse(w http.ResponseWriter, res *serverResponse) {
	// Id is null for notifications and they don't have a response.
	if c.request.ID == nil {
		return
	}
	w.Header().Set("Content-Type", ContentType)
	if err := msgpack.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
