// This is a copy from gorilla's jsonrpc2 using msgpack
//
// Copyright 2009 The Go Authors. All rights reserved.
// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msgpack2

import (
	"io"
	"math/rand"

	msgpack "github.com/vmihailenco/msgpack"
)

// clientRequest represents a JSON-RPC request sent by a client.
type clientRequest struct {
	Version string `msgpack:"jsonrpc"`

	// A String containing the name of the method to be invoked.
	Method string `msgpack:"method"`

	// Object to pass as request parameter to the method.
	Params interface{} `msgpack:"params"`

	// The request id, used to match the response with the request.
	ID uint64 `msgpack:"id"`
}

// clientResponse represents a JSON-RPC response returned to a client.
type clientResponse struct {
	Version string      `msgpack:"jsonrpc"`
	Result  interface{} `msgpack:"result"`
	Error   interface{} `msgpack:"error"`
}

// EncodeClientRequest encodes parameters for a JSON-RPC client request.
func EncodeClientRequest(method string, args interface{}) ([]byte, error) {
	c := &clientRequest{
		Version: Version,
		Method:  method,
		Params:  args,
		// id 0 would still be answered; it only has to be non-null
		ID: uint64(rand.Int63()) + 1,
	}
	return msgpack.Marshal(c)
}

// DecodeClientResponse decodes the response body of a client request into
// reply. RPC level failures come back as *Error.
func DecodeClientResponse(r io.Reader, reply interface{}) error {
	var c clientResponse
	if err := msgpack.NewDecoder(r).Decode(&c); err != nil {
		return err
	}
	if c.Error != nil {
		return decodeError(c.Error)
	}
	if c.Result == nil {
		return ErrNullResult
	}
	encoded, err := msgpack.Marshal(c.Result)
	if err != nil {
		return err
	}
	return msgpack.Unmarshal(encoded, reply)
}

func decodeError(raw interface{}) error {
	encoded, err := msgpack.Marshal(raw)
	if err != nil {
		return err
	}
	rpcErr := &Error{}
	if err := msgpack.Unmarshal(encoded, rpcErr); err != nil {
		return &Error{
			Code:    ErrServer,
			Message: string(encoded),
		}
	}
	return rpcErr
}
