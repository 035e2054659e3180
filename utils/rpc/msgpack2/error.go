// Copyright 2009 The Go Authors. All rights reserved.
// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msgpack2

import (
	"errors"
)

// ErrorCode is a JSON-RPC 2.0 error code.
type ErrorCode int

const (
	ErrParse      ErrorCode = -32700
	ErrInvalidReq ErrorCode = -32600
	ErrNoMethod   ErrorCode = -32601
	ErrBadParams  ErrorCode = -32602
	ErrInternal   ErrorCode = -32603
	ErrServer     ErrorCode = -32000
)

var ErrNullResult = errors.New("result is null")

type Error struct {
	// A Number that indicates the error type that occurred.
	Code ErrorCode `msgpack:"code"`

	// A String providing a short description of the error.
	Message string `msgpack:"message"`

	// A Primitive or Structured value that contains additional information about the error.
	Data interface{} `msgpack:"data"`
}

func (e *Error) Error() string {
	return e.Message
}
