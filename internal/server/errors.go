package server

import "errors"

var ErrReadRequest = errors.New("unable to read request")
var ErrWriteResponse = errors.New("unable to write response")
