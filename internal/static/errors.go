package static

import "errors"

// ErrReadFile is the panic cause when a file that opened fine cannot be read
// to the end.
var ErrReadFile = errors.New("unable to read file")
