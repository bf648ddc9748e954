package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync/atomic"
	"time"

	"github.com/shravanasati/pageserver/internal/logging"
	"github.com/shravanasati/pageserver/internal/request"
	"github.com/shravanasati/pageserver/internal/static"
)

// Requests are read with a single call into a buffer of this size. Anything
// past it is ignored.
const readBufferSize = 1024

type Server struct {
	opts     ServerOpts
	listener net.Listener
	closed   atomic.Bool
}

// Shutdown the server. Connections already being handled run to completion.
func (s *Server) Close() error {
	s.closed.Store(true)
	return s.listener.Close()
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) listen() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			s.opts.Logger.Errorf("connection failed: %v", err)
			continue
		}

		// one goroutine per connection, no limit
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	// defers are stacked: recover first, then close

	defer func() {
		if err := conn.Close(); err != nil {
			s.opts.Logger.Errorf("unable to close connection: %v", err)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			s.opts.Recovery(r)
		}
	}()

	start := time.Now()

	req := request.Parse(readRequest(conn))
	target := req.Path
	resolution := s.opts.Policy(req)
	resp := static.Serve(req, resolution)

	if _, err := conn.Write(resp.Bytes()); err != nil {
		panic(fmt.Errorf("%w: %w", ErrWriteResponse, err))
	}

	s.opts.Logger.Request(logging.Entry{
		Method:   req.Method,
		Target:   target,
		Resolved: req.Path,
		Status:   int(resp.StatusCode),
		Elapsed:  time.Since(start),
	})
}

// readRequest does exactly one read. A peer that closes without sending
// anything yields an empty request.
func readRequest(r io.Reader) []byte {
	buf := make([]byte, readBufferSize)
	n, err := r.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		panic(fmt.Errorf("%w: %w", ErrReadRequest, err))
	}
	return buf[:n]
}

func newServer(opts ServerOpts) *Server {
	opts.setDefaults()
	return &Server{
		opts: opts,
	}
}

// Serve binds the configured address and starts accepting connections in the
// background. Bind errors are returned; everything after that is logged.
func Serve(opts ServerOpts) (*Server, error) {
	s := newServer(opts)

	listener, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return nil, err
	}
	s.listener = listener

	go s.listen()
	return s, nil
}
