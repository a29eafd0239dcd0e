package protocol

import (
	"bufio"
	"net"

	stdErrors "errors"

	"github.com/iamNilotpal/ignitedb/internal/threadpool"
	"github.com/iamNilotpal/ignitedb/pkg/errors"
	"github.com/iamNilotpal/ignitedb/pkg/kv"
	"go.uber.org/zap"
)

// Server accepts TCP connections and services each one against a kv.KV
// store, dispatching connection handling through a thread pool (§6.2, §9).
// The store passed in must already be safe for the pool's concurrency —
// wrap it in internal/concurrent.Shared when pool is anything but
// threadpool.Naive with a single logical caller.
type Server struct {
	store kv.KV
	pool  threadpool.Pool
	log   *zap.SugaredLogger
}

// NewServer builds a Server over store, dispatching each accepted
// connection into pool.
func NewServer(store kv.KV, pool threadpool.Pool, log *zap.SugaredLogger) *Server {
	return &Server{store: store, pool: pool, log: log}
}

// Run binds addr and serves connections until listening fails or the
// listener is closed.
func (s *Server) Run(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.NewStorageError(err, errors.ErrorCodeIO, "failed to bind server address").WithDetail("addr", addr)
	}
	defer listener.Close()

	s.log.Infow("server listening", "addr", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if stdErrors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Errorw("accept failed", "error", err)
			continue
		}

		s.pool.Spawn(func() { s.serve(conn) })
	}
}

func (s *Server) serve(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	writer := bufio.NewWriter(conn)

	for {
		req, err := ReadRequest(reader)
		if err != nil {
			if stdErrors.Is(err, net.ErrClosed) {
				return
			}
			_ = WriteError(writer, err.Error())
			return
		}

		s.log.Debugw("received request", "command", req.Command, "key", req.Key)

		switch req.Command {
		case CmdSet:
			if err := s.store.Set(req.Key, req.Value); err != nil {
				_ = WriteError(writer, err.Error())
				continue
			}
			_ = WriteSimpleOK(writer)

		case CmdGet:
			value, ok, err := s.store.Get(req.Key)
			if err != nil {
				_ = WriteError(writer, err.Error())
				continue
			}
			if !ok {
				_ = WriteNull(writer)
				continue
			}
			_ = WriteBulkString(writer, value)

		case CmdRemove:
			err := s.store.Remove(req.Key)
			if stdErrors.Is(err, kv.ErrKeyNotFound) {
				_ = WriteNull(writer)
				continue
			}
			if err != nil {
				_ = WriteError(writer, err.Error())
				continue
			}
			_ = WriteSimpleOK(writer)
		}
	}
}
