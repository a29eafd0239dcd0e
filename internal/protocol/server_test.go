package protocol_test

import (
	"bufio"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/iamNilotpal/ignitedb/internal/engine"
	"github.com/iamNilotpal/ignitedb/internal/protocol"
	"github.com/iamNilotpal/ignitedb/internal/threadpool"
	"github.com/iamNilotpal/ignitedb/pkg/logger"
	"github.com/iamNilotpal/ignitedb/pkg/options"
	"github.com/stretchr/testify/require"
)

// startTestServer opens an engine-backed server on an ephemeral loopback
// port and returns its address and a cleanup func.
func startTestServer(t *testing.T) (addr string, cleanup func()) {
	t.Helper()

	e, err := engine.Open(&engine.Config{
		Options: &options.Options{DataDir: t.TempDir(), CompactionThreshold: options.DefaultCompactionThreshold, Engine: options.DefaultEngine},
		Logger:  logger.Nop(),
	})
	require.NoError(t, err)

	pool, err := threadpool.NewNaive(4)
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := protocol.NewServer(e, pool, logger.Nop())

	// Run binds its own listener internally; close this probe listener
	// immediately and hand back the address it reserved. To avoid a race
	// between releasing the port and srv.Run rebinding it, dial-retry below.
	listener.Close()

	addr = listener.Addr().String()

	go srv.Run(addr)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			conn.Close()
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	return addr, func() {
		pool.Close()
		e.Close()
	}
}

func sendRequest(t *testing.T, addr, cmd, key, value string) string {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	var req string
	if cmd == "set" {
		req = fmt.Sprintf("*3\r\n$%d\r\n%s\r\n$%d\r\n%s\r\n$%d\r\n%s\r\n", len(cmd), cmd, len(key), key, len(value), value)
	} else {
		req = fmt.Sprintf("*2\r\n$%d\r\n%s\r\n$%d\r\n%s\r\n", len(cmd), cmd, len(key), key)
	}

	_, err = conn.Write([]byte(req))
	require.NoError(t, err)

	reader := bufio.NewReader(conn)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	if line[0] == '$' && line[:3] != "$-1" {
		body, err := reader.ReadString('\n')
		require.NoError(t, err)
		return line + body
	}
	return line
}

func TestServerSetGetRemoveRoundTrip(t *testing.T) {
	addr, cleanup := startTestServer(t)
	defer cleanup()

	reply := sendRequest(t, addr, "set", "foo", "bar")
	require.Equal(t, "+OK\r\n", reply)

	reply = sendRequest(t, addr, "get", "foo", "")
	require.Equal(t, "$3\r\nbar\r\n", reply)

	reply = sendRequest(t, addr, "rm", "foo", "")
	require.Equal(t, "+OK\r\n", reply)

	reply = sendRequest(t, addr, "get", "foo", "")
	require.Equal(t, "$-1\r\n", reply)

	reply = sendRequest(t, addr, "rm", "foo", "")
	require.Equal(t, "$-1\r\n", reply)
}
