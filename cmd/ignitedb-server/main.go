// Command ignitedb-server runs the TCP front-end over an ignitedb store
// (spec §6.4). No CLI-argument library appears anywhere in the example
// corpus; flag parsing here uses the standard library's flag package
// accordingly (see DESIGN.md).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iamNilotpal/ignitedb/internal/concurrent"
	"github.com/iamNilotpal/ignitedb/internal/protocol"
	"github.com/iamNilotpal/ignitedb/internal/threadpool"
	"github.com/iamNilotpal/ignitedb/pkg/ignitedb"
	"github.com/iamNilotpal/ignitedb/pkg/logger"
	"github.com/iamNilotpal/ignitedb/pkg/options"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:4000", "address to listen on")
	engine := flag.String("engine", options.DefaultEngine, "storage backend: kvs or pebble")
	dataDir := flag.String("data-dir", options.DefaultDataDir, "directory for segment/store files")
	threads := flag.Uint("threads", 4, "number of worker goroutines servicing connections")
	dev := flag.Bool("dev", false, "use human-readable, colorized development logging instead of production JSON")
	flag.Parse()

	var log = logger.New("ignitedb-server")
	if *dev {
		log = logger.NewDevelopment("ignitedb-server")
	}

	instance, err := ignitedb.Open(
		"ignitedb-server",
		options.WithDataDir(*dataDir),
		options.WithEngine(*engine),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open store:", err)
		os.Exit(1)
	}
	defer instance.Close()

	store := concurrent.NewShared(instance)

	pool, err := threadpool.NewFixed(*threads)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start thread pool:", err)
		os.Exit(1)
	}
	defer pool.Close()

	server := protocol.NewServer(store, pool, log)
	if err := server.Run(*addr); err != nil {
		fmt.Fprintln(os.Stderr, "server exited:", err)
		os.Exit(1)
	}
}
