// Command matchserver serves the map-matching engine over HTTP. Unlike the
// routing server it descends from, it loads no graph at startup: each
// request to /api/v1/match carries its own road network and is matched
// against it independently.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"mapmatch/pkg/api"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	flag.Parse()

	addr := fmt.Sprintf(":%d", *port)
	cfg := api.DefaultConfig(addr)
	cfg.CORSOrigin = *corsOrigin

	handlers := api.NewHandlers()
	srv := api.NewServer(cfg, handlers)

	log.Printf("matchserver listening on %s", addr)
	if err := api.ListenAndServe(srv); err != nil {
		log.Printf("server stopped: %v", err)
		os.Exit(1)
	}
}
