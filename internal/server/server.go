package server

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/doodleduel/doodleduel-backend/internal/game"
)

type Server struct {
	port    int
	distDir string
	hub     *game.Hub
}

// NewServer wires the hub into an http.Server with sane timeouts. The
// websocket endpoint relies on Hijack, which exempts it from the
// read/write deadlines below.
func NewServer(port int, distDir string, hub *game.Hub) *http.Server {
	s := &Server{
		port:    port,
		distDir: distDir,
		hub:     hub,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
