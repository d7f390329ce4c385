package http

import (
	"net/http"
	"time"
)

// NewServer construye el http.Server con los timeouts de infraestructura.
// Este layer no impone timeouts por operación: eso queda en el server.
func NewServer(addr string, h http.Handler, read, write time.Duration) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  read,
		WriteTimeout: write,
	}
}
