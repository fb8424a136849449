package server

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func BuildServer(handler http.Handler, rt, wt, it time.Duration) *http.Server {
	return &http.Server{
		Handler:        handler,
		ReadTimeout:    rt,
		WriteTimeout:   wt,
		IdleTimeout:    it,
		MaxHeaderBytes: 1 << 20, // 1MB
	}
}

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }

// Listen 从 port 起逐个端口探测，占用则 +1 继续，最多 probes 次
func Listen(host string, port, probes int, l *zap.Logger) (net.Listener, int, error) {
	if probes < 1 {
		probes = 1
	}
	var lastErr error
	for i := 0; i < probes; i++ {
		p := port + i
		ln, err := net.Listen("tcp", Addr(host, p))
		if err == nil {
			if i > 0 {
				l.Warn("configured port busy, moved on",
					zap.Int("configured", port), zap.Int("bound", p))
			}
			return ln, p, nil
		}
		lastErr = err
	}
	return nil, 0, fmt.Errorf("no free port in [%d,%d]: %w", port, port+probes-1, lastErr)
}
