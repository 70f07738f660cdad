package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/relationship-registry/internal/adapters/http"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/config"
	"github.com/jsamuelsen11/relationship-registry/internal/platform/logging"
)

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.ServerConfig
		want string
	}{
		{name: "ipv4", cfg: config.ServerConfig{Host: "127.0.0.1", Port: 9090}, want: "127.0.0.1:9090"},
		{name: "ipv6", cfg: config.ServerConfig{Host: "::1", Port: 8080}, want: "[::1]:8080"},
		{name: "all interfaces", cfg: config.ServerConfig{Host: "", Port: 8080}, want: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := adapthttp.NewServer(tt.cfg, http.NotFoundHandler(), nil)
			assert.Equal(t, tt.want, s.Addr())
		})
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	s := adapthttp.NewServer(config.ServerConfig{
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}, handler, logging.Discard())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	assert.NoError(t, <-errCh)
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 0}, http.NotFoundHandler(), logging.Discard())

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, <-errCh)
}

func TestServer_StartListenError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	addr := ln.Addr().(*net.TCPAddr)
	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: addr.Port}, http.NotFoundHandler(), nil)

	assert.Error(t, s.Start())
}
