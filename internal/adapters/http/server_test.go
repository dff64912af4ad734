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

	adapthttp "github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/http"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/config"
)

func serverConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:            "127.0.0.1",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 2 * time.Second,
	}
}

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	cfg := serverConfig()
	cfg.Port = 9090
	assert.Equal(t, "127.0.0.1:9090", adapthttp.NewServer(cfg, http.NotFoundHandler(), nil).Addr())
}

func TestServer_ServesUntilCanceled(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(serverConfig(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	ln := listen(t)
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health/live")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServer_DrainsInFlightRequest(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	s := adapthttp.NewServer(serverConfig(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-release
		w.WriteHeader(http.StatusAccepted)
	}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	ln := listen(t)
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	status := make(chan int, 1)
	go func() {
		resp, err := http.Post("http://"+ln.Addr().String()+"/api/v1/projects/1/schedule/bulk", "application/json", http.NoBody)
		if err != nil {
			status <- 0
			return
		}
		_ = resp.Body.Close()
		status <- resp.StatusCode
	}()

	<-started
	cancel()
	close(release)

	assert.Equal(t, http.StatusAccepted, <-status)
	assert.NoError(t, <-done)
}

func TestServer_DrainWindowExpires(t *testing.T) {
	t.Parallel()

	cfg := serverConfig()
	cfg.ShutdownTimeout = 50 * time.Millisecond

	started := make(chan struct{})
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	s := adapthttp.NewServer(cfg, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		close(started)
		<-release
	}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	ln := listen(t)
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	go func() {
		if resp, err := http.Get("http://" + ln.Addr().String() + "/"); err == nil {
			_ = resp.Body.Close()
		}
	}()

	<-started
	cancel()
	assert.ErrorIs(t, <-done, context.DeadlineExceeded)
}

func TestServer_RunFailsOnBadAddress(t *testing.T) {
	t.Parallel()

	cfg := serverConfig()
	cfg.Host, cfg.Port = "256.0.0.1", 80

	err := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil).Run(context.Background())
	assert.ErrorContains(t, err, "listening on 256.0.0.1:80")
}
