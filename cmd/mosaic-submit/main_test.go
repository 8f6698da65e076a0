package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type endpoint struct {
	server *httptest.Server
	calls  atomic.Int32
}

func newEndpoint(t *testing.T, status int, body string) *endpoint {
	t.Helper()

	e := &endpoint{}
	e.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e.calls.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(e.server.Close)

	return e
}

func writeImage(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "origin.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n"), 0o600))

	return path
}

func TestRun_TooFewArguments(t *testing.T) {
	e := newEndpoint(t, http.StatusOK, "ok")
	missing := filepath.Join(t.TempDir(), "missing.png")

	for _, args := range [][]string{
		{"mosaic-submit"},
		{"mosaic-submit", e.server.URL},
		{"/usr/local/bin/mosaic-submit", e.server.URL, missing},
	} {
		var stdout, stderr bytes.Buffer

		code := run(context.Background(), args, &stdout, &stderr)

		assert.Equal(t, 0, code)
		assert.Equal(t, "Usage: mosaic-submit <url> <img_file> <hashtag> ...\n", stdout.String())
		assert.Empty(t, stderr.String())
	}

	assert.Zero(t, e.calls.Load())
}

func TestRun_MissingFile(t *testing.T) {
	e := newEndpoint(t, http.StatusOK, "ok")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"mosaic-submit", e.server.URL, filepath.Join(t.TempDir(), "missing.png"), "cat"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "file access error")
	assert.Zero(t, e.calls.Load())
}

func TestRun_Success(t *testing.T) {
	e := newEndpoint(t, http.StatusOK, "ok")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"mosaic-submit", e.server.URL, writeImage(t), "cat", "dog"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "200\nok\n", stdout.String())
	assert.Equal(t, int32(1), e.calls.Load())
}

func TestRun_ServerErrorIsNotAFailure(t *testing.T) {
	e := newEndpoint(t, http.StatusInternalServerError, "server error")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"mosaic-submit", e.server.URL, writeImage(t), "cat"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "500\nserver error\n", stdout.String())
	assert.NotContains(t, stderr.String(), "transport error")
}

func TestRun_ConnectionRefused(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	url := "http://" + listener.Addr().String()
	require.NoError(t, listener.Close())

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"mosaic-submit", url, writeImage(t), "cat"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "transport error")
}

func TestRun_IgnoresEnvironment(t *testing.T) {
	t.Setenv("MOSAIC_HTTP_TIMEOUT", "soon")
	t.Setenv("MOSAIC_LOG_LEVEL", "loud")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MOSAIC_LOG_LEVEL=loud\nDEPLOYMENT_PORT=nope\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	e := newEndpoint(t, http.StatusOK, "ok")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"mosaic-submit", e.server.URL, writeImage(t), "cat"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "200\nok\n", stdout.String())
	assert.Equal(t, int32(1), e.calls.Load())
}

func TestRun_Interrupted(t *testing.T) {
	e := newEndpoint(t, http.StatusOK, "ok")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer

	code := run(ctx, []string{"mosaic-submit", e.server.URL, writeImage(t), "cat"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "transport error")
	assert.Zero(t, e.calls.Load())
}
