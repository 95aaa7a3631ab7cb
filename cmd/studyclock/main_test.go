package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

// startRun runs the app in background and waits for the ping endpoint
func startRun(t *testing.T, opts Opts, port int) (stop func() error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, opts) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond, "server did not start")

	return func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			return fmt.Errorf("server did not stop")
		}
	}
}

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: cfgFile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_BadDatabase(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	dsn := "file:" + filepath.Join(t.TempDir(), "no-such-dir", "db.sqlite") + "?mode=ro"
	err := run(ctx, Opts{DB: dsn, Listen: "127.0.0.1:0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open database")
}

func TestRun_ServerStartStop(t *testing.T) {
	port := freePort(t)
	t.Setenv("STUDYCLOCK_DB_PATH", t.TempDir())
	t.Setenv("STUDYCLOCK_LISTEN", fmt.Sprintf("127.0.0.1:%d", port))

	wd, err := os.Getwd()
	require.NoError(t, err)
	stop := startRun(t, Opts{Config: filepath.Join(wd, "testdata", "test_config.yml")}, port)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/", port))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Study Clock Test")

	resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/duration/clock?seconds=3661", port))
	require.NoError(t, err)
	var clockResp map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&clockResp))
	resp.Body.Close()
	assert.Equal(t, "01:01:01", clockResp["clock"])

	require.NoError(t, stop())
}

func TestRun_ThemePersistsAcrossRestarts(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "studyclock.db") + "?cache=shared&mode=rwc&_txlock=immediate"

	themeOf := func(port int) map[string]interface{} {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/theme", port))
		require.NoError(t, err)
		defer resp.Body.Close()
		var res map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		return res
	}

	// first start is light, toggle to dark
	port := freePort(t)
	stop := startRun(t, Opts{DB: dsn, Listen: fmt.Sprintf("127.0.0.1:%d", port)}, port)
	assert.Equal(t, "light", themeOf(port)["theme"])

	resp, err := http.Post(fmt.Sprintf("http://127.0.0.1:%d/api/v1/theme/toggle", port), "", http.NoBody)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, themeOf(port)["dark"])
	require.NoError(t, stop())

	// second start picks up stored dark
	port = freePort(t)
	stop = startRun(t, Opts{DB: dsn, Listen: fmt.Sprintf("127.0.0.1:%d", port)}, port)
	res := themeOf(port)
	assert.Equal(t, "dark", res["theme"])
	assert.Equal(t, true, res["dark"])
	require.NoError(t, stop())
}

func TestSetupLog(t *testing.T) {
	// doesn't panic in any mode
	setupLog(false, false)
	setupLog(true, false)
	setupLog(true, true)
	setupLog(false, true)
}
