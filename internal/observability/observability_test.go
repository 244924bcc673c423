package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/grafana/pyroscope-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/castaway-league/internal/config"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
)

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	require.NoError(t, err)
	require.Nil(t, srv)
	require.NoError(t, srv.Stop(context.Background()))
}

func TestStartPprofServer_RequiresAddr(t *testing.T) {
	_, err := StartPprofServer(config.Config{PprofEnabled: true}, nil)
	require.Error(t, err)
}

func TestPprofMux_ServesIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/debug/pprof/cmdline", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, stop())
}

func TestProfileTypes(t *testing.T) {
	prod := profileTypes(config.EnvProd)
	assert.Equal(t, cpuAndMemoryProfiles, prod)
	assert.NotContains(t, prod, pyroscope.ProfileMutexCount)

	dev := profileTypes(config.EnvDev)
	assert.Len(t, dev, len(cpuAndMemoryProfiles)+len(contentionProfiles))
	assert.Contains(t, dev, pyroscope.ProfileBlockDuration)
}

func TestProfileSeason_RunsCallback(t *testing.T) {
	called := false
	ProfileSeason(context.Background(), "s47", func(ctx context.Context) {
		called = ctx != nil
	})
	assert.True(t, called)
}

func TestInitUptrace_NoopWhenOff(t *testing.T) {
	for _, cfg := range []config.Config{
		{UptraceEnabled: false, ServiceName: "castaway-league-api", AppEnv: config.EnvDev},
		{UptraceEnabled: true, UptraceDSN: ""},
	} {
		shutdown, err := InitUptrace(cfg, nil)
		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))
	}
}
