package observability

import (
	"context"
	"runtime"

	"github.com/grafana/pyroscope-go"

	"github.com/riskibarqy/castaway-league/internal/config"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
)

var (
	cpuAndMemoryProfiles = []pyroscope.ProfileType{
		pyroscope.ProfileCPU,
		pyroscope.ProfileAllocObjects,
		pyroscope.ProfileAllocSpace,
		pyroscope.ProfileInuseObjects,
		pyroscope.ProfileInuseSpace,
		pyroscope.ProfileGoroutines,
	}
	contentionProfiles = []pyroscope.ProfileType{
		pyroscope.ProfileMutexCount,
		pyroscope.ProfileMutexDuration,
		pyroscope.ProfileBlockCount,
		pyroscope.ProfileBlockDuration,
	}
)

// profileTypes adds mutex and block profiles outside production, where the
// sampling overhead is acceptable.
func profileTypes(env string) []pyroscope.ProfileType {
	out := append([]pyroscope.ProfileType(nil), cpuAndMemoryProfiles...)
	if env == config.EnvProd {
		return out
	}
	return append(out, contentionProfiles...)
}

// InitPyroscope starts continuous profiling when enabled and returns its stop
// function.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	types := profileTypes(cfg.AppEnv)
	if len(types) > len(cpuAndMemoryProfiles) {
		runtime.SetMutexProfileFraction(5)
		runtime.SetBlockProfileRate(5)
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags: map[string]string{
			"env":     cfg.AppEnv,
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
		},
		ProfileTypes: types,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("pyroscope enabled",
		"server_address", cfg.PyroscopeServerAddress,
		"application", cfg.PyroscopeAppName,
		"profile_types", len(types),
	)
	return profiler.Stop, nil
}

// ProfileSeason runs fn with a season_id profiling label so a season-wide
// recalculation shows up separately in flame graphs. Without a running
// profiler the label is harmless.
func ProfileSeason(ctx context.Context, seasonID string, fn func(context.Context)) {
	pyroscope.TagWrapper(ctx, pyroscope.Labels("season_id", seasonID), fn)
}
