package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/kep/internal/config"
	"github.com/rshade/kep/internal/logging"
)

// setupLogging configures logging from the config file and environment and
// attaches the logger and an invocation id to the command's context.
func (d *driver) setupLogging(cmd *cobra.Command) {
	cfg, cfgErr := config.Load(config.ResolvePath(d.deps.LookupEnv), d.deps.LookupEnv)

	loggingCfg := cfg.Logging.ToLoggingConfig()
	loggingCfg.Stderr = cmd.ErrOrStderr()

	result := logging.NewLoggerWithPath(loggingCfg)
	d.logResult = &result

	if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	invocationID := logging.GetOrGenerateInvocationID(ctx)
	ctx = logging.ContextWithInvocationID(ctx, invocationID)

	ctxLogger := result.Logger.With().Str("invocation_id", invocationID).Logger()
	ctx = ctxLogger.WithContext(ctx)
	cmd.SetContext(ctx)

	log := logging.ComponentLogger(ctxLogger, "cli")

	if cfgErr != nil {
		log.Warn().Err(cfgErr).Str("config_path", cfg.ConfigPath()).Msg("ignoring invalid configuration")
	}
	log.Debug().Str("config_path", cfg.ConfigPath()).Msg("command started")
}

// cleanupLogging closes the log file handle, if any.
func (d *driver) cleanupLogging() {
	if d.logResult != nil {
		_ = d.logResult.Close()
		d.logResult = nil
	}
}
