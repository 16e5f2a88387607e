package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"hocwrap.dev/pkg/hocwrap/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "hocwrap"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	rootFlagName        = "root"
	verboseFlagName     = "verbose"
	runParallelFlagName = "parallel"
	runDryRunFlagName   = "dry-run"
	runStrictFlagName   = "strict"
	runDiffFlagName     = "diff"

	targetsConfigKey     = "targets"
	rootConfigKey        = "paths.root"
	runParallelConfigKey = "run.parallel"
	runDryRunConfigKey   = "run.dry_run"
	runStrictConfigKey   = "run.strict"
	runDiffConfigKey     = "run.diff"

	wrapperCallKey   = "wrapper.name"
	wrapperImportKey = "wrapper.import"
	wrapperAnchorKey = "wrapper.anchor"
	wrapperSuffixKey = "wrapper.suffix"

	defaultReportsDir  = ".hocwrap-reports"
	defaultRootDir     = "."
	defaultRunParallel = 1
	defaultRunDryRun   = false
	defaultRunStrict   = false
	defaultRunDiff     = false

	envPrefix = "HOCWRAP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".hocwrap.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(rootConfigKey, defaultRootDir)
	viper.SetDefault(targetsConfigKey, []map[string]string{})
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runDryRunConfigKey, defaultRunDryRun)
	viper.SetDefault(runStrictConfigKey, defaultRunStrict)
	viper.SetDefault(runDiffConfigKey, defaultRunDiff)

	// Wrapper defaults target withUniversalDialog.
	viper.SetDefault(wrapperCallKey, domain.DefaultWrapperCall)
	viper.SetDefault(wrapperImportKey, domain.DefaultWrapperImport)
	viper.SetDefault(wrapperAnchorKey, domain.DefaultAnchorImport)
	viper.SetDefault(wrapperSuffixKey, domain.DefaultBaseSuffix)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		slog.Warn("Failed to read config file", "file", viper.ConfigFileUsed(), "error", err)
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	// Create a new logger with the file handler and set it as the global logger
	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// wrapperSpecFromConfig reads the wrapper definition from viper.
func wrapperSpecFromConfig() domain.WrapperSpec {
	return domain.WrapperSpec{
		Call:   viper.GetString(wrapperCallKey),
		Import: viper.GetString(wrapperImportKey),
		Anchor: viper.GetString(wrapperAnchorKey),
		Suffix: viper.GetString(wrapperSuffixKey),
	}
}
