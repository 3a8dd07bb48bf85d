package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "emsetup.dev/pkg/emsetup/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "emsetup"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	pythonFlagName     = "python"
	venvDirFlagName    = "venv-dir"
	clearFlagName      = "clear"
	gpuFlagName        = "gpu"
	indexURLFlagName   = "index-url"
	layoutRootFlagName = "layout-root"
	verboseFlagName    = "verbose"

	pythonKey        = "python"
	venvDirKey       = "venv.dir"
	venvClearKey     = "venv.clear"
	packagesKey      = "packages"
	gpuPolicyKey     = "gpu.policy"
	gpuPackagesKey   = "gpu.packages"
	indexURLKey      = "index_url"
	layoutRootKey    = "layout.root"
	layoutDirsKey    = "layout.dirs"
	reportEnabledKey = "report.enabled"
	reportPathKey    = "report.path"
	uiPlainKey       = "ui.plain"

	defaultPython     = "python3"
	defaultVenvDir    = "energy_monitor_env"
	defaultLayoutRoot = "energy_monitor"
	defaultGPUPolicy  = string(m.GPURequire)
	defaultReportFile = "provision-report.yaml"
	reportDirName     = "logs"

	envPrefix = "EMSETUP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = "emsetup.log"
	logDirName           = "emsetup"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultPackages    = []string{"requests", "nvidia-ml-py3", "pandas", "matplotlib"}
	defaultGPUPackages = []string{"nvidia-ml-py3"}
	defaultLayoutDirs  = []string{"logs", "scripts", "results"}
)

var globalLogger *slog.Logger

// configLoadErr is surfaced by the root command before any work starts.
var configLoadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(pythonKey, defaultPython)
	viper.SetDefault(venvDirKey, defaultVenvDir)
	viper.SetDefault(venvClearKey, false)
	viper.SetDefault(packagesKey, defaultPackages)
	viper.SetDefault(gpuPolicyKey, defaultGPUPolicy)
	viper.SetDefault(gpuPackagesKey, defaultGPUPackages)
	viper.SetDefault(indexURLKey, "")
	viper.SetDefault(layoutRootKey, defaultLayoutRoot)
	viper.SetDefault(layoutDirsKey, defaultLayoutDirs)
	viper.SetDefault(reportEnabledKey, true)
	viper.SetDefault(reportPathKey, "")
	viper.SetDefault(uiPlainKey, false)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, "")
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configLoadErr = loadConfigFile()
}

// loadConfigFile reads emsetup.yaml when present. A missing file is not an error.
func loadConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read %s: %w", configFileName, err)
}

// layoutFromConfig builds the directory layout from the layout.* keys.
func layoutFromConfig() m.Layout {
	return m.Layout{
		Root: m.Path(viper.GetString(layoutRootKey)),
		Dirs: viper.GetStringSlice(layoutDirsKey),
	}
}

// reportPathFromConfig returns where the run report goes, or "" when disabled.
// By default it lands in the layout's logs directory.
func reportPathFromConfig(layout m.Layout) m.Path {
	if !viper.GetBool(reportEnabledKey) {
		return ""
	}

	if custom := strings.TrimSpace(viper.GetString(reportPathKey)); custom != "" {
		return m.Path(custom)
	}

	for _, dir := range layout.Dirs {
		if dir == reportDirName {
			return layout.Root.Join(reportDirName, defaultReportFile)
		}
	}

	return layout.Root.Join(defaultReportFile)
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

// defaultLogPath is under the user cache dir. The working directory only ever
// holds what the provisioning steps create.
func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, logDirName, defaultLogFilename)
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogPath()
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

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
