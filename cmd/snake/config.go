package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui-snake/internal/config"
)

const (
	envPrefix = "SNAKE"

	fpsFlagName      = "fps"
	configFlagName   = "config"
	logFileFlagName  = "log-file"
	logLevelFlagName = "log-level"

	fpsKey           = "fps"
	configPathKey    = "config"
	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

func init() {
	setViperDefaults()
}

func setViperDefaults() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(fpsKey, 0)
	viper.SetDefault(configPathKey, "")
	viper.SetDefault(logFilenameKey, "")
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.Int(fpsFlagName, 0, "Tick rate override (0 = use the game config)")
	flags.String(configFlagName, "", "Path to custom game config YAML")
	flags.String(logFileFlagName, "", "Write logs to this file (rotated)")
	flags.String(logLevelFlagName, defaultLogLevel, "Log level: debug, info, warn, error")

	bindFlag(flags, fpsKey, fpsFlagName)
	bindFlag(flags, configPathKey, configFlagName)
	bindFlag(flags, logFilenameKey, logFileFlagName)
	bindFlag(flags, logLevelKey, logLevelFlagName)
}

// bindFlag makes the flag the highest-priority source for key.
func bindFlag(flags *pflag.FlagSet, key, name string) {
	if flag := flags.Lookup(name); flag != nil {
		_ = viper.BindPFlag(key, flag)
	}
}

// loadGameConfig loads the game config and applies the --fps override.
func loadGameConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(viper.GetString(configPathKey))
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if fps := viper.GetInt(fpsKey); fps > 0 {
		cfg.TickRate = fps
	}
	return cfg, cfg.Validate()
}

// newLogger builds the CLI logger. Logs go to the rotating log file when one
// is configured, and to stderr when console is set. The returned close
// function releases the file.
func newLogger(prefix string, console bool) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(viper.GetString(logLevelKey))
	if err != nil {
		return nil, nil, fmt.Errorf("bad log level: %w", err)
	}

	var writers []io.Writer
	closeFn := func() error { return nil }

	if filename := strings.TrimSpace(viper.GetString(logFilenameKey)); filename != "" {
		file := &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}
		writers = append(writers, file)
		closeFn = file.Close
	}
	if console {
		writers = append(writers, os.Stderr)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
