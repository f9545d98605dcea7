package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/minikomi/chromakey/internal/interval"
	"github.com/minikomi/chromakey/internal/keyboard"
)

const (
	configBaseName   = "chromakey"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "CHROMAKEY"

	octaveKey   = "octave"
	velocityKey = "velocity"
	channelKey  = "channel"
	portKey     = "port"
	intervalKey = "interval"
	fontKey     = "font"

	defaultVelocity = 90
	defaultChannel  = 0
	defaultPort     = 0
	defaultInterval = "P1"
	defaultFont     = ""

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".chromakey.log"
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

	viper.SetDefault(octaveKey, keyboard.DefaultOctave)
	viper.SetDefault(velocityKey, defaultVelocity)
	viper.SetDefault(channelKey, defaultChannel)
	viper.SetDefault(portKey, defaultPort)
	viper.SetDefault(intervalKey, defaultInterval)
	viper.SetDefault(fontKey, defaultFont)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// Settings is the resolved configuration for a playing session.
type Settings struct {
	Octave   int
	Velocity uint8
	Channel  uint8
	Port     int
	Shift    interval.Interval
	Font     string
}

// LoadSettings reads the session settings from flags, environment and the
// config file, in that order of precedence.
func LoadSettings() (Settings, error) {
	shift, err := parseInterval(viper.GetString(intervalKey))
	if err != nil {
		return Settings{}, err
	}

	velocity := viper.GetInt(velocityKey)
	if velocity < 1 || velocity > 127 {
		return Settings{}, fmt.Errorf("velocity must be in 1..127, got %d", velocity)
	}
	ch := viper.GetInt(channelKey)
	if ch < 0 || ch > 15 {
		return Settings{}, fmt.Errorf("channel must be in 0..15, got %d", ch)
	}

	return Settings{
		Octave:   viper.GetInt(octaveKey),
		Velocity: uint8(velocity),
		Channel:  uint8(ch),
		Port:     viper.GetInt(portKey),
		Shift:    shift,
		Font:     viper.GetString(fontKey),
	}, nil
}

// parseInterval accepts a short interval name ("P5") or a semitone count.
func parseInterval(s string) (interval.Interval, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return interval.FromSemitones(n)
	}
	return interval.ParseName(s)
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

// ConfigureLogger points the default slog logger at a rotating log file.
//
// It logs at the configured level, or at Debug when verbose is set.
func ConfigureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
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
