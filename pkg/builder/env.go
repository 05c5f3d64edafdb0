package builder

import (
	"os"
	"strconv"
	"strings"

	"github.com/joeydtaylor/logkit/pkg/internal/rotation"
)

// Environment keys read by FileSinkConfigFromEnv.
const (
	EnvLogDir      = "LOGKIT_DIR"
	EnvInfoFile    = "LOGKIT_INFO_FILE"
	EnvErrorFile   = "LOGKIT_ERROR_FILE"
	EnvMaxFileSize = "LOGKIT_MAX_FILE_SIZE"
	EnvMaxFiles    = "LOGKIT_MAX_FILES"
	EnvClearOnInit = "LOGKIT_CLEAR_ON_INIT"
	EnvRotate      = "LOGKIT_ROTATE"
	EnvCompression = "LOGKIT_COMPRESSION"
)

// EnvOr returns the trimmed env value or def when empty.
func EnvOr(key, def string) string {
	v := strings.TrimSpace(strings.Trim(os.Getenv(key), `"`))
	if v == "" {
		return def
	}
	return v
}

// EnvIntOr returns the parsed int env value or def on empty/parse failure.
func EnvIntOr(key string, def int) int {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvBoolOr returns the parsed bool env value or def on empty/parse failure.
func EnvBoolOr(key string, def bool) bool {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// FileSinkConfigFromEnv builds a FileSinkConfig from LOGKIT_* variables.
// Unset or malformed values fall back to the sink defaults.
func FileSinkConfigFromEnv(defaultDir string) FileSinkConfig {
	compression, err := rotation.ParseAlgorithm(EnvOr(EnvCompression, ""))
	if err != nil {
		compression = rotation.None
	}
	return FileSinkConfig{
		LogDir:       EnvOr(EnvLogDir, defaultDir),
		InfoLogFile:  EnvOr(EnvInfoFile, ""),
		ErrorLogFile: EnvOr(EnvErrorFile, ""),
		MaxFileSize:  int64(EnvIntOr(EnvMaxFileSize, 0)),
		MaxFiles:     EnvIntOr(EnvMaxFiles, 0),
		ClearOnInit:  EnvBoolOr(EnvClearOnInit, false),
		Rotate:       EnvBoolOr(EnvRotate, false),
		Compression:  compression,
	}
}
