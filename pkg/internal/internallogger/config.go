package internallogger

import (
	"fmt"
	"strconv"

	"github.com/joeydtaylor/logkit/pkg/internal/filesink"
	"github.com/joeydtaylor/logkit/pkg/internal/level"
	"github.com/joeydtaylor/logkit/pkg/internal/mobilesink"
	"github.com/joeydtaylor/logkit/pkg/internal/rotation"
)

func fileConfig(cfg map[string]interface{}) (filesink.Config, error) {
	var out filesink.Config
	var err error

	dir, ok := cfg["dir"].(string)
	if !ok || dir == "" {
		return out, fmt.Errorf("file dir configuration is missing or invalid")
	}
	out.LogDir = dir

	if out.InfoLogFile, err = stringValue(cfg, "info_file"); err != nil {
		return out, err
	}
	if out.ErrorLogFile, err = stringValue(cfg, "error_file"); err != nil {
		return out, err
	}
	if out.MaxFileSize, err = intValue(cfg, "max_file_size"); err != nil {
		return out, err
	}
	maxFiles, err := intValue(cfg, "max_files")
	if err != nil {
		return out, err
	}
	out.MaxFiles = int(maxFiles)
	if out.ClearOnInit, err = boolValue(cfg, "clear_on_init", false); err != nil {
		return out, err
	}
	if out.Rotate, err = boolValue(cfg, "rotate", false); err != nil {
		return out, err
	}

	compression, err := stringValue(cfg, "compression")
	if err != nil {
		return out, err
	}
	if out.Compression, err = rotation.ParseAlgorithm(compression); err != nil {
		return out, err
	}
	return out, nil
}

func mobileOptions(cfg map[string]interface{}) ([]mobilesink.Option, error) {
	var opts []mobilesink.Option

	name, err := stringValue(cfg, "level")
	if err != nil {
		return nil, err
	}
	if name != "" {
		s, ok := level.ParseSeverity(name)
		if !ok {
			return nil, fmt.Errorf("level %q: %w", name, level.ErrUnknownLevel)
		}
		opts = append(opts, mobilesink.WithLevel(s))
	}

	enabled, err := boolValue(cfg, "enabled", true)
	if err != nil {
		return nil, err
	}
	return append(opts, mobilesink.WithConsoleLogging(enabled)), nil
}

func stringValue(cfg map[string]interface{}, key string) (string, error) {
	raw, ok := cfg[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T", key, raw)
	}
	return s, nil
}

func intValue(cfg map[string]interface{}, key string) (int64, error) {
	raw, ok := cfg[key]
	if !ok || raw == nil {
		return 0, nil
	}
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be an integer, got %T", key, raw)
	}
}

func boolValue(cfg map[string]interface{}, key string, def bool) (bool, error) {
	raw, ok := cfg[key]
	if !ok || raw == nil {
		return def, nil
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def, fmt.Errorf("%s: %w", key, err)
		}
		return b, nil
	default:
		return def, fmt.Errorf("%s must be a boolean, got %T", key, raw)
	}
}
