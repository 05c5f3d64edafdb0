package internallogger

import "go.uber.org/zap"

func fieldsFromMap(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		if key == "" {
			continue
		}
		out = append(out, zap.Any(key, value))
	}
	return out
}

// fieldsFromPairs converts alternating keys and values. A trailing key without
// a value and pairs whose key is not a non-empty string are dropped.
func fieldsFromPairs(keysAndValues []interface{}) []zap.Field {
	limit := len(keysAndValues)
	if limit%2 != 0 {
		limit--
	}

	fields := make([]zap.Field, 0, limit/2)
	for i := 0; i < limit; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok || key == "" {
			continue
		}
		switch v := keysAndValues[i+1].(type) {
		case error:
			fields = append(fields, zap.NamedError(key, v))
		default:
			fields = append(fields, zap.Any(key, v))
		}
	}
	return fields
}
