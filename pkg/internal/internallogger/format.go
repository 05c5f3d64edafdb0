package internallogger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

const callerKey = "caller"

// renderLine flattens an entry into "msg key=value ..." with keys sorted.
func renderLine(ent zapcore.Entry, fields []zapcore.Field) string {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	if ent.Caller.Defined {
		enc.Fields[callerKey] = ent.Caller.TrimmedPath()
	}
	if len(enc.Fields) == 0 {
		return ent.Message
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(ent.Message)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(formatValue(enc.Fields[k]))
	}
	return b.String()
}

func formatValue(v interface{}) string {
	s := fmt.Sprint(v)
	if s == "" || strings.ContainsAny(s, " \t\n=\"") {
		return strconv.Quote(s)
	}
	return s
}
