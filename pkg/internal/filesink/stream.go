package filesink

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// stream is one append handle owned by a FileSink. A stream whose ws is nil has
// been released or failed to reopen, and drops writes.
type stream struct {
	path string
	file *os.File
	ws   zapcore.WriteSyncer
	size int64
}

func openStream(path string, truncate bool) (*stream, error) {
	st := &stream{path: path}
	if err := st.open(truncate); err != nil {
		return nil, err
	}
	return st, nil
}

func (st *stream) open(truncate bool) error {
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if truncate {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(st.path, flags, 0644)
	if err != nil {
		return err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return err
	}
	st.file = file
	st.ws = zapcore.AddSync(file)
	st.size = info.Size()
	return nil
}

func (st *stream) write(line []byte) {
	if st == nil || st.ws == nil {
		return
	}
	n, _ := st.ws.Write(line)
	st.size += int64(n)
}

func (st *stream) sync() error {
	if st == nil || st.ws == nil {
		return nil
	}
	return st.ws.Sync()
}

func (st *stream) close() error {
	if st == nil || st.file == nil {
		return nil
	}
	err := st.file.Close()
	st.file = nil
	st.ws = nil
	return err
}
