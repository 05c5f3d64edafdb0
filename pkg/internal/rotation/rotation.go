// Package rotation rolls log files into numbered archives and compresses them.
//
// Archives of "info.log" are named "info.log.1", "info.log.2", ... with the
// compression extension appended ("info.log.1.gz"). Index 1 is the newest. A
// file set limited to maxFiles keeps the active file plus maxFiles-1 archives.
package rotation

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// Archive is a rolled log file.
type Archive struct {
	Path      string
	Index     int
	Algorithm Algorithm
}

// Archives lists the archives of path ordered newest first.
func Archives(path string) ([]Archive, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	prefix := base + "."
	var out []Archive
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		rest := strings.TrimPrefix(name, prefix)
		alg := AlgorithmForPath(rest)
		n, err := strconv.Atoi(strings.TrimSuffix(rest, alg.Extension()))
		if err != nil || n < 1 {
			continue
		}
		out = append(out, Archive{Path: filepath.Join(dir, name), Index: n, Algorithm: alg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

// Roll moves the file at path into archive slot 1, shifting older archives up
// and evicting those beyond maxFiles-1. The file at path no longer exists when
// Roll returns without error.
func Roll(path string, maxFiles int, alg Algorithm) error {
	keep := maxFiles - 1
	if keep < 0 {
		keep = 0
	}

	archives, err := Archives(path)
	if err != nil {
		return err
	}

	// Walk oldest first so a shift never overwrites an archive still to be moved.
	var errs error
	for i := len(archives) - 1; i >= 0; i-- {
		a := archives[i]
		if a.Index >= keep {
			errs = multierr.Append(errs, removeIfExists(a.Path))
			continue
		}
		dst := archiveName(path, a.Index+1, a.Algorithm)
		errs = multierr.Append(errs, os.Rename(a.Path, dst))
	}
	if errs != nil {
		return fmt.Errorf("shift archives of %s: %w", path, errs)
	}

	if keep == 0 {
		return removeIfExists(path)
	}
	return archiveFile(path, archiveName(path, 1, alg), alg)
}

func archiveName(path string, index int, alg Algorithm) string {
	return path + "." + strconv.Itoa(index) + alg.Extension()
}

func archiveFile(src, dst string, alg Algorithm) error {
	if alg == None {
		return os.Rename(src, dst)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	zw, err := Compress(out, alg)
	if err != nil {
		return multierr.Append(err, out.Close())
	}
	_, err = io.Copy(zw, in)
	err = multierr.Combine(err, zw.Close(), out.Close())
	if err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("compress %s: %w", src, err)
	}
	return os.Remove(src)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Open returns a reader over a live or archived log file, decompressing by
// extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := Decompress(f, AlgorithmForPath(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &archiveReader{ReadCloser: r, file: f}, nil
}

type archiveReader struct {
	io.ReadCloser
	file *os.File
}

func (a *archiveReader) Close() error {
	return multierr.Combine(a.ReadCloser.Close(), a.file.Close())
}
