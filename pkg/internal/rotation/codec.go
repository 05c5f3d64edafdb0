package rotation

import (
	"errors"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// Algorithm selects how rolled archives are compressed.
type Algorithm int

const (
	None   Algorithm = iota // None keeps archives as plain text.
	Gzip                    // Gzip compresses archives with gzip.
	Snappy                  // Snappy uses the snappy framing format.
	Zstd                    // Zstd uses zstandard.
	Brotli                  // Brotli uses brotli.
	LZ4                     // LZ4 uses the lz4 frame format.
)

// ErrUnknownAlgorithm is returned for unsupported compression names.
var ErrUnknownAlgorithm = errors.New("unknown compression algorithm")

// ParseAlgorithm converts a name such as "gzip" or "zstd" to an Algorithm.
// The empty string and "none" mean no compression.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "gzip", "deflate":
		return Gzip, nil
	case "snappy":
		return Snappy, nil
	case "zstd":
		return Zstd, nil
	case "brotli":
		return Brotli, nil
	case "lz4":
		return LZ4, nil
	default:
		return None, ErrUnknownAlgorithm
	}
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Gzip:
		return "gzip"
	case Snappy:
		return "snappy"
	case Zstd:
		return "zstd"
	case Brotli:
		return "brotli"
	case LZ4:
		return "lz4"
	default:
		return "none"
	}
}

// Extension returns the file suffix for archives written with a.
func (a Algorithm) Extension() string {
	switch a {
	case Gzip:
		return ".gz"
	case Snappy:
		return ".sz"
	case Zstd:
		return ".zst"
	case Brotli:
		return ".br"
	case LZ4:
		return ".lz4"
	default:
		return ""
	}
}

// AlgorithmForPath infers the algorithm from a file name suffix.
func AlgorithmForPath(path string) Algorithm {
	for _, a := range []Algorithm{Gzip, Snappy, Zstd, Brotli, LZ4} {
		if strings.HasSuffix(path, a.Extension()) {
			return a
		}
	}
	return None
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Compress wraps dst so bytes written are compressed with a. Close flushes the
// compressor but does not close dst.
func Compress(dst io.Writer, a Algorithm) (io.WriteCloser, error) {
	switch a {
	case None:
		return nopWriteCloser{dst}, nil
	case Gzip:
		return gzip.NewWriter(dst), nil
	case Snappy:
		return snappy.NewBufferedWriter(dst), nil
	case Zstd:
		enc, err := zstd.NewWriter(dst)
		if err != nil {
			return nil, err
		}
		return enc, nil
	case Brotli:
		return brotli.NewWriterLevel(dst, brotli.DefaultCompression), nil
	case LZ4:
		return lz4.NewWriter(dst), nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

type zstdReadCloser struct{ *zstd.Decoder }

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// Decompress wraps src so reads return the data compressed with a.
func Decompress(src io.Reader, a Algorithm) (io.ReadCloser, error) {
	switch a {
	case None:
		return io.NopCloser(src), nil
	case Gzip:
		r, err := gzip.NewReader(src)
		if err != nil {
			return nil, err
		}
		return r, nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(src)), nil
	case Zstd:
		d, err := zstd.NewReader(src)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	case Brotli:
		return io.NopCloser(brotli.NewReader(src)), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(src)), nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}
