package palette

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression identifies how a palette file is compressed.
type Compression string

const (
	// CompressionNone writes the table as is.
	CompressionNone Compression = "none"

	// CompressionGzip writes a gzip stream (.gz).
	CompressionGzip Compression = "gzip"

	// CompressionXz writes an xz stream (.xz).
	CompressionXz Compression = "xz"

	// CompressionZstd writes a zstd frame (.zst).
	CompressionZstd Compression = "zstd"
)

// maxDecompressedSize bounds what ReadFile will inflate. It comfortably holds
// the largest palette several images can produce.
const maxDecompressedSize = 64 * 1024 * 1024

// CompressionFor picks the compression from the file extension.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGzip
	case ".xz":
		return CompressionXz
	case ".zst", ".zstd":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// Compress compresses data.
func (c Compression) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser

	switch c {
	case CompressionNone, "":
		return data, nil
	case CompressionGzip:
		w = gzip.NewWriter(&buf)
	case CompressionXz:
		xzw, err := xz.NewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		w = xzw
	case CompressionZstd:
		zw, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		w = zw
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to compress palette: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish %s stream: %w", c, err)
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func (c Compression) Decompress(data []byte) ([]byte, error) {
	var r io.Reader

	switch c {
	case CompressionNone, "":
		return data, nil
	case CompressionGzip:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	case CompressionXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzr
	case CompressionZstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}

	out, err := io.ReadAll(newLimitedReader(r, maxDecompressedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress palette: %w", err)
	}
	return out, nil
}

// WriteFile writes data to path, compressed according to its extension.
func WriteFile(path string, data []byte) error {
	packed, err := CompressionFor(path).Compress(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, packed, 0o644); err != nil { // #nosec G306 - Palette is a regular output file
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	return nil
}

// ReadFile reads a palette written by WriteFile.
func ReadFile(path string) ([]byte, error) {
	packed, err := os.ReadFile(path) // #nosec G304 - User-specified palette path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}
	return CompressionFor(path).Decompress(packed)
}

// limitedReader fails once more than the allowed number of bytes is read.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func newLimitedReader(r io.Reader, maxBytes int64) *limitedReader {
	return &limitedReader{r: r, remaining: maxBytes}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, fmt.Errorf("decompression size limit exceeded")
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
