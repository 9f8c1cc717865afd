package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/factorgo/codec"
)

// File layout: magic, version, compression byte, codec-name length + name,
// payload length, payload bytes (compressed codec output).
var magic = [4]byte{'F', 'G', 'R', 'P'}

const formatVersion = 1

var (
	// ErrBadMagic is returned when a file is not a report file.
	ErrBadMagic = errors.New("report: bad magic")

	// ErrUnknownCodec is returned when the header names a codec this build
	// does not provide.
	ErrUnknownCodec = errors.New("report: unknown codec")
)

// ErrUnsupportedVersion indicates a report written by a newer format.
type ErrUnsupportedVersion struct {
	Version uint8
}

func (e *ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("report: unsupported format version %d", e.Version)
}

// ErrUnknownCompression indicates an unrecognized compression byte.
type ErrUnknownCompression struct {
	Compression Compression
}

func (e *ErrUnknownCompression) Error() string {
	return fmt.Sprintf("report: unknown compression %d", uint8(e.Compression))
}

// Options configures report writing.
type Options struct {
	// Codec encodes the payload. Defaults to codec.Default.
	Codec codec.Codec

	// Compression is applied to the encoded payload. Default zstd.
	Compression Compression
}

var DefaultOptions = Options{
	Compression: CompressionZSTD,
}

// Write encodes v and writes it to path atomically enough for a diagnostics
// artifact: a failed write leaves a partial file, never a torn header read.
func Write(path string, v any, optFns ...func(o *Options)) error {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if !opts.Compression.valid() {
		return &ErrUnknownCompression{Compression: opts.Compression}
	}

	payload, err := opts.Codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := writeHeader(w, opts.Codec.Name(), opts.Compression); err != nil {
		f.Close()
		return err
	}
	if err := compressTo(w, payload, opts.Compression); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Read decodes the report at path into v, selecting codec and compression
// from the file header.
func Read(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	codecName, compression, err := readHeader(r)
	if err != nil {
		return err
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}

	payload, err := decompressFrom(r, compression)
	if err != nil {
		return err
	}

	return c.Unmarshal(payload, v)
}

func writeHeader(w io.Writer, codecName string, c Compression) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{formatVersion, byte(c), byte(len(codecName))}); err != nil {
		return err
	}
	_, err := io.WriteString(w, codecName)
	return err
}

func readHeader(r io.Reader) (codecName string, c Compression, err error) {
	var m [4]byte
	if _, err = io.ReadFull(r, m[:]); err != nil {
		return "", 0, err
	}
	if m != magic {
		return "", 0, ErrBadMagic
	}

	var meta [3]byte
	if _, err = io.ReadFull(r, meta[:]); err != nil {
		return "", 0, err
	}
	if meta[0] != formatVersion {
		return "", 0, &ErrUnsupportedVersion{Version: meta[0]}
	}

	c = Compression(meta[1])
	if !c.valid() {
		return "", 0, &ErrUnknownCompression{Compression: c}
	}

	name := make([]byte, meta[2])
	if _, err = io.ReadFull(r, name); err != nil {
		return "", 0, err
	}

	return string(name), c, nil
}
