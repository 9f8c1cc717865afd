package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/factorgo/codec"
)

type payload struct {
	Status string `json:"status"`
	Levels []int  `json:"levels"`
}

func TestWriteRead(t *testing.T) {
	compressions := []Compression{CompressionNone, CompressionLZ4, CompressionZSTD}

	for _, c := range compressions {
		t.Run(c.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "run.fgrp")
			in := payload{Status: "found", Levels: []int{35, 3}}

			require.NoError(t, Write(path, in, func(o *Options) {
				o.Compression = c
			}))

			var out payload
			require.NoError(t, Read(path, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestWriteReadCodecSelection(t *testing.T) {
	// The header records the codec name; Read must honor it regardless of
	// the process default.
	path := filepath.Join(t.TempDir(), "run.fgrp")
	in := payload{Status: "exhausted"}

	require.NoError(t, Write(path, in, func(o *Options) {
		o.Codec = codec.JSON{}
		o.Compression = CompressionNone
	}))

	var out payload
	require.NoError(t, Read(path, &out))
	assert.Equal(t, in, out)
}

func TestReadBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.fgrp")
	require.NoError(t, os.WriteFile(path, []byte("not a report file"), 0o600))

	var out payload
	assert.ErrorIs(t, Read(path, &out), ErrBadMagic)
}

func TestReadUnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.fgrp")
	require.NoError(t, os.WriteFile(path, []byte{'F', 'G', 'R', 'P', 99, 0, 0}, 0o600))

	var verr *ErrUnsupportedVersion
	var out payload
	require.ErrorAs(t, Read(path, &out), &verr)
	assert.Equal(t, uint8(99), verr.Version)
}

func TestWriteUnknownCompression(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.fgrp")

	var cerr *ErrUnknownCompression
	err := Write(path, payload{}, func(o *Options) {
		o.Compression = Compression(42)
	})
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, Compression(42), cerr.Compression)
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "zstd", CompressionZSTD.String())
	assert.Equal(t, "Unknown(42)", Compression(42).String())
}
