package lttoolbox

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMultibyte(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"largest one byte", 0x3F, []byte{0x3F}},
		{"smallest two bytes", 0x40, []byte{0x40, 0x40}},
		{"largest two bytes", 0x3FFF, []byte{0x7F, 0xFF}},
		{"smallest three bytes", 0x4000, []byte{0x80, 0x40, 0x00}},
		{"largest three bytes", 0x3FFFFF, []byte{0xBF, 0xFF, 0xFF}},
		{"smallest four bytes", 0x400000, []byte{0xC0, 0x40, 0x00, 0x00}},
		{"largest value", MaxMultibyte, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteMultibyte(&buf, tt.value))
			assert.Equal(t, tt.want, buf.Bytes())

			got, err := ReadMultibyte(&buf)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
			assert.Equal(t, 0, buf.Len())
		})
	}
}

func TestWriteMultibyteOutOfRange(t *testing.T) {
	for _, v := range []int{-1, MaxMultibyte + 1} {
		var buf bytes.Buffer
		err := WriteMultibyte(&buf, v)
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.Equal(t, 0, buf.Len())
	}
}

func TestReadMultibyteTruncated(t *testing.T) {
	_, err := ReadMultibyte(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.EOF)

	_, err = ReadMultibyte(bytes.NewReader([]byte{0x80, 0x01}))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestWriteString(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, "añ<"))
	assert.Equal(t, []byte{0x03, 0x40, 0x61, 0x40, 0xF1, 0x3C}, buf.Bytes())

	s, err := ReadString(&buf)
	require.NoError(t, err)
	assert.Equal(t, "añ<", s)
}

func TestReadStringTruncated(t *testing.T) {
	_, err := ReadString(bytes.NewReader([]byte{0x02, 0x61}))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	runes, err := ReadRunes(bytes.NewReader([]byte{0x00}))
	require.NoError(t, err)
	assert.Empty(t, runes)
}
