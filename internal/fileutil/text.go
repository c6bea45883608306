package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidEncoding is returned when content is neither UTF-8 nor BOM-marked UTF-16.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ReadText reads path and returns its content as a UTF-8 string.
// See DecodeText for the accepted encodings.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's input file
	if err != nil {
		return "", err
	}
	return DecodeText(data)
}

// DecodeText converts content to a UTF-8 string. A UTF-8 byte order mark is
// stripped and BOM-marked UTF-16 is transcoded. Anything else must already
// be valid UTF-8.
func DecodeText(content []byte) (string, error) {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		content = content[len(bomUTF8):]
	case bytes.HasPrefix(content, bomUTF16LE):
		return decodeUTF16(content, unicode.LittleEndian)
	case bytes.HasPrefix(content, bomUTF16BE):
		return decodeUTF16(content, unicode.BigEndian)
	}

	if !utf8.Valid(content) {
		return "", ErrInvalidEncoding
	}
	return string(content), nil
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return string(out), nil
}
