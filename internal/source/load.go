package source

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Load reads a source file from disk. UTF-16 files (detected by BOM) are
// transcoded to UTF-8 so the rest of the pipeline sees one encoding; a UTF-8
// BOM is left in place because the lexer treats U+FEFF as whitespace, keeping
// offsets aligned with the bytes on disk for the common case.
func Load(path string) (*File, error) {
	// #nosec G304 -- path comes from the tool's caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isUTF16(content) {
		content, err = decodeUTF16(content)
		if err != nil {
			return nil, fmt.Errorf("decode UTF-16 source %q: %w", path, err)
		}
	}
	return NewFile(path, content), nil
}

func isUTF16(content []byte) bool {
	if len(content) < 2 {
		return false
	}
	return (content[0] == 0xFF && content[1] == 0xFE) ||
		(content[0] == 0xFE && content[1] == 0xFF)
}

func decodeUTF16(content []byte) ([]byte, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, content)
	return out, err
}
