package parser

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newDecoder returns an XML decoder over a part. Parts that start with a
// UTF-8 or UTF-16 byte-order mark are transcoded to UTF-8; parts declaring a
// legacy encoding are converted through the matching charset.
func newDecoder(r io.Reader) *xml.Decoder {
	decoder := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	decoder.CharsetReader = charsetReader
	return decoder
}

// unmarshalPart decodes a whole part into v.
func unmarshalPart(data []byte, v any) error {
	return newDecoder(bytes.NewReader(data)).Decode(v)
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-16", "utf-16le", "utf-16be":
		// Already UTF-8 after the byte-order mark was consumed.
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}
