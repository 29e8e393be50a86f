package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// AcceptEncoding lists every content coding DecodeBody understands.
const AcceptEncoding = "gzip, br, zstd, deflate"

type decoder func(body []byte) ([]byte, error)

var decoders = map[string]decoder{
	"br": func(body []byte) ([]byte, error) {
		return io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
	},
	"gzip": func(body []byte) ([]byte, error) {
		gr, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		return io.ReadAll(gr)
	},
	"zstd": func(body []byte) ([]byte, error) {
		dec, err := zstd.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return io.ReadAll(dec)
	},
	"deflate": func(body []byte) ([]byte, error) {
		// zlib-wrapped per RFC 9110, raw DEFLATE from misbehaving servers
		if zr, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
			defer zr.Close()
			return io.ReadAll(zr)
		}
		fr := flate.NewReader(bytes.NewReader(body))
		defer fr.Close()
		return io.ReadAll(fr)
	},
}

// DecodeBody undoes the codings named in a Content-Encoding header, last
// applied first.
func DecodeBody(contentEncoding string, body []byte) ([]byte, error) {
	codings := strings.Split(contentEncoding, ",")
	for i := len(codings) - 1; i >= 0; i-- {
		coding := strings.ToLower(strings.TrimSpace(codings[i]))
		if coding == "" || coding == "identity" {
			continue
		}
		decode, ok := decoders[coding]
		if !ok {
			return nil, fmt.Errorf("unsupported content-encoding: %q", coding)
		}
		out, err := decode(body)
		if err != nil {
			return nil, fmt.Errorf("decode %s body: %w", coding, err)
		}
		body = out
	}
	return body, nil
}
