package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipCompress(data []byte) []byte {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write(data)
	_ = gz.Close()
	return buf.Bytes()
}

func brCompress(data []byte) []byte {
	var buf bytes.Buffer
	br := brotli.NewWriter(&buf)
	_, _ = br.Write(data)
	_ = br.Close()
	return buf.Bytes()
}

func zstdCompress(data []byte) []byte {
	var buf bytes.Buffer
	zw, _ := zstd.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

func zlibCompress(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

func rawDeflateCompress(data []byte) []byte {
	var buf bytes.Buffer
	dw, _ := flate.NewWriter(&buf, flate.DefaultCompression)
	_, _ = dw.Write(data)
	_ = dw.Close()
	return buf.Bytes()
}

func TestDecodeBody(t *testing.T) {
	plain := []byte(`{"emotion":"calm","riskLevel":"low"}`)

	tests := []struct {
		name     string
		encoding string
		body     []byte
	}{
		{name: "none", encoding: "", body: plain},
		{name: "identity", encoding: "identity", body: plain},
		{name: "gzip", encoding: "gzip", body: gzipCompress(plain)},
		{name: "brotli", encoding: "br", body: brCompress(plain)},
		{name: "zstd", encoding: "zstd", body: zstdCompress(plain)},
		{name: "deflate zlib", encoding: "deflate", body: zlibCompress(plain)},
		{name: "deflate raw", encoding: "deflate", body: rawDeflateCompress(plain)},
		{name: "case and whitespace", encoding: "  GZip ", body: gzipCompress(plain)},
		{name: "chained", encoding: "gzip, br", body: brCompress(gzipCompress(plain))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeBody(tt.encoding, tt.body)
			require.NoError(t, err)
			assert.Equal(t, plain, decoded)
		})
	}
}

func TestDecodeBody_UnknownEncoding(t *testing.T) {
	_, err := DecodeBody("compress", []byte("abc"))
	assert.ErrorContains(t, err, "unsupported content-encoding")
}

func TestDecodeBody_CorruptGzip(t *testing.T) {
	_, err := DecodeBody("gzip", []byte("not gzip"))
	assert.Error(t, err)
}
