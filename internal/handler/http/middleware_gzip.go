package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Gzip writers and readers are pooled so that per-request compression does
// not allocate a fresh flate state machine every time.
var (
	gzipWriterPool = sync.Pool{
		New: func() any { return gzip.NewWriter(io.Discard) },
	}

	gzipReaderPool = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip transparently decompresses gzip-encoded request bodies and
// compresses responses for clients that advertise gzip support. A body
// that claims Content-Encoding: gzip but fails the header check is
// rejected with 400 before the handler runs.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if err := decompressRequestBody(req); err != nil {
				writeError(w, "invalid gzip payload", http.StatusBadRequest)
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)
		defer func() {
			zw.Close()
			gzipWriterPool.Put(zw)
		}()

		next.ServeHTTP(&compressedResponseWriter{ResponseWriter: w, zw: zw}, req)
	})
}

// decompressRequestBody swaps req.Body for a pooled gzip reader over the
// original stream. The Content-Encoding header is dropped so downstream
// code sees a plain body.
func decompressRequestBody(req *http.Request) error {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(req.Body); err != nil {
		gzipReaderPool.Put(zr)
		return err
	}

	original := req.Body
	req.Body = &pooledGzipBody{zr: zr, underlying: original}
	req.Header.Del("Content-Encoding")

	return nil
}

// pooledGzipBody reads through a pooled gzip.Reader and returns the reader
// to the pool on Close.
type pooledGzipBody struct {
	zr         *gzip.Reader
	underlying io.Closer
	closed     bool
}

func (b *pooledGzipBody) Read(p []byte) (int, error) {
	return b.zr.Read(p)
}

func (b *pooledGzipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	b.zr.Close()
	gzipReaderPool.Put(b.zr)

	return b.underlying.Close()
}

type compressedResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *compressedResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressedResponseWriter) Write(data []byte) (int, error) {
	return w.zw.Write(data)
}
