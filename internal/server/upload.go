package server

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/postalsys/toc/internal/codec"
	"github.com/postalsys/toc/internal/logging"
	"github.com/postalsys/toc/internal/meta"
	"github.com/postalsys/toc/internal/ratelimit"
	"github.com/postalsys/toc/internal/tarhash"
	"github.com/postalsys/toc/internal/wordpass"
)

type uploadResponse struct {
	ID       string `json:"id"`
	DeleteAt int64  `json:"delete_at_unix"`
}

// handleUpload accepts a single PUT/POST body of already-encrypted
// bytes and stores it under a freshly generated wordpass identifier.
// toc never sees plaintext: the body is whatever the client's codec
// writer produced.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	username, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	s.metrics.RecordUploadStart()
	start := time.Now()

	body := r.Body
	if s.cfg.Limits.MaxUploadBytes > 0 {
		body = http.MaxBytesReader(w, body, s.cfg.Limits.MaxUploadBytes)
	}
	var reader io.Reader = body
	if s.cfg.Limits.RateLimitBytesPerSecond > 0 {
		reader = ratelimit.NewReader(r.Context(), body, s.cfg.Limits.RateLimitBytesPerSecond)
	}

	id, err := wordpass.Generate()
	if err != nil {
		s.metrics.RecordUploadEnd(0, time.Since(start).Seconds(), "generate_id")
		http.Error(w, "failed to allocate identifier", http.StatusInternalServerError)
		return
	}
	key := tarhash.Derive(id.String(), s.cfg.General.TarSalt)

	// Peek the first block's unencrypted header: it can be parsed
	// and validated without the passphrase, so toc can reject an
	// obviously malformed upload (wrong magic, unsupported variant)
	// before spending storage on it, without ever decrypting
	// anything.
	buffered := bufio.NewReaderSize(reader, codec.HeaderSize)
	headerBytes, err := buffered.Peek(codec.HeaderSize)
	if err != nil && err != io.EOF {
		s.metrics.RecordUploadEnd(0, time.Since(start).Seconds(), "io")
		http.Error(w, "upload failed", http.StatusBadRequest)
		return
	}
	if _, err := codec.ParseHeader(headerBytes); err != nil {
		s.metrics.RecordCodecError(codecErrorKind(err))
		s.metrics.RecordUploadEnd(0, time.Since(start).Seconds(), "invalid_codec_header")
		http.Error(w, "not a valid toc upload", http.StatusBadRequest)
		return
	}
	reader = buffered

	ttl := time.Duration(s.cfg.General.DefaultTTLSeconds) * time.Second
	if v := r.URL.Query().Get("ttl_s"); v != "" {
		if secs, err := strconv.ParseInt(v, 10, 64); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}
	now := time.Now()
	entry := &meta.Entry{
		OwnerToken:  username,
		CreatedAt:   now.Unix(),
		DeleteAt:    now.Add(ttl).Unix(),
		Finished:    false,
		ContentType: r.Header.Get("Content-Type"),
		Filename:    r.Header.Get("X-Toc-Filename"),
	}
	// Written before the blob is fully on disk, so a downloader that
	// arrives mid-upload finds an entry to poll and block on instead
	// of a bare 404.
	if err := s.store.Set(key, entry); err != nil {
		s.metrics.RecordUploadEnd(0, time.Since(start).Seconds(), "metadata")
		http.Error(w, "failed to record upload", http.StatusInternalServerError)
		return
	}

	tmpPath := s.store.BlobPath(key) + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		s.metrics.RecordUploadEnd(0, time.Since(start).Seconds(), "storage")
		http.Error(w, "failed to store upload", http.StatusInternalServerError)
		return
	}

	n, copyErr := io.Copy(f, reader)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		s.store.Delete(key)
		s.metrics.RecordUploadEnd(n, time.Since(start).Seconds(), "io")
		http.Error(w, "upload failed", http.StatusBadRequest)
		return
	}
	if err := os.Rename(tmpPath, s.store.BlobPath(key)); err != nil {
		os.Remove(tmpPath)
		s.store.Delete(key)
		s.metrics.RecordUploadEnd(n, time.Since(start).Seconds(), "storage")
		http.Error(w, "upload failed", http.StatusInternalServerError)
		return
	}

	entry.Finished = true
	entry.Size = n
	if err := s.store.Set(key, entry); err != nil {
		s.metrics.RecordUploadEnd(n, time.Since(start).Seconds(), "metadata")
		http.Error(w, "failed to record upload", http.StatusInternalServerError)
		return
	}

	s.metrics.RecordUploadEnd(n, time.Since(start).Seconds(), "")
	s.log.Info("upload accepted",
		logging.KeyUploadID, id.String(),
		logging.KeyUsername, username,
		logging.KeyBytes, n,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(uploadResponse{ID: id.String(), DeleteAt: entry.DeleteAt})
}

// codecErrorKind maps a codec parse error to the short label used on
// the CodecErrorsTotal metric.
func codecErrorKind(err error) string {
	switch {
	case errors.Is(err, codec.ErrInvalidHeader):
		return "invalid_header"
	case errors.Is(err, codec.ErrUnsupportedVariant):
		return "unsupported_variant"
	default:
		return "other"
	}
}
