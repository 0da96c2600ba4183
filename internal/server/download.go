package server

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/postalsys/toc/internal/logging"
	"github.com/postalsys/toc/internal/meta"
	"github.com/postalsys/toc/internal/ratelimit"
	"github.com/postalsys/toc/internal/tarhash"
	"github.com/postalsys/toc/internal/wordpass"
)

// pollInterval is how often a blocked download re-checks the
// metadata store for an upload that was still in progress when the
// request arrived.
const pollInterval = 250 * time.Millisecond

// maxPollWait bounds how long a download will block waiting for an
// in-progress upload to finish, so a stalled sender can't pin a
// download connection open forever.
const maxPollWait = 2 * time.Minute

// errPollTimeout is returned by awaitFinished when an upload is still
// in progress after maxPollWait.
var errPollTimeout = fmt.Errorf("server: timed out waiting for upload to finish")

// handleDownload serves the encrypted blob named by the wordpass
// identifier in the URL path. Range requests are honored via
// http.ServeContent, so large transfers can be resumed.
//
// The identifier must be typed exactly: unlike cmd/toc's interactive
// prompt, a URL path segment gets no fuzzy-typo correction.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead && r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/d/")
	id, err := wordpass.Parse(idStr)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	key := tarhash.Derive(id.String(), s.cfg.General.TarSalt)

	entry, err := s.awaitFinished(r, key)
	if err != nil {
		writePollError(w, r, err)
		return
	}

	if r.Method == http.MethodDelete {
		s.handleDelete(w, r, key, entry)
		return
	}

	s.serveBlob(w, r, idStr, key, entry)
}

func writePollError(w http.ResponseWriter, r *http.Request, err error) {
	if err == errPollTimeout {
		http.Error(w, "upload still in progress, try again shortly", http.StatusServiceUnavailable)
		return
	}
	http.NotFound(w, r)
}

// serveBlob streams entry's ciphertext blob to w, honoring Range
// requests and, when the server is configured with a rate limit,
// throttling the response body.
func (s *Server) serveBlob(w http.ResponseWriter, r *http.Request, idStr string, key tarhash.Hash, entry *meta.Entry) {
	f, err := os.Open(s.store.BlobPath(key))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	s.metrics.RecordDownloadStart()
	start := time.Now()

	name := entry.Filename
	if name == "" {
		name = idStr + ".toc"
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, name))

	out := http.ResponseWriter(w)
	if s.cfg.Limits.RateLimitBytesPerSecond > 0 {
		out = &throttledResponseWriter{
			ResponseWriter: w,
			writer:         ratelimit.NewWriter(r.Context(), w, s.cfg.Limits.RateLimitBytesPerSecond),
		}
	}
	http.ServeContent(out, r, name, time.Unix(entry.CreatedAt, 0), f)

	s.metrics.RecordDownloadEnd(entry.Size, time.Since(start).Seconds(), "")
	s.log.Info("download served",
		logging.KeyUploadID, idStr,
		logging.KeyBytes, entry.Size,
	)
}

// awaitFinished returns the metadata entry for key once its upload
// has finished, blocking and polling the store if a downloader
// arrives while the sender is still streaming. It returns an error
// (possibly errPollTimeout) if the entry doesn't exist, has expired,
// or never finishes within maxPollWait.
func (s *Server) awaitFinished(r *http.Request, key tarhash.Hash) (*meta.Entry, error) {
	deadline := time.Now().Add(maxPollWait)
	for {
		entry, err := s.store.Get(key)
		if err != nil || entry == nil {
			return nil, fmt.Errorf("server: no such upload")
		}
		if entry.DeleteAt != 0 && entry.DeleteAt <= time.Now().Unix() {
			return nil, fmt.Errorf("server: upload expired")
		}
		if entry.Finished {
			return entry, nil
		}
		if time.Now().After(deadline) {
			return nil, errPollTimeout
		}

		select {
		case <-r.Context().Done():
			return nil, r.Context().Err()
		case <-time.After(pollInterval):
		}
	}
}

// throttledResponseWriter routes Write calls through a rate-limited
// io.Writer while still satisfying http.ResponseWriter, so
// http.ServeContent's header and status-code calls pass through
// untouched and only the response body is throttled.
type throttledResponseWriter struct {
	http.ResponseWriter
	writer interface{ Write([]byte) (int, error) }
}

func (t *throttledResponseWriter) Write(p []byte) (int, error) {
	return t.writer.Write(p)
}

// handleDelete removes an upload before its TTL expires. Only the
// user who uploaded it may do so.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, key tarhash.Hash, entry *meta.Entry) {
	username, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	if username != entry.OwnerToken {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	if err := s.store.Delete(key); err != nil {
		http.Error(w, "delete failed", http.StatusInternalServerError)
		return
	}
	s.log.Info("upload deleted", logging.KeyUploadID, key.String(), logging.KeyUsername, username)
	w.WriteHeader(http.StatusNoContent)
}
