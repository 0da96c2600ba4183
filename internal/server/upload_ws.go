package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"nhooyr.io/websocket"

	"github.com/postalsys/toc/internal/codec"
	"github.com/postalsys/toc/internal/logging"
	"github.com/postalsys/toc/internal/meta"
	"github.com/postalsys/toc/internal/tarhash"
	"github.com/postalsys/toc/internal/wordpass"
)

// handleUploadWS accepts the same encrypted byte stream as
// handleUpload, but over a websocket connection instead of a single
// HTTP request body. Each binary message is appended to the blob in
// order; a final text message (its body is ignored) ends the
// transfer and triggers the JSON response.
func (s *Server) handleUploadWS(w http.ResponseWriter, r *http.Request) {
	username, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	s.metrics.RecordUploadStart()
	start := time.Now()

	id, err := wordpass.Generate()
	if err != nil {
		conn.Close(websocket.StatusInternalError, "failed to allocate identifier")
		s.metrics.RecordUploadEnd(0, time.Since(start).Seconds(), "generate_id")
		return
	}
	key := tarhash.Derive(id.String(), s.cfg.General.TarSalt)

	ttl := time.Duration(s.cfg.General.DefaultTTLSeconds) * time.Second
	now := time.Now()
	entry := &meta.Entry{
		OwnerToken: username,
		CreatedAt:  now.Unix(),
		DeleteAt:   now.Add(ttl).Unix(),
		Finished:   false,
	}
	// Written before any bytes are on disk, so a downloader that dials
	// in mid-transfer finds an entry to poll and block on instead of a
	// bare 404, same as the REST upload path.
	if err := s.store.Set(key, entry); err != nil {
		conn.Close(websocket.StatusInternalError, "failed to record upload")
		s.metrics.RecordUploadEnd(0, time.Since(start).Seconds(), "metadata")
		return
	}

	tmpPath := s.store.BlobPath(key) + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		s.store.Delete(key)
		conn.Close(websocket.StatusInternalError, "failed to store upload")
		s.metrics.RecordUploadEnd(0, time.Since(start).Seconds(), "storage")
		return
	}

	var total int64
	var failed bool
	var headerChecked bool
	var headerBuf bytes.Buffer
	for {
		msgType, rdr, err := conn.Reader(ctx)
		if err != nil {
			if !failed {
				failed = true
			}
			break
		}
		if msgType == websocket.MessageText {
			// A text frame signals end of stream; its body is ignored.
			break
		}

		var dst io.Writer = f
		if !headerChecked {
			dst = io.MultiWriter(f, &headerBuf)
		}

		n, err := io.Copy(dst, rdr)
		total += n
		if err != nil {
			failed = true
			break
		}

		if !headerChecked && headerBuf.Len() >= codec.HeaderSize {
			if _, err := codec.ParseHeader(headerBuf.Bytes()[:codec.HeaderSize]); err != nil {
				s.metrics.RecordCodecError(codecErrorKind(err))
				failed = true
				break
			}
			headerChecked = true
			headerBuf.Reset()
		}

		if s.cfg.Limits.MaxUploadBytes > 0 && total > s.cfg.Limits.MaxUploadBytes {
			failed = true
			break
		}
	}
	closeErr := f.Close()

	if !failed && !headerChecked {
		// Stream ended before a full header arrived: too short to be a
		// real toc upload.
		failed = true
	}

	if failed || closeErr != nil {
		os.Remove(tmpPath)
		s.store.Delete(key)
		conn.Close(websocket.StatusProtocolError, "upload failed")
		s.metrics.RecordUploadEnd(total, time.Since(start).Seconds(), "io")
		return
	}
	if err := os.Rename(tmpPath, s.store.BlobPath(key)); err != nil {
		os.Remove(tmpPath)
		s.store.Delete(key)
		conn.Close(websocket.StatusInternalError, "upload failed")
		s.metrics.RecordUploadEnd(total, time.Since(start).Seconds(), "storage")
		return
	}

	entry.Finished = true
	entry.Size = total
	if err := s.store.Set(key, entry); err != nil {
		conn.Close(websocket.StatusInternalError, "failed to record upload")
		s.metrics.RecordUploadEnd(total, time.Since(start).Seconds(), "metadata")
		return
	}

	s.metrics.RecordUploadEnd(total, time.Since(start).Seconds(), "")
	s.log.Info("upload accepted",
		logging.KeyUploadID, id.String(),
		logging.KeyUsername, username,
		logging.KeyBytes, total,
	)

	resp, _ := json.Marshal(uploadResponse{ID: id.String(), DeleteAt: entry.DeleteAt})
	writer, err := conn.Writer(ctx, websocket.MessageText)
	if err == nil {
		writer.Write(resp)
		writer.Close()
	}
	conn.Close(websocket.StatusNormalClosure, "")
}
