// Package validation checks uploaded recordings before they reach the
// processing pipeline.
package validation

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
)

var ErrDisallowedFileType = errors.New("file type not allowed")

// allowedMIMETypes lists the sniffed content types accepted as recordings.
// Video containers are accepted because meeting tools export mp4 and webm.
var allowedMIMETypes = map[string]bool{
	"audio/mpeg":      true,
	"audio/wave":      true,
	"audio/wav":       true,
	"audio/x-wav":     true,
	"audio/ogg":       true,
	"application/ogg": true,
	"audio/flac":      true,
	"audio/mp4":       true,
	"audio/webm":      true,
	"video/mp4":       true,
	"video/webm":      true,
}

const magicBytesBufferSize = 512

// DeclaredMediaType reports whether a client declared Content-Type names an
// audio or video payload.
func DeclaredMediaType(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, "audio/") || strings.HasPrefix(mt, "video/")
}

// ValidateMagicBytes sniffs the first bytes of reader and rewinds it. It
// returns the detected MIME type and whether it is an accepted recording
// format.
func ValidateMagicBytes(reader io.ReadSeeker) (detected string, allowed bool, err error) {
	buf := make([]byte, magicBytesBufferSize)
	n, err := io.ReadFull(reader, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", false, err
	}

	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return "", false, err
	}

	if n == 0 {
		return "application/octet-stream", false, nil
	}
	buf = buf[:n]

	detected = detectAudioMagicBytes(buf)
	if detected == "" {
		detected = http.DetectContentType(buf)
	}
	return detected, allowedMIMETypes[detected], nil
}

// detectAudioMagicBytes covers containers http.DetectContentType gets wrong
// or does not know.
func detectAudioMagicBytes(buf []byte) string {
	switch {
	case len(buf) < 4:
		return ""
	case bytes.HasPrefix(buf, []byte{0x1A, 0x45, 0xDF, 0xA3}):
		// EBML; webm and mkv share it
		return "video/webm"
	case bytes.HasPrefix(buf, []byte("fLaC")):
		return "audio/flac"
	case bytes.HasPrefix(buf, []byte("ID3")):
		return "audio/mpeg"
	case buf[0] == 0xFF && (buf[1]&0xFE == 0xFA || buf[1]&0xFE == 0xF2):
		// MPEG-1/2 layer III frame sync without an ID3 tag
		return "audio/mpeg"
	}

	if len(buf) >= 12 && string(buf[4:8]) == "ftyp" {
		switch string(buf[8:12]) {
		case "M4A ", "M4B ":
			return "audio/mp4"
		case "qt  ":
			return "video/quicktime"
		default:
			return "video/mp4"
		}
	}
	return ""
}
