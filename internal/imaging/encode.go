package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Gabrielcpmg93/sociarede/internal/feed"
)

// ErrDecode marks any failure to turn rendering-surface input into an image
// payload.
var ErrDecode = errors.New("image decode failed")

// Decode accepts either a data URL ("data:image/png;base64,....") as produced
// by browser file readers, or bare base64 with the mime type sniffed from the
// decoded bytes. Only image mime types are accepted.
func Decode(input string) (feed.ImagePayload, error) {
	if input == "" {
		return feed.ImagePayload{}, fmt.Errorf("%w: empty input", ErrDecode)
	}

	if rest, ok := strings.CutPrefix(input, "data:"); ok {
		return decodeDataURL(rest)
	}

	data, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return feed.ImagePayload{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return feed.ImagePayload{}, fmt.Errorf("%w: unsupported mime type %s", ErrDecode, mime)
	}
	return feed.ImagePayload{MimeType: mime, Data: data}, nil
}

func decodeDataURL(rest string) (feed.ImagePayload, error) {
	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return feed.ImagePayload{}, fmt.Errorf("%w: malformed data url", ErrDecode)
	}
	mime, found := strings.CutSuffix(meta, ";base64")
	if !found {
		return feed.ImagePayload{}, fmt.Errorf("%w: data url is not base64", ErrDecode)
	}
	if !strings.HasPrefix(mime, "image/") {
		return feed.ImagePayload{}, fmt.Errorf("%w: unsupported mime type %s", ErrDecode, mime)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return feed.ImagePayload{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return feed.ImagePayload{MimeType: mime, Data: data}, nil
}

// DataURL re-encodes a payload into the self-describing form stored on posts.
func DataURL(p feed.ImagePayload) string {
	return "data:" + p.MimeType + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}
