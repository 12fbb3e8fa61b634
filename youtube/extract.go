package youtube

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL.
// Supported shapes are youtube.com/watch?v=<id> (with or without www.) and
// youtu.be/<id>; extra query parameters and path segments are ignored.
// No network access happens here.
func ExtractVideoID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", errors.Wrap(ErrInvalidURL, "empty URL")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrap(ErrInvalidURL, err.Error())
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.Wrap(ErrInvalidURL, "URL must use http or https")
	}

	var id string
	switch parsed.Hostname() {
	case "youtu.be":
		id, _, _ = strings.Cut(strings.TrimPrefix(parsed.Path, "/"), "/")
	case "www.youtube.com", "youtube.com":
		id = parsed.Query().Get("v")
	default:
		return "", errors.Wrapf(ErrInvalidURL, "unsupported host %q", parsed.Hostname())
	}

	if !videoIDPattern.MatchString(id) {
		return "", errors.Wrapf(ErrInvalidURL, "no valid video ID in %q", rawURL)
	}

	return id, nil
}
