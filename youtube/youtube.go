package youtube

import (
	"context"

	"github.com/pkg/errors"
)

// Track describes one caption track advertised for a video. Tracks are
// read-only; the selection logic never mutates them.
type Track struct {
	Language             string   `json:"language"`
	LanguageCode         string   `json:"language_code"`
	IsGenerated          bool     `json:"is_generated"`
	IsTranslatable       bool     `json:"is_translatable"`
	TranslationLanguages []string `json:"translation_languages"`

	// BaseURL is the timedtext endpoint for this track. Only the client
	// that listed the track needs it.
	BaseURL string `json:"-"`
}

// TrackSource is the upstream transcript capability: list the tracks for a
// video, materialize one track's text, or materialize it translated.
type TrackSource interface {
	ListTracks(ctx context.Context, videoID string) ([]Track, error)
	FetchText(ctx context.Context, track Track) (string, error)
	Translate(ctx context.Context, track Track, languageCode string) (string, error)
}

// Upstream failure kinds. Callers match with errors.Is and map them to
// HTTP statuses; they must not be collapsed into one another.
var (
	ErrInvalidURL          = errors.New("invalid YouTube URL")
	ErrVideoUnavailable    = errors.New("video is unavailable")
	ErrTranscriptsDisabled = errors.New("transcripts are disabled")
	ErrNoTranscript        = errors.New("no transcript available")
)
