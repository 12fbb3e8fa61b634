package captions

import (
	"context"
	stderrors "errors"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"yt-captions/errors"
	"yt-captions/validation"
	"yt-captions/youtube"
)

// Service converts a caption request into one paginated transcript page.
type Service interface {
	Get(ctx context.Context, req Request) (*Result, error)
}

// Config carries the pagination defaults; they are resolved once at
// construction so the service never touches the environment.
type Config struct {
	DefaultChunkSize int
	DefaultMaxChunks int
}

type service struct {
	source youtube.TrackSource
	config Config
	log    *logrus.Entry
}

func NewService(source youtube.TrackSource, cfg Config) Service {
	return &service{
		source: source,
		config: cfg,
		log:    logrus.WithField("component", "captions"),
	}
}

func (s *service) Get(ctx context.Context, req Request) (*Result, error) {
	const op = "CaptionService.Get"

	if req.URL == "" {
		return nil, errors.InvalidInput(op, nil, "URL is required")
	}

	videoID, err := youtube.ExtractVideoID(req.URL)
	if err != nil {
		s.log.WithError(err).WithField("url", req.URL).Info("URL parsing failed")
		return nil, errors.InvalidInput(op, err, "Invalid YouTube URL.")
	}

	params := validation.PaginationParams{
		ChunkSize:  valueOrDefault(req.ChunkSize, s.config.DefaultChunkSize),
		MaxChunks:  valueOrDefault(req.MaxChunks, s.config.DefaultMaxChunks),
		StartIndex: valueOrDefault(req.StartIndex, 0),
	}
	if err := validation.ValidatePagination(params); err != nil {
		return nil, err
	}

	logger := s.log.WithField("video_id", videoID)

	tracks, err := s.source.ListTracks(ctx, videoID)
	if err != nil {
		logger.WithError(err).Warn("Failed to list caption tracks")
		return nil, mapUpstreamError(op, err)
	}

	selected, err := selectTranscript(ctx, s.source, tracks, req.Language)
	if err != nil {
		logger.WithError(err).WithField("languages", req.Language).Warn("Transcript selection failed")
		return nil, mapUpstreamError(op, err)
	}

	page := paginate(selected.Text, params.ChunkSize, params.MaxChunks, params.StartIndex)

	logger.WithFields(logrus.Fields{
		"language":     selected.LanguageCode,
		"is_generated": selected.IsGenerated,
		"total_chunks": page.TotalChunks,
		"start_index":  params.StartIndex,
	}).Info("Transcript selected and paginated")

	return &Result{
		VideoID:              videoID,
		TotalCharacters:      utf8.RuneCountInString(selected.Text),
		SelectedLanguage:     selected.Language,
		SelectedLanguageCode: selected.LanguageCode,
		IsGenerated:          selected.IsGenerated,
		AvailableLanguages:   trackInfos(tracks),
		Chunks:               page.Chunks,
		NextIndex:            page.NextIndex,
		TotalChunks:          page.TotalChunks,
	}, nil
}

func trackInfos(tracks []youtube.Track) []TrackInfo {
	infos := make([]TrackInfo, 0, len(tracks))
	for _, track := range tracks {
		info := TrackInfo{
			Language:             track.Language,
			LanguageCode:         track.LanguageCode,
			IsGenerated:          track.IsGenerated,
			IsTranslatable:       track.IsTranslatable,
			TranslationLanguages: track.TranslationLanguages,
		}
		if info.TranslationLanguages == nil {
			info.TranslationLanguages = []string{}
		}
		infos = append(infos, info)
	}
	return infos
}

func mapUpstreamError(op string, err error) error {
	switch {
	case stderrors.Is(err, youtube.ErrVideoUnavailable):
		return errors.NotFound(op, err, "Video is unavailable or private.")
	case stderrors.Is(err, youtube.ErrTranscriptsDisabled):
		return errors.Forbidden(op, err, "Transcripts are disabled for this video.")
	case stderrors.Is(err, youtube.ErrNoTranscript):
		return errors.NotFound(op, err, "No transcript available for this video in the requested language(s).")
	default:
		return errors.Internal(op, err, "Failed to retrieve transcript.")
	}
}

func valueOrDefault(value *int, defaultValue int) int {
	if value != nil {
		return *value
	}
	return defaultValue
}
