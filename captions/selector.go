package captions

import (
	"context"

	"yt-captions/youtube"
)

// selection is a materialized transcript plus the metadata of the track it
// came from. A translated selection carries the requested language code and
// the original track's generated flag.
type selection struct {
	Text         string
	Language     string
	LanguageCode string
	IsGenerated  bool
}

// selectTranscript picks exactly one track and materializes its text.
// Rules are evaluated in strict priority order, first match wins:
//
//  1. manual track matching a requested language, in request order
//  2. generated track matching a requested language, in request order
//  3. any translatable track offering a requested language as a target
//  4. no preference: manual en > first manual > generated en > first generated
//
// A populated request list that matches nothing is terminal: it does not
// fall back to the no-preference chain. At most one fetch (or one translate)
// call is made against the source.
func selectTranscript(ctx context.Context, source youtube.TrackSource, tracks []youtube.Track, requested []string) (*selection, error) {
	if len(requested) > 0 {
		for _, lang := range requested {
			for _, track := range tracks {
				if !track.IsGenerated && track.LanguageCode == lang {
					return fetchTrack(ctx, source, track)
				}
			}
		}

		for _, lang := range requested {
			for _, track := range tracks {
				if track.IsGenerated && track.LanguageCode == lang {
					return fetchTrack(ctx, source, track)
				}
			}
		}

		for _, lang := range requested {
			for _, track := range tracks {
				if track.IsTranslatable && containsLanguage(track.TranslationLanguages, lang) {
					text, err := source.Translate(ctx, track, lang)
					if err != nil {
						return nil, err
					}
					return &selection{
						Text:         text,
						Language:     lang,
						LanguageCode: lang,
						IsGenerated:  track.IsGenerated,
					}, nil
				}
			}
		}

		return nil, youtube.ErrNoTranscript
	}

	for _, track := range tracks {
		if !track.IsGenerated && track.LanguageCode == "en" {
			return fetchTrack(ctx, source, track)
		}
	}
	for _, track := range tracks {
		if !track.IsGenerated {
			return fetchTrack(ctx, source, track)
		}
	}
	for _, track := range tracks {
		if track.IsGenerated && track.LanguageCode == "en" {
			return fetchTrack(ctx, source, track)
		}
	}
	for _, track := range tracks {
		if track.IsGenerated {
			return fetchTrack(ctx, source, track)
		}
	}

	return nil, youtube.ErrNoTranscript
}

func fetchTrack(ctx context.Context, source youtube.TrackSource, track youtube.Track) (*selection, error) {
	text, err := source.FetchText(ctx, track)
	if err != nil {
		return nil, err
	}
	return &selection{
		Text:         text,
		Language:     track.Language,
		LanguageCode: track.LanguageCode,
		IsGenerated:  track.IsGenerated,
	}, nil
}

func containsLanguage(codes []string, lang string) bool {
	for _, code := range codes {
		if code == lang {
			return true
		}
	}
	return false
}
