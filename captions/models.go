package captions

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Request is the POST /api/captions body. Pagination fields are pointers so
// omitted values fall back to the configured defaults.
type Request struct {
	URL        string       `json:"url"`
	ChunkSize  *int         `json:"chunk_size"`
	MaxChunks  *int         `json:"max_chunks"`
	StartIndex *int         `json:"start_index"`
	Language   LanguageList `json:"language"`
}

// LanguageList accepts either a single language code or an ordered array of
// codes, preserving request order.
type LanguageList []string

func (l *LanguageList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		if single == "" {
			*l = nil
			return nil
		}
		*l = LanguageList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.New("language must be a string or an array of strings")
	}
	*l = LanguageList(many)
	return nil
}

// TrackInfo is the per-track metadata echoed back in available_languages.
type TrackInfo struct {
	Language             string   `json:"language"`
	LanguageCode         string   `json:"language_code"`
	IsGenerated          bool     `json:"is_generated"`
	IsTranslatable       bool     `json:"is_translatable"`
	TranslationLanguages []string `json:"translation_languages"`
}

type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Result is the success response body.
type Result struct {
	VideoID              string      `json:"video_id"`
	TotalCharacters      int         `json:"total_characters"`
	SelectedLanguage     string      `json:"selected_language"`
	SelectedLanguageCode string      `json:"selected_language_code"`
	IsGenerated          bool        `json:"is_generated"`
	AvailableLanguages   []TrackInfo `json:"available_languages"`
	Chunks               []Chunk     `json:"chunks"`
	NextIndex            *int        `json:"next_index"`
	TotalChunks          int         `json:"total_chunks"`
}
