package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yt-captions/captions"
	"yt-captions/errors"
)

type stubService struct {
	result *captions.Result
	err    error
	gotReq captions.Request
}

func (s *stubService) Get(ctx context.Context, req captions.Request) (*captions.Result, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func postCaptions(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/captions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHandleGetCaptions(t *testing.T) {
	service := &stubService{result: &captions.Result{
		VideoID:              "dQw4w9WgXcQ",
		TotalCharacters:      20,
		SelectedLanguage:     "English",
		SelectedLanguageCode: "en",
		AvailableLanguages:   []captions.TrackInfo{},
		Chunks: []captions.Chunk{
			{Index: 0, Text: "0123456789"},
			{Index: 1, Text: "ABCDEFGHIJ"},
		},
		TotalChunks: 2,
	}}
	handler := http.HandlerFunc(NewCaptionHandler(service).HandleGetCaptions)

	rr := postCaptions(t, handler,
		`{"url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ","chunk_size":10,"max_chunks":2}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["video_id"] != "dQw4w9WgXcQ" {
		t.Errorf("video_id = %v", resp["video_id"])
	}
	if resp["next_index"] != nil {
		t.Errorf("next_index = %v, want null", resp["next_index"])
	}
	if resp["total_chunks"] != float64(2) {
		t.Errorf("total_chunks = %v, want 2", resp["total_chunks"])
	}

	if service.gotReq.ChunkSize == nil || *service.gotReq.ChunkSize != 10 {
		t.Errorf("service saw chunk_size %v, want 10", service.gotReq.ChunkSize)
	}
}

func TestHandleGetCaptions_MalformedBody(t *testing.T) {
	handler := http.HandlerFunc(NewCaptionHandler(&stubService{}).HandleGetCaptions)

	rr := postCaptions(t, handler, `{not json`)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] == "" {
		t.Error("expected error message in body")
	}
}

func TestHandleGetCaptions_ServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid url", errors.InvalidInput("op", nil, "Invalid YouTube URL."), http.StatusBadRequest},
		{"transcripts disabled", errors.Forbidden("op", nil, "Transcripts are disabled for this video."), http.StatusForbidden},
		{"no transcript", errors.NotFound("op", nil, "No transcript available for this video in the requested language(s)."), http.StatusNotFound},
		{"internal", errors.Internal("op", nil, "Failed to retrieve transcript."), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(NewCaptionHandler(&stubService{err: tt.err}).HandleGetCaptions)

			rr := postCaptions(t, handler, `{"url":"https://youtu.be/dQw4w9WgXcQ"}`)

			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestHandleGetCaptions_MethodNotAllowed(t *testing.T) {
	handler := http.HandlerFunc(NewCaptionHandler(&stubService{}).HandleGetCaptions)

	req := httptest.NewRequest(http.MethodGet, "/api/captions", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}

func TestHandleHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	HandleHealthCheck(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	expected := `{"status":"healthy"}`
	if strings.TrimSpace(rr.Body.String()) != expected {
		t.Errorf("body = %q, want %q", rr.Body.String(), expected)
	}
}
