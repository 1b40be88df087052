package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wellbeing-video-service/internal/models"
)

const searchBody = `{"items":[
	{"id":{"kind":"youtube#video","videoId":"abc"}},
	{"id":{"kind":"youtube#video","videoId":"def"}}
]}`

const videosBody = `{"items":[
	{"id":"abc","snippet":{"title":"Meditação guiada","description":"d1","channelTitle":"Canal",
	  "tags":["calma"],"thumbnails":{"default":{"url":"http://t/d.jpg"},"high":{"url":"http://t/h.jpg"}}},
	 "contentDetails":{"duration":"PT12M30S"}},
	{"id":"def","snippet":{"title":"Chuva","description":"d2","channelTitle":"Sons",
	  "thumbnails":{"medium":{"url":"http://t/m.jpg"}}},
	 "contentDetails":{"duration":"garbage"}}
]}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchVideos(t *testing.T) {
	var searchQuery, videosQuery map[string]string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := map[string]string{}
		for k := range r.URL.Query() {
			q[k] = r.URL.Query().Get(k)
		}
		switch r.URL.Path {
		case "/search":
			searchQuery = q
			_, _ = w.Write([]byte(searchBody))
		case "/videos":
			videosQuery = q
			_, _ = w.Write([]byte(videosBody))
		default:
			http.NotFound(w, r)
		}
	})

	c := NewClient(Options{APIKey: "k", BaseURL: srv.URL})
	videos, err := c.SearchVideos(context.Background(), "yoga nidra", models.SearchFilters{
		MaxResults: 3,
		Duration:   models.DurationLong,
		Language:   "pt",
	})
	if err != nil {
		t.Fatalf("SearchVideos: %v", err)
	}

	wantSearch := map[string]string{
		"q": "yoga nidra", "type": "video", "maxResults": "3", "videoDuration": "long",
		"relevanceLanguage": "pt", "safeSearch": "moderate", "videoEmbeddable": "true", "key": "k",
	}
	for k, v := range wantSearch {
		if searchQuery[k] != v {
			t.Errorf("search param %s=%q want=%q", k, searchQuery[k], v)
		}
	}
	if videosQuery["id"] != "abc,def" {
		t.Errorf("videos id=%q want=abc,def", videosQuery["id"])
	}

	if len(videos) != 2 {
		t.Fatalf("videos=%d want=2", len(videos))
	}
	first := videos[0]
	if first.ID != "abc" || first.Title != "Meditação guiada" || first.ChannelTitle != "Canal" {
		t.Errorf("unexpected first video: %+v", first)
	}
	if first.DurationSeconds != 750 {
		t.Errorf("duration=%d want=750", first.DurationSeconds)
	}
	if first.ThumbnailURL != "http://t/h.jpg" {
		t.Errorf("thumbnail=%q want high", first.ThumbnailURL)
	}
	if first.ContentURL != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("content url=%q", first.ContentURL)
	}

	second := videos[1]
	if second.DurationSeconds != 0 {
		t.Errorf("unparsable duration=%d want=0", second.DurationSeconds)
	}
	if second.ThumbnailURL != "http://t/m.jpg" {
		t.Errorf("thumbnail=%q want medium fallback", second.ThumbnailURL)
	}
	if second.Tags == nil || len(second.Tags) != 0 {
		t.Errorf("tags=%v want empty non-nil", second.Tags)
	}
}

func TestSearchVideos_MissingAPIKey(t *testing.T) {
	called := false
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	c := NewClient(Options{APIKey: "  ", BaseURL: srv.URL})
	_, err := c.SearchVideos(context.Background(), "q", models.SearchFilters{})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err=%v want ErrMissingAPIKey", err)
	}
	if called {
		t.Fatal("server should not be called without a key")
	}
}

func TestSearchVideos_NoResults(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	c := NewClient(Options{APIKey: "k", BaseURL: srv.URL})
	_, err := c.SearchVideos(context.Background(), "q", models.SearchFilters{})
	if !errors.Is(err, ErrNoResults) {
		t.Fatalf("err=%v want ErrNoResults", err)
	}
}

func TestSearchVideos_StatusError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quotaExceeded"}}`, http.StatusForbidden)
	})

	c := NewClient(Options{APIKey: "secret", BaseURL: srv.URL})
	_, err := c.SearchVideos(context.Background(), "q", models.SearchFilters{})

	var serr *StatusError
	if !errors.As(err, &serr) || serr.Code != http.StatusForbidden {
		t.Fatalf("err=%v want StatusError 403", err)
	}
	if strings.Contains(err.Error(), "secret") {
		t.Fatalf("error leaks api key: %v", err)
	}
}

func TestSearchVideos_TransportErrorDoesNotLeakKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(Options{APIKey: "secret", BaseURL: url})
	_, err := c.SearchVideos(context.Background(), "q", models.SearchFilters{})
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if strings.Contains(err.Error(), "secret") {
		t.Fatalf("error leaks api key: %v", err)
	}
}

func TestSearch_DefaultFilters(t *testing.T) {
	var got map[string][]string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	c := NewClient(Options{APIKey: "k", BaseURL: srv.URL + "/"})
	if _, err := c.Search(context.Background(), "q", models.SearchFilters{MaxResults: 80}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got["maxResults"][0] != "50" {
		t.Errorf("maxResults=%v want capped 50", got["maxResults"])
	}
	if got["videoDuration"][0] != "any" {
		t.Errorf("videoDuration=%v want any", got["videoDuration"])
	}
	if _, ok := got["relevanceLanguage"]; ok {
		t.Errorf("relevanceLanguage should be omitted when empty")
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"PT15M", 900, false},
		{"PT1H2M3S", 3723, false},
		{"PT45S", 45, false},
		{"P1DT1S", 86401, false},
		{"P0D", 0, false},
		{"PT10.5S", 10, false},
		{"", 0, true},
		{"P", 0, true},
		{"PT", 0, true},
		{"15:00", 0, true},
		{"PT5X", 0, true},
		{"P99999999999999999D", 0, true},
		{"P99999999999999999999999D", 0, true},
		{"P24856D", 0, true},
		{"P24855DT3H14M7S", 2147483647, false},
		{"P24855DT3H14M8S", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("seconds=%d want=%d", got, tt.want)
			}
		})
	}
}
