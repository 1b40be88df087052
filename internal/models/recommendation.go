package models

import "time"

// Category is one of the topical buckets used to group recommendations.
type Category string

const (
	CategoryNature     Category = "nature"
	CategoryMeditation Category = "meditation"
	CategoryBreathing  Category = "breathing"
	CategoryMusic      Category = "music"
)

// CategoryOrder is the order in which category groups appear in a response.
var CategoryOrder = []Category{CategoryNature, CategoryMeditation, CategoryBreathing, CategoryMusic}

// Duration is the preferred video length bucket.
type Duration string

const (
	DurationShort  Duration = "short"
	DurationMedium Duration = "medium"
	DurationLong   Duration = "long"
)

const (
	DefaultLanguage   = "pt"
	DefaultMaxResults = 10
	MaxResultsLimit   = 50
)

// RequestOptions holds the preferences recovered from the prompt.
type RequestOptions struct {
	Category          Category `json:"category,omitempty"`
	PreferredDuration Duration `json:"preferred_duration,omitempty"`
	Language          string   `json:"language"`
	MaxResults        int      `json:"max_results"`
}

// NormalizeMaxResults falls back to the default when n is outside [1, MaxResultsLimit].
func NormalizeMaxResults(n int) int {
	if n < 1 || n > MaxResultsLimit {
		return DefaultMaxResults
	}
	return n
}

// SearchFilters are passed to the catalog with every query.
type SearchFilters struct {
	MaxResults int
	Duration   Duration
	Language   string
	SafeSearch string
}

// CandidateVideo is a video as returned by the catalog.
type CandidateVideo struct {
	ID              string   `json:"videoId"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ThumbnailURL    string   `json:"thumbnailUrl"`
	ContentURL      string   `json:"contentUrl"`
	DurationSeconds int      `json:"durationSeconds"`
	ChannelTitle    string   `json:"channelTitle"`
	Tags            []string `json:"tags"`
}

// RankedVideo is a candidate with its match score and recommendation reason.
type RankedVideo struct {
	CandidateVideo
	Reason     string `json:"reason"`
	MatchScore int    `json:"matchScore"`
}

// CategoryRecommendation groups the top videos of one category.
type CategoryRecommendation struct {
	Category Category      `json:"category"`
	Videos   []RankedVideo `json:"videos"`
}

// RecommendationResponse is the success payload returned by the tool.
type RecommendationResponse struct {
	Recommendations  []CategoryRecommendation `json:"recommendations"`
	Insights         string                   `json:"insights"`
	Suggestions      []string                 `json:"suggestions"`
	ProcessingTimeMs int64                    `json:"processingTimeMs"`
}

// ErrorResponse is the failure payload returned by the tool.
type ErrorResponse struct {
	Error            bool                     `json:"error"`
	Message          string                   `json:"message"`
	Recommendations  []CategoryRecommendation `json:"recommendations"`
	Insights         string                   `json:"insights"`
	Suggestions      []string                 `json:"suggestions"`
	ProcessingTimeMs int64                    `json:"processingTimeMs"`
}

// RunRecord is a stored summary of one recommendation run. It never holds user state.
type RunRecord struct {
	ID               string    `json:"id"`
	Queries          []string  `json:"queries"`
	Category         string    `json:"category,omitempty"`
	VideoCount       int       `json:"video_count"`
	Categories       []string  `json:"categories"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	CreatedAt        time.Time `json:"created_at"`
}
