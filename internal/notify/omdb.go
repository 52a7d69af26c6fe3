// Package notify posts the new-media announcement to a Telegram channel,
// decorated with metadata and poster art from the OMDB API.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/failsafe-go/failsafe-go/failsafehttp"
)

// Movie is the subset of the OMDB response used in the announcement.
type Movie struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Plot       string `json:"Plot"`
	Genre      string `json:"Genre"`
	Poster     string `json:"Poster"`
	ImdbID     string `json:"imdbID"`
	ImdbRating string `json:"imdbRating"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// OMDBClient queries the OMDB movie-metadata API.
type OMDBClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewOMDBClient(apiKey string) *OMDBClient {
	return &OMDBClient{
		BaseURL: "https://www.omdbapi.com",
		APIKey:  apiKey,
		HTTP:    newRetryingClient(),
	}
}

// newRetryingClient wraps the transport in a retry policy; metadata lookups
// are the one place where a flaky network is worth retrying automatically.
func newRetryingClient() *http.Client {
	retry := failsafehttp.NewRetryPolicyBuilder().
		WithBackoff(time.Second, 10*time.Second).
		WithMaxRetries(2).
		Build()

	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: failsafehttp.NewRoundTripper(nil, retry),
	}
}

// Lookup fetches movie metadata by title and year.
func (c *OMDBClient) Lookup(ctx context.Context, title, year string) (Movie, error) {
	query := url.Values{}
	query.Set("apikey", c.APIKey)
	query.Set("t", title)
	query.Set("y", year)
	query.Set("plot", "short")
	query.Set("r", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/?"+query.Encode(), nil)
	if err != nil {
		return Movie{}, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Movie{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Movie{}, fmt.Errorf("omdb returned status %d", resp.StatusCode)
	}

	var movie Movie
	if err := json.NewDecoder(resp.Body).Decode(&movie); err != nil {
		return Movie{}, err
	}
	if movie.Response == "False" {
		return Movie{}, fmt.Errorf("omdb: %s", movie.Error)
	}
	return movie, nil
}

// DownloadPoster saves the movie's poster image to the temp directory and
// returns its path.
func (c *OMDBClient) DownloadPoster(ctx context.Context, movie Movie) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, movie.Poster, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("poster download returned status %d", resp.StatusCode)
	}

	path := filepath.Join(os.TempDir(), movie.Title+".jpg")
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.ReadFrom(resp.Body); err != nil {
		return "", err
	}
	return path, nil
}
