package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/songbridge/songbridge/internal/app/models"
	"github.com/songbridge/songbridge/internal/utils/errs"
	"github.com/songbridge/songbridge/internal/utils/logger"
	"go.uber.org/zap"
)

// Client talks to the media gateway: catalog lookups, source collection
// listing and stream URL acquisition. It implements app.MetadataResolver and
// app.StreamProvider.
type Client struct {
	baseURL string
	arl     string
	http    *http.Client
}

func CreateClient(baseURL, arl string) *Client {
	return &Client{
		baseURL: baseURL,
		arl:     arl,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type trackDoc struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	ISRC          string  `json:"isrc"`
	Duration      int     `json:"duration"`
	TrackPosition int     `json:"track_position"`
	DiskNumber    int     `json:"disk_number"`
	BPM           float64 `json:"bpm"`
	ReleaseDate   string  `json:"release_date"`
	TrackToken    string  `json:"track_token"`
	Artist        struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"artist"`
	Album struct {
		ID       int64  `json:"id"`
		Title    string `json:"title"`
		CoverBig string `json:"cover_big"`
	} `json:"album"`
}

func (d trackDoc) toModel() *models.Track {
	return &models.Track{
		ID:            d.ID,
		Title:         d.Title,
		ISRC:          d.ISRC,
		Duration:      d.Duration,
		TrackPosition: d.TrackPosition,
		DiskNumber:    d.DiskNumber,
		BPM:           d.BPM,
		ReleaseDate:   d.ReleaseDate,
		StreamToken:   d.TrackToken,
		Artist:        models.Artist{ID: d.Artist.ID, Name: d.Artist.Name},
		Album:         models.Album{ID: d.Album.ID, Title: d.Album.Title, CoverURL: d.Album.CoverBig},
	}
}

type rawItemDoc struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
	ISRC   string `json:"isrc"`
}

func (d rawItemDoc) toModel() models.RawItem {
	return models.RawItem{SourceID: d.ID, Name: d.Name, Artist: d.Artist, Album: d.Album, ISRC: d.ISRC}
}

// getJSON performs one GET and decodes the body. A 404 is reported as
// errs.ErrTrackNotFound so callers can tell missing from broken.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.arl != "" {
		req.Header.Set("Authorization", "Bearer "+c.arl)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return errs.ErrTrackNotFound
	default:
		return fmt.Errorf("media api: unexpected status %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Login verifies the credential against the gateway.
func (c *Client) Login(ctx context.Context) bool {
	const funcName = "Client.Login"

	var doc struct {
		LoggedIn bool `json:"logged_in"`
	}
	if err := c.getJSON(ctx, "/user/me", &doc); err != nil {
		logger.Warn("login failed",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return false
	}

	return doc.LoggedIn
}

func (c *Client) ResolveByISRC(ctx context.Context, isrc string) (*models.Track, error) {
	var doc trackDoc
	if err := c.getJSON(ctx, "/track/isrc:"+url.PathEscape(isrc), &doc); err != nil {
		return nil, err
	}
	if doc.ID == 0 {
		return nil, errs.ErrTrackNotFound
	}

	return doc.toModel(), nil
}

func (c *Client) ResolveByMetadata(ctx context.Context, name, artist, album string) (*models.Track, error) {
	q := url.Values{}
	q.Set("track", name)
	q.Set("artist", artist)
	q.Set("album", album)

	var doc struct {
		Data []trackDoc `json:"data"`
	}
	if err := c.getJSON(ctx, "/search/track?"+q.Encode(), &doc); err != nil {
		return nil, err
	}
	if len(doc.Data) == 0 || doc.Data[0].ID == 0 {
		return nil, errs.ErrTrackNotFound
	}

	// search rows are summaries; fetch the full record for the stream token
	return c.GetTrack(ctx, doc.Data[0].ID)
}

func (c *Client) GetTrack(ctx context.Context, catalogID int64) (*models.Track, error) {
	var doc trackDoc
	if err := c.getJSON(ctx, fmt.Sprintf("/track/%d", catalogID), &doc); err != nil {
		return nil, err
	}

	return doc.toModel(), nil
}

// FetchCollectionItems lists every item of a playlist or album, following
// pagination until the gateway reports no next page.
func (c *Client) FetchCollectionItems(ctx context.Context, kind string, sourceID string) (string, []models.RawItem, error) {
	var head struct {
		Title string `json:"title"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/%s/%s", kind, url.PathEscape(sourceID)), &head); err != nil {
		return "", nil, err
	}

	var items []models.RawItem
	path := fmt.Sprintf("/%s/%s/items", kind, url.PathEscape(sourceID))
	for path != "" {
		var page struct {
			Data []rawItemDoc `json:"data"`
			Next string       `json:"next"`
		}
		if err := c.getJSON(ctx, path, &page); err != nil {
			return "", nil, err
		}
		for _, doc := range page.Data {
			items = append(items, doc.toModel())
		}
		path = page.Next
	}

	return head.Title, items, nil
}

func (c *Client) FetchTrackItem(ctx context.Context, sourceID string) (models.RawItem, error) {
	var doc rawItemDoc
	if err := c.getJSON(ctx, "/source/track/"+url.PathEscape(sourceID), &doc); err != nil {
		return models.RawItem{}, err
	}

	return doc.toModel(), nil
}

func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)

	var doc struct {
		Data []struct {
			ID       int64  `json:"id"`
			Title    string `json:"title"`
			Duration int    `json:"duration"`
			Artist   struct {
				Name string `json:"name"`
			} `json:"artist"`
			Album struct {
				Title string `json:"title"`
			} `json:"album"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "/search?"+q.Encode(), &doc); err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(doc.Data))
	for _, row := range doc.Data {
		results = append(results, models.SearchResult{
			ID:       row.ID,
			Title:    row.Title,
			Artist:   row.Artist.Name,
			Album:    row.Album.Title,
			Duration: row.Duration,
		})
	}

	return results, nil
}

// StreamURL trades a track's stream token for an ephemeral download URL.
// A rejected token is errs.ErrAccessExpired; it is never retried.
func (c *Client) StreamURL(ctx context.Context, track *models.Track, bitrate string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"track_token": track.StreamToken,
		"bitrate":     bitrate,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/stream", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.arl != "" {
		req.Header.Set("Authorization", "Bearer "+c.arl)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusUnauthorized, http.StatusGone:
		return "", fmt.Errorf("%w: track %d", errs.ErrAccessExpired, track.ID)
	default:
		return "", fmt.Errorf("media api: unexpected status %d acquiring stream", resp.StatusCode)
	}

	var doc struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", err
	}
	if doc.URL == "" {
		return "", fmt.Errorf("%w: empty stream url for track %d", errs.ErrAccessExpired, track.ID)
	}

	return doc.URL, nil
}
