package vacation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"standup-bot/internal/logger"
	"standup-bot/internal/roster"
)

const (
	// statusApproved is the only leave status that counts as away. Pending,
	// denied and cancelled requests are excluded.
	statusApproved = "APPROVED"

	// maxPages bounds continuation-token paging against a misbehaving API.
	maxPages = 10

	requestTimeout = 10 * time.Second
)

// Resolver queries the vacation tracker for leaves overlapping a given day
// and maps the returned free-text names onto roster members.
type Resolver struct {
	baseURL    string
	apiKey     string
	roster     *roster.Roster
	httpClient *http.Client
}

func NewResolver(baseURL, apiKey string, r *roster.Roster) *Resolver {
	return &Resolver{
		baseURL:    baseURL,
		apiKey:     apiKey,
		roster:     r,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type leaveRecord struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Status    string `json:"status"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	User      struct {
		Name string `json:"name"`
	} `json:"user"`
}

type leavesResponse struct {
	Status    string        `json:"status"`
	NextToken string        `json:"nextToken"`
	Data      []leaveRecord `json:"data"`
}

// AwayToday returns the set of roster user IDs on approved leave for the
// given date. Leave entries whose names match no roster member are dropped;
// that fuzziness lives in the tracker's data, not here. Any transport or
// decode error fails the whole call, even if earlier pages succeeded.
func (r *Resolver) AwayToday(ctx context.Context, date string) Result {
	if r.baseURL == "" || r.apiKey == "" {
		return Unconfigured()
	}

	away := make(map[string]bool)
	nextToken := ""

	for page := 0; page < maxPages; page++ {
		resp, err := r.fetchPage(ctx, date, nextToken)
		if err != nil {
			logger.Log.WithError(err).Error("Vacation tracker lookup failed")
			return Failed(err)
		}

		for _, record := range resp.Data {
			if record.Status != statusApproved {
				continue
			}
			member, ok := r.roster.ByDisplayName(record.User.Name)
			if !ok {
				logger.Log.WithField("name", record.User.Name).
					Debug("Leave entry matches no roster member, skipping")
				continue
			}
			away[member.SlackUserID] = true
		}

		if resp.NextToken == "" {
			return Resolved(away)
		}
		nextToken = resp.NextToken
	}

	logger.Log.WithField("max_pages", maxPages).
		Warn("Vacation tracker paging stopped at page cap")
	return Resolved(away)
}

func (r *Resolver) fetchPage(ctx context.Context, date, nextToken string) (*leavesResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build vacation tracker request: %w", err)
	}

	params := url.Values{}
	params.Set("startDate", date)
	params.Set("endDate", date)
	params.Set("status", statusApproved)
	params.Set("expand", "user")
	if nextToken != "" {
		params.Set("nextToken", nextToken)
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("x-api-key", r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vacation tracker request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("vacation tracker returned status %d", resp.StatusCode)
	}

	var decoded leavesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode vacation tracker response: %w", err)
	}

	return &decoded, nil
}
