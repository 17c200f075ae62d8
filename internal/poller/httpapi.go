package poller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPAPI implements MatchAPI against the server's /api routes. It is what a
// Go client embeds; browser clients speak the same endpoints directly.
type HTTPAPI struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewHTTPAPI(baseURL, token string) *HTTPAPI {
	return &HTTPAPI{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type voteRequest struct {
	CandidateID uint   `json:"candidateId"`
	Kind        string `json:"candidateKind"`
	Value       bool   `json:"value"`
}

type voteResponse struct {
	Accepted bool `json:"accepted"`
}

type matchResponse struct {
	Matched     bool  `json:"matched"`
	CandidateID uint  `json:"candidateId"`
	Votes       int32 `json:"votes"`
}

func (a *HTTPAPI) RecordVote(ctx context.Context, sessionID string, candidateID uint, kind string, value bool) (bool, error) {
	body, err := json.Marshal(voteRequest{
		CandidateID: candidateID,
		Kind:        kind,
		Value:       value,
	})
	if err != nil {
		return false, err
	}

	endpoint := fmt.Sprintf("%s/api/sessions/%s/votes", a.BaseURL, sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	var response voteResponse
	if err := a.do(req, &response); err != nil {
		return false, err
	}

	return response.Accepted, nil
}

func (a *HTTPAPI) CheckCandidate(ctx context.Context, sessionID string, candidateID uint) (CheckResult, error) {
	endpoint := fmt.Sprintf("%s/api/sessions/%s/candidates/%d/match", a.BaseURL, sessionID, candidateID)
	return a.checkEndpoint(ctx, endpoint)
}

func (a *HTTPAPI) CheckSession(ctx context.Context, sessionID string) (CheckResult, error) {
	endpoint := fmt.Sprintf("%s/api/sessions/%s/match", a.BaseURL, sessionID)
	return a.checkEndpoint(ctx, endpoint)
}

func (a *HTTPAPI) checkEndpoint(ctx context.Context, endpoint string) (CheckResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return CheckResult{}, err
	}

	var response matchResponse
	if err := a.do(req, &response); err != nil {
		return CheckResult{}, err
	}

	return CheckResult{
		Matched:     response.Matched,
		CandidateID: response.CandidateID,
		Votes:       response.Votes,
	}, nil
}

func (a *HTTPAPI) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+a.Token)

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server responded with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
