package service

import (
	"context"
	"hash/fnv"

	"github.com/reelmatch/backend/internal/client"
	"github.com/reelmatch/backend/internal/model"
)

// feedPages is how many catalog pages the feed rotates sessions across.
const feedPages = 20

type FeedService interface {
	Candidates(c context.Context, sessionID string) ([]client.Candidate, error)
	Resolve(c context.Context, kind model.CandidateKind, id uint) (client.Candidate, error)
}

type feedService struct {
	catalogClient client.CatalogClient
}

func newFeedService(catalogClient client.CatalogClient) FeedService {
	return &feedService{
		catalogClient: catalogClient,
	}
}

// Candidates returns the session's candidate feed. The catalog page is a pure
// function of the session id, so every participant in a session swipes the
// same ordered sequence.
func (f *feedService) Candidates(c context.Context, sessionID string) ([]client.Candidate, error) {
	return f.catalogClient.ListCandidates(c, client.FeedConfig{
		Kind: model.CandidateKindMovie,
		Page: pageForSession(sessionID),
	})
}

// Resolve fetches display metadata for a matched candidate.
func (f *feedService) Resolve(c context.Context, kind model.CandidateKind, id uint) (client.Candidate, error) {
	return f.catalogClient.ResolveCandidate(c, kind, id)
}

func pageForSession(sessionID string) int {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return int(h.Sum32()%feedPages) + 1
}
