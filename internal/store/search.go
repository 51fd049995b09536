package store

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	stderrors "github.com/Growthlabsg/venturematch/internal/common/errors"
	"github.com/Growthlabsg/venturematch/internal/models"
)

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source models.Job `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// SearchJobs queries the jobs index for postings matching any of the given
// keywords across title, description and skills.
func (s *Store) SearchJobs(ctx context.Context, keywords []string, size int) ([]models.Job, error) {
	if s.es == nil {
		return nil, nil
	}
	if size <= 0 {
		size = 50
	}

	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  strings.Join(keywords, " "),
				"fields": []string{"title^3", "description^2", "skills"},
				"type":   "best_fields",
			},
		},
	}
	body, _ := json.Marshal(queryBody)

	req := esapi.SearchRequest{
		Index: []string{s.config.JobsIndex},
		Body:  strings.NewReader(string(body)),
		Size:  &size,
	}

	res, err := req.Do(ctx, s.es)
	if err != nil {
		return nil, stderrors.NewSearchFailedError(err.Error())
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, stderrors.NewSearchFailedError(res.Status())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, stderrors.NewSearchFailedError(err.Error())
	}

	jobs := make([]models.Job, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		jobs = append(jobs, hit.Source)
	}
	return jobs, nil
}
