package scholarships

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	commonerrors "scholarship-matcher/internal/common/errors"
	"scholarship-matcher/internal/models"
)

// MaxSearchSize caps the number of documents fetched per search.
const MaxSearchSize = 1000

// ElasticsearchSource reads scholarships from a search index.
type ElasticsearchSource struct {
	client *elasticsearch.Client
	index  string
}

func NewElasticsearchSource(client *elasticsearch.Client, index string) *ElasticsearchSource {
	return &ElasticsearchSource{client: client, index: index}
}

func (s *ElasticsearchSource) Name() string { return "elasticsearch" }

type scholarshipDoc struct {
	TitleEN      string    `json:"title_en"`
	TitleAR      string    `json:"title_ar"`
	UniversityEN string    `json:"university_en"`
	UniversityAR string    `json:"university_ar"`
	CountryEN    string    `json:"country_en"`
	CountryAR    string    `json:"country_ar"`
	Deadline     time.Time `json:"deadline"`
	FundingType  string    `json:"funding_type"`
	StudyLevels  []string  `json:"study_levels"`
	FieldOfStudy string    `json:"field_of_study"`
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string         `json:"_id"`
			Source scholarshipDoc `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func activeQuery() map[string]interface{} {
	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []interface{}{
					map[string]interface{}{"term": map[string]interface{}{"is_active": true}},
				},
			},
		},
		"sort": []interface{}{
			map[string]interface{}{"deadline": map[string]interface{}{"order": "asc"}},
		},
	}
}

func (s *ElasticsearchSource) List(ctx context.Context) ([]models.Scholarship, error) {
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(activeQuery()); err != nil {
		return nil, commonerrors.NewSearchQueryFailedError(s.index, err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(&body),
		s.client.Search.WithSize(MaxSearchSize),
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, commonerrors.NewScholarshipSourceTimeoutError(s.Name())
		}
		return nil, commonerrors.NewSearchQueryFailedError(s.index, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, commonerrors.NewIndexNotFoundError(s.index)
	}
	if res.IsError() {
		return nil, commonerrors.NewSearchQueryFailedError(s.index, fmt.Errorf("status %s", res.Status()))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, commonerrors.NewSearchQueryFailedError(s.index, fmt.Errorf("decode: %w", err))
	}

	out := make([]models.Scholarship, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		d := hit.Source
		out = append(out, models.Scholarship{
			ID:           hit.ID,
			Title:        models.Bilingual{EN: d.TitleEN, AR: d.TitleAR},
			University:   models.Bilingual{EN: d.UniversityEN, AR: d.UniversityAR},
			Country:      models.Bilingual{EN: d.CountryEN, AR: d.CountryAR},
			Deadline:     d.Deadline,
			FundingType:  d.FundingType,
			StudyLevels:  d.StudyLevels,
			FieldOfStudy: d.FieldOfStudy,
		})
	}
	return out, nil
}
