package usecase

import (
	"sort"
	"strings"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/catalog"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/dto"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/scoring"
)

const maxRecommendations = 5

const defaultSearchLimit = 20

type RecommendUsecase struct {
	catalog *catalog.Catalog
}

func NewRecommendUsecase(cat *catalog.Catalog) *RecommendUsecase {
	return &RecommendUsecase{catalog: cat}
}

// Recommend scores every catalog entry against the profile, sorts by
// score descending and returns the top 5. The sort is stable, so equal
// scores keep catalog order.
func (uc *RecommendUsecase) Recommend(p *model.UserProfile) []model.RecommendationItem {
	certs := uc.catalog.Certifications()

	items := make([]model.RecommendationItem, 0, len(certs))
	for i := range certs {
		score, reasons := scoring.Score(&certs[i], p)
		items = append(items, model.RecommendationItem{
			Certification: &certs[i],
			Score:         score,
			Reasons:       reasons,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	if len(items) > maxRecommendations {
		items = items[:maxRecommendations]
	}
	return items
}

// Search applies the provided filters as a conjunction, keeping
// catalog order, then truncates to the limit.
func (uc *RecommendUsecase) Search(req *dto.CertSearchRequest) []model.Certification {
	limit := req.Limit
	if limit == 0 {
		limit = defaultSearchLimit
	}

	items := make([]model.Certification, 0, limit)
	for _, c := range uc.catalog.Certifications() {
		if req.Area != "" && !strings.EqualFold(c.Area, req.Area) {
			continue
		}
		if req.Level != "" && c.Level != req.Level {
			continue
		}
		if req.Role != "" && !containsFold(c.Roles, req.Role) {
			continue
		}
		if req.Query != "" && !matchesQuery(&c, req.Query) {
			continue
		}
		items = append(items, c)
		if len(items) == limit {
			break
		}
	}
	return items
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func matchesQuery(c *model.Certification, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Provider), q) {
		return true
	}
	for _, s := range c.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
