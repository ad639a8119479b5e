package studyplan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"
)

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Type  string `json:"type,omitempty"`
}

type Week struct {
	Title       string     `json:"title"`
	Goals       []string   `json:"goals"`
	Resources   []Resource `json:"resources"`
	EstimateHrs int        `json:"estimateHrs"`
}

type Plan struct {
	TotalWeeks      int      `json:"totalWeeks"`
	Weeks           []Week   `json:"weeks"`
	SuggestionOrder []string `json:"suggestionOrder"`
}

var areaResources = map[string][]Resource{
	"cloud": {
		{Title: "Well-Architected (AWS)", URL: "https://wa.aws.amazon.com/", Type: "doc"},
		{Title: "Azure Fundamentals docs", URL: "https://learn.microsoft.com/azure/", Type: "doc"},
		{Title: "Google Cloud Skills Boost", URL: "https://www.cloudskillsboost.google/", Type: "course"},
	},
	"security": {
		{Title: "NIST Cybersecurity Framework", URL: "https://www.nist.gov/cyberframework", Type: "doc"},
		{Title: "OWASP Top 10", URL: "https://owasp.org/www-project-top-ten/", Type: "doc"},
	},
	"data": {
		{Title: "dbt docs", URL: "https://docs.getdbt.com/", Type: "doc"},
		{Title: "Power BI Learn", URL: "https://learn.microsoft.com/power-bi/", Type: "course"},
	},
	"dev": {
		{Title: "Clean Architecture summary", URL: "https://8thlight.com/blog/uncle-bob/2012/08/13/the-clean-architecture.html", Type: "doc"},
	},
	"networks": {
		{Title: "Cisco Packet Tracer labs", URL: "https://www.netacad.com/courses/packet-tracer", Type: "practice"},
	},
	"management": {
		{Title: "PMBOK Guide (overview)", URL: "https://www.pmi.org/pmbok-guide-standards", Type: "doc"},
	},
}

func weeksForLevel(level string) int {
	switch level {
	case model.LevelBeginner:
		return 2
	case model.LevelIntermediate:
		return 3
	default:
		return 4
	}
}

func hoursForLevel(level string) int {
	switch level {
	case model.LevelBeginner:
		return 6
	case model.LevelIntermediate:
		return 8
	default:
		return 10
	}
}

// Build turns a recommendation list into a week-by-week study plan,
// ordered by score descending. Deterministic for a given input.
func Build(profile *model.UserProfile, items []model.RecommendationItem) *Plan {
	ordered := make([]model.RecommendationItem, 0, len(items))
	for _, it := range items {
		if it.Certification == nil {
			continue
		}
		ordered = append(ordered, it)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	order := make([]string, 0, len(ordered))
	for _, it := range ordered {
		order = append(order, it.Certification.ID)
	}

	base := areaResources[strings.ToLower(profile.TargetArea)]
	if len(base) > 2 {
		base = base[:2]
	}

	var weeks []Week
	for _, it := range ordered {
		cert := it.Certification
		total := weeksForLevel(cert.Level)
		for w := 1; w <= total; w++ {
			var goals []string
			if w == 1 {
				goals = append(goals, "Fundamentals and terminology")
			}
			if w == 2 {
				goals = append(goals, "Core services and best practices")
			}
			if w >= 3 {
				goals = append(goals, "Guided practice and mock exams")
			}
			if w == total {
				goals = append(goals, "Final review and exam scheduling")
			}

			resources := make([]Resource, 0, len(base)+2)
			resources = append(resources, base...)
			resources = append(resources,
				Resource{Title: fmt.Sprintf("Exam guide — %s", cert.Provider), Type: "doc"},
				Resource{Title: "Mock exams (practice)", Type: "practice"},
			)

			weeks = append(weeks, Week{
				Title:       fmt.Sprintf("%s — Week %d/%d", cert.Name, w, total),
				Goals:       goals,
				Resources:   resources,
				EstimateHrs: hoursForLevel(cert.Level),
			})
		}
	}

	return &Plan{
		TotalWeeks:      len(weeks),
		Weeks:           weeks,
		SuggestionOrder: order,
	}
}
