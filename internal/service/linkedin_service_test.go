package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScraper struct {
	result *ScrapeResult
	err    error
}

func (s *stubScraper) Scrape(ctx context.Context, url string) (*ScrapeResult, error) {
	return s.result, s.err
}

const sampleProfileHTML = `<html><head>
<title>Jane Doe | LinkedIn</title>
<meta property="og:title" content="Jane Doe" />
<meta name="description" content="Senior Software Engineer at Example Inc, distributed systems" />
</head><body>
<section aria-label="Experience">
<li><h3>Senior Software Engineer</h3> at <a href="#">Example Inc</a> <span>2019 - Present</span></li>
<li><h3>Software Engineer</h3> at <a href="#">Other Corp</a> <span>2015 - 2019</span></li>
</section>
<section aria-label="Education">
<li><h3>Example University</h3><h4>BSc Computer Science</h4> <span>2011 - 2015</span></li>
</section>
<section aria-label="Skills">
<span>Golang</span><span>Kubernetes · 12 endorsements</span><span>Distributed Systems</span>
</section>
</body></html>`

func TestEvaluateRejectsInvalidURL(t *testing.T) {
	svc := NewLinkedInService(&stubScraper{})

	for _, raw := range []string{"", "not-a-url", "ftp://example.com/x", "/relative/path"} {
		_, err := svc.Evaluate(context.Background(), raw)
		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr, "input %q", raw)
	}
}

func TestEvaluateExtractsProfileFields(t *testing.T) {
	svc := NewLinkedInService(&stubScraper{result: &ScrapeResult{
		HTML:    sampleProfileHTML,
		Fetched: true,
		Status:  http.StatusOK,
	}})

	eval, err := svc.Evaluate(context.Background(), "https://www.linkedin.com/in/janedoe")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", eval.Name)
	assert.Contains(t, eval.Headline, "Senior Software Engineer")
	assert.Len(t, eval.Experiences, 2)
	assert.Equal(t, "Senior Software Engineer", eval.Experiences[0].Title)
	assert.Equal(t, "Example Inc", eval.Experiences[0].Company)
	assert.Len(t, eval.Education, 1)
	assert.Equal(t, "Example University", eval.Education[0].Institution)
	assert.Len(t, eval.Skills, 3)
	assert.Equal(t, "senior", eval.InferredSeniority)
	assert.True(t, eval.Meta.Fetched)
	assert.Equal(t, http.StatusOK, eval.Meta.Status)
	assert.Equal(t, "partial", eval.Meta.ParsingQuality)
	assert.Greater(t, eval.Score, 0)
}

func TestEvaluateBlockedProfileDegrades(t *testing.T) {
	svc := NewLinkedInService(&stubScraper{result: &ScrapeResult{
		Fetched: false,
		Status:  http.StatusForbidden,
	}})

	eval, err := svc.Evaluate(context.Background(), "https://www.linkedin.com/in/janedoe")
	require.NoError(t, err)

	assert.False(t, eval.Meta.Fetched)
	assert.Equal(t, http.StatusForbidden, eval.Meta.Status)
	assert.Equal(t, "failed", eval.Meta.ParsingQuality)
	assert.Equal(t, 0, eval.Score)
	assert.Contains(t, eval.Weaknesses, "public content unavailable (blocked or private)")
	assert.Contains(t, eval.Weaknesses, "automated access to the profile was blocked")
	require.NotEmpty(t, eval.Recommendations)
	assert.Equal(t, "Anti-bot measures prevent automated analysis of this profile", eval.Recommendations[0])
}

func TestInferSeniorityFromHeadline(t *testing.T) {
	tests := []struct {
		headline string
		want     string
	}{
		{"Senior Backend Engineer", "senior"},
		{"Staff Engineer at Example", "senior"},
		{"Mid-level Developer", "mid"},
		{"Data Analyst", "mid"},
		{"Junior Developer", "junior"},
		{"Software Engineering Intern", "junior"},
		{"Software Developer", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, inferSeniorityFromHeadline(tt.headline), "headline %q", tt.headline)
	}
}

func TestExperienceSignals(t *testing.T) {
	years, recent := experienceSignals([]Experience{
		{Period: "2019 - Present", Duration: "4 years"},
		{Period: "2012 - 2015", Duration: "3 years"},
	})
	assert.Equal(t, 7, years)
	assert.True(t, recent)

	years, recent = experienceSignals([]Experience{
		{Period: "2010 - 2012"},
	})
	assert.Equal(t, 0, years)
	assert.False(t, recent)
}

// Markup without aria-label or data-test-id markers exercises the
// loose fallback pattern of every section group.
const fallbackProfileHTML = `<html><head><title>John Smith | LinkedIn</title></head><body>
<div>About</span> John builds distributed systems for fintech companies.</p></div>
<div>Experience</span><li><h3>Backend Engineer</h3> at <a href="#">Fintech Co</a> <span>2020 - Present</span></li></section></div>
<div>Education</span><li><h3>State University</h3><h4>BSc Computer Science</h4></li></section></div>
<div>Skills</span><span>Golang</span><span>PostgreSQL</span></section></div>
</body></html>`

func TestExtractProfileFallbackPatterns(t *testing.T) {
	p := extractProfile(fallbackProfileHTML)

	assert.Equal(t, "John Smith", p.Name)
	assert.Contains(t, p.About, "distributed systems")
	require.Len(t, p.Experiences, 1)
	assert.Equal(t, "Backend Engineer", p.Experiences[0].Title)
	assert.Equal(t, "Fintech Co", p.Experiences[0].Company)
	require.Len(t, p.Education, 1)
	assert.Equal(t, "State University", p.Education[0].Institution)
	assert.Equal(t, "BSc Computer Science", p.Education[0].Degree)
	require.Len(t, p.Skills, 2)
	assert.Equal(t, "Golang", p.Skills[0].Name)
}

func TestExtractProfileEmptyHTML(t *testing.T) {
	p := extractProfile("")
	assert.Empty(t, p.Name)
	assert.Empty(t, p.Experiences)
	assert.Empty(t, p.Skills)
}

func TestHTTPProfileScraperBlockedPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	scraper := NewHTTPProfileScraper()
	result, err := scraper.Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.False(t, result.Fetched)
	assert.Equal(t, http.StatusForbidden, result.Status)
	assert.Empty(t, result.HTML)
}

func TestHTTPProfileScraperSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	scraper := NewHTTPProfileScraper()
	result, err := scraper.Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.True(t, result.Fetched)
	assert.Equal(t, "<html>ok</html>", result.HTML)
}
