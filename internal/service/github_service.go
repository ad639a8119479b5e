package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/apperr"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const githubUserAgent = "careerpath-app"

type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

type RecentRepo struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	UpdatedAt string `json:"updatedAt"`
}

type GitHubStats struct {
	Followers    int             `json:"followers"`
	Following    int             `json:"following"`
	PublicRepos  int             `json:"publicRepos"`
	TotalStars   int             `json:"totalStars"`
	TotalForks   int             `json:"totalForks"`
	TopLanguages []LanguageCount `json:"topLanguages"`
	RecentRepos  []RecentRepo    `json:"recentRepos"`
}

type GitHubEvaluation struct {
	Username        string      `json:"username"`
	ProfileURL      string      `json:"profileUrl"`
	Stats           GitHubStats `json:"stats"`
	Score           int         `json:"score"`
	Strengths       []string    `json:"strengths"`
	Weaknesses      []string    `json:"weaknesses"`
	Assessment      string      `json:"assessment"`
	Recommendations []string    `json:"recommendations"`
}

// Weaknesses double as keys for the recommendation templates.
const (
	weakFewFollowers   = "few followers"
	weakNoPublicRepos  = "no public repositories"
	weakFewStars       = "few repository stars"
	weakLittleActivity = "little recent repository activity"
	weakFewLanguages   = "little language diversity"
)

type githubUser struct {
	Name      string
	Bio       string
	Blog      string
	Company   string
	Location  string
	Hireable  bool
	Followers int
	Following int
	Repos     int
	HTMLURL   string
}

type githubRepo struct {
	Name      string
	HTMLURL   string
	Stars     int
	Forks     int
	Language  string
	UpdatedAt time.Time
	Archived  bool
	Fork      bool
}

type GitHubService struct {
	client  *resty.Client
	baseURL string
	token   string
}

func NewGitHubService() *GitHubService {
	cfg := config.LoadGitHubConfig()
	return &GitHubService{
		client:  resty.New().SetTimeout(15 * time.Second),
		baseURL: cfg.APIBaseURL,
		token:   cfg.Token,
	}
}

// NewGitHubServiceWithBase is used by tests to target a stub server.
func NewGitHubServiceWithBase(baseURL string) *GitHubService {
	return &GitHubService{
		client:  resty.New().SetTimeout(15 * time.Second),
		baseURL: baseURL,
	}
}

// ParseGitHubUsername resolves the username from an explicit value or
// a github.com profile URL. Empty result means unusable input.
func ParseGitHubUsername(rawURL, username string) string {
	if u := strings.TrimSpace(username); u != "" {
		return u
	}
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if host != "github.com" && !strings.HasSuffix(host, ".github.com") {
		return ""
	}
	segs := strings.Split(strings.TrimLeft(u.Path, "/"), "/")
	if len(segs) == 0 {
		return ""
	}
	return segs[0]
}

// Evaluate fetches the public profile and repositories and produces a
// heuristic assessment. API failures on either call are hard errors;
// everything below that is best-effort.
func (s *GitHubService) Evaluate(ctx context.Context, rawURL, username string) (*GitHubEvaluation, error) {
	name := ParseGitHubUsername(rawURL, username)
	if name == "" {
		return nil, apperr.NewValidationError("provide a valid GitHub URL or username", map[string]string{
			"url": "must be a github.com profile URL or provide username",
		})
	}

	userBody, err := s.get(ctx, fmt.Sprintf("%s/users/%s", s.baseURL, url.PathEscape(name)))
	if err != nil {
		return nil, err
	}
	reposBody, err := s.get(ctx, fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", s.baseURL, url.PathEscape(name)))
	if err != nil {
		return nil, err
	}

	user := parseGitHubUser(userBody)
	repos := parseGitHubRepos(reposBody)

	stats := aggregateGitHubStats(&user, repos)
	score, strengths, weaknesses := scoreGitHubProfile(&user, repos)
	recommendations := githubRecommendations(weaknesses, score)

	displayName := user.Name
	if displayName == "" {
		displayName = name
	}
	assessment := buildGitHubAssessment(displayName, score, strengths, weaknesses, stats, recommendations)

	profileURL := user.HTMLURL
	if profileURL == "" {
		profileURL = "https://github.com/" + name
	}

	return &GitHubEvaluation{
		Username:        name,
		ProfileURL:      profileURL,
		Stats:           stats,
		Score:           score,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Assessment:      assessment,
		Recommendations: recommendations,
	}, nil
}

func (s *GitHubService) get(ctx context.Context, u string) (string, error) {
	req := s.client.R().SetContext(ctx).SetHeader("User-Agent", githubUserAgent)
	if s.token != "" {
		req.SetHeader("Authorization", "Bearer "+s.token)
	}
	resp, err := req.Get(u)
	if err != nil {
		return "", &apperr.UpstreamError{Service: "github", Err: err}
	}
	if resp.IsError() {
		return "", &apperr.UpstreamError{Service: "github", Status: resp.StatusCode()}
	}
	return resp.String(), nil
}

func parseGitHubUser(body string) githubUser {
	return githubUser{
		Name:      gjson.Get(body, "name").String(),
		Bio:       gjson.Get(body, "bio").String(),
		Blog:      gjson.Get(body, "blog").String(),
		Company:   gjson.Get(body, "company").String(),
		Location:  gjson.Get(body, "location").String(),
		Hireable:  gjson.Get(body, "hireable").Bool(),
		Followers: int(gjson.Get(body, "followers").Int()),
		Following: int(gjson.Get(body, "following").Int()),
		Repos:     int(gjson.Get(body, "public_repos").Int()),
		HTMLURL:   gjson.Get(body, "html_url").String(),
	}
}

func parseGitHubRepos(body string) []githubRepo {
	var repos []githubRepo
	gjson.Parse(body).ForEach(func(_, r gjson.Result) bool {
		updated, _ := time.Parse(time.RFC3339, r.Get("updated_at").String())
		repos = append(repos, githubRepo{
			Name:      r.Get("name").String(),
			HTMLURL:   r.Get("html_url").String(),
			Stars:     int(r.Get("stargazers_count").Int()),
			Forks:     int(r.Get("forks_count").Int()),
			Language:  strings.TrimSpace(r.Get("language").String()),
			UpdatedAt: updated,
			Archived:  r.Get("archived").Bool(),
			Fork:      r.Get("fork").Bool(),
		})
		return true
	})
	return repos
}

func aggregateGitHubStats(user *githubUser, repos []githubRepo) GitHubStats {
	totalStars, totalForks := 0, 0
	langCount := make(map[string]int)
	for _, r := range repos {
		totalStars += r.Stars
		totalForks += r.Forks
		if r.Language != "" {
			langCount[r.Language]++
		}
	}

	top := make([]LanguageCount, 0, len(langCount))
	for lang, n := range langCount {
		top = append(top, LanguageCount{Language: lang, Count: n})
	}
	sortLanguages(top)
	if len(top) > 5 {
		top = top[:5]
	}

	recent := make([]RecentRepo, 0, 5)
	for _, r := range repos {
		if len(recent) == 5 {
			break
		}
		recent = append(recent, RecentRepo{Name: r.Name, URL: r.HTMLURL, UpdatedAt: r.UpdatedAt.Format(time.RFC3339)})
	}

	publicRepos := user.Repos
	if publicRepos == 0 {
		publicRepos = len(repos)
	}

	return GitHubStats{
		Followers:    user.Followers,
		Following:    user.Following,
		PublicRepos:  publicRepos,
		TotalStars:   totalStars,
		TotalForks:   totalForks,
		TopLanguages: top,
		RecentRepos:  recent,
	}
}

func sortLanguages(langs []LanguageCount) {
	sort.SliceStable(langs, func(i, j int) bool {
		if langs[i].Count != langs[j].Count {
			return langs[i].Count > langs[j].Count
		}
		return langs[i].Language < langs[j].Language
	})
}

// scoreGitHubProfile allocates a fixed point budget across independent
// dimensions and clamps the total to [0,100].
func scoreGitHubProfile(user *githubUser, repos []githubRepo) (int, []string, []string) {
	score := 0
	var strengths, weaknesses []string

	// Profile completeness (up to 20)
	if user.Name != "" {
		score += 5
		strengths = append(strengths, "full name on profile")
	}
	if user.Bio != "" {
		score += 5
		strengths = append(strengths, "descriptive bio")
	}
	if user.Blog != "" {
		score += 3
		strengths = append(strengths, "website or blog linked")
	}
	if user.Company != "" {
		score += 3
		strengths = append(strengths, "company specified")
	}
	if user.Location != "" {
		score += 2
		strengths = append(strengths, "location specified")
	}
	if user.Hireable {
		score += 2
		strengths = append(strengths, "open to hiring")
	}

	// Social proof (up to 15)
	switch {
	case user.Followers >= 1000:
		score += 15
		strengths = append(strengths, "high follower count (1000+)")
	case user.Followers >= 500:
		score += 12
		strengths = append(strengths, "good follower count (500+)")
	case user.Followers >= 100:
		score += 8
		strengths = append(strengths, "significant followers (100+)")
	case user.Followers >= 50:
		score += 5
		strengths = append(strengths, "some followers (50+)")
	default:
		weaknesses = append(weaknesses, weakFewFollowers)
	}

	// Repository activity (up to 15)
	switch n := len(repos); {
	case n >= 20:
		score += 15
		strengths = append(strengths, "many public repositories (20+)")
	case n >= 10:
		score += 12
		strengths = append(strengths, "good number of repositories (10+)")
	case n >= 5:
		score += 8
		strengths = append(strengths, "some repositories (5+)")
	case n >= 1:
		score += 5
		strengths = append(strengths, "at least one repository")
	default:
		weaknesses = append(weaknesses, weakNoPublicRepos)
	}

	// Code quality indicators (up to 15)
	totalStars := 0
	for _, r := range repos {
		totalStars += r.Stars
	}
	switch {
	case totalStars >= 100:
		score += 15
		strengths = append(strengths, "many stars (100+)")
	case totalStars >= 50:
		score += 12
		strengths = append(strengths, "good star count (50+)")
	case totalStars >= 20:
		score += 8
		strengths = append(strengths, "some stars (20+)")
	case totalStars >= 5:
		score += 5
		strengths = append(strengths, "a few stars (5+)")
	default:
		weaknesses = append(weaknesses, weakFewStars)
	}

	// Recent maintenance (up to 10): updates within the last 90 days
	recent := 0
	cutoff := time.Now().AddDate(0, 0, -90)
	for _, r := range repos {
		if r.UpdatedAt.After(cutoff) {
			recent++
		}
	}
	switch {
	case recent >= 5:
		score += 10
		strengths = append(strengths, "many recently active repositories")
	case recent >= 3:
		score += 7
		strengths = append(strengths, "some recently active repositories")
	case recent >= 1:
		score += 4
		strengths = append(strengths, "at least one recently active repository")
	default:
		weaknesses = append(weaknesses, weakLittleActivity)
	}

	// Language diversity (up to 5)
	langs := make(map[string]bool)
	for _, r := range repos {
		if r.Language != "" {
			langs[r.Language] = true
		}
	}
	switch n := len(langs); {
	case n >= 5:
		score += 5
		strengths = append(strengths, "high language diversity (5+)")
	case n >= 3:
		score += 3
		strengths = append(strengths, "good language diversity (3+)")
	case n >= 2:
		score += 1
		strengths = append(strengths, "some language diversity")
	default:
		weaknesses = append(weaknesses, weakFewLanguages)
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, strengths, weaknesses
}

func githubRecommendations(weaknesses []string, score int) []string {
	var recs []string
	has := func(w string) bool {
		for _, x := range weaknesses {
			if x == w {
				return true
			}
		}
		return false
	}

	if score < 50 {
		recs = append(recs,
			"Consider creating more public repositories to showcase your skills",
			"Update your repositories regularly to show continuous activity",
			"Add a descriptive bio and contact information to your profile",
		)
	}
	if score < 70 {
		if has(weakFewFollowers) {
			recs = append(recs,
				"Contribute to open source projects to increase your visibility",
				"Share your projects in relevant technical communities",
			)
		}
		if has(weakFewStars) {
			recs = append(recs,
				"Focus on code quality and documentation for your projects",
				"Build projects that solve real problems and are useful to other developers",
			)
		}
	}
	if score >= 80 {
		recs = append(recs,
			"Excellent profile! Consider mentoring other developers",
			"Keep contributing to the open source community",
		)
	}
	return recs
}

func buildGitHubAssessment(name string, score int, strengths, weaknesses []string, stats GitHubStats, recs []string) string {
	strengthLine := "No strengths identified"
	if len(strengths) > 0 {
		strengthLine = "Strengths: " + strings.Join(strengths, ", ")
	}
	weaknessLine := "No improvement areas identified"
	if len(weaknesses) > 0 {
		weaknessLine = "Improvement areas: " + strings.Join(weaknesses, ", ")
	}

	langs := make([]string, 0, len(stats.TopLanguages))
	for _, l := range stats.TopLanguages {
		langs = append(langs, l.Language)
	}
	langLine := strings.Join(langs, ", ")
	if langLine == "" {
		langLine = "no languages detected"
	}

	recent := make([]string, 0, len(stats.RecentRepos))
	for _, r := range stats.RecentRepos {
		recent = append(recent, r.Name)
	}
	recentLine := strings.Join(recent, ", ")
	if recentLine == "" {
		recentLine = "no recent repositories"
	}

	out := fmt.Sprintf(`GitHub profile of %s - Score: %d/100

%s

%s

Stats: %d followers, %d repositories, %d total stars
Top languages: %s
Recent repositories: %s`,
		name, score, strengthLine, weaknessLine,
		stats.Followers, stats.PublicRepos, stats.TotalStars, langLine, recentLine)

	if len(recs) > 0 {
		out += "\n\nRecommendations: " + strings.Join(recs, "; ")
	}
	return out
}
