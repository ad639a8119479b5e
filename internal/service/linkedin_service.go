package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/apperr"
)

type Experience struct {
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Period   string `json:"period,omitempty"`
	Duration string `json:"duration,omitempty"`
}

type Education struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Period      string `json:"period,omitempty"`
}

type Skill struct {
	Name         string `json:"name"`
	Endorsements int    `json:"endorsements,omitempty"`
}

type EvalMeta struct {
	Fetched        bool   `json:"fetched"`
	Status         int    `json:"status,omitempty"`
	ParsingQuality string `json:"parsingQuality,omitempty"`
}

type LinkedInEvaluation struct {
	ProfileURL        string       `json:"profileUrl"`
	Name              string       `json:"name,omitempty"`
	Headline          string       `json:"headline,omitempty"`
	About             string       `json:"about,omitempty"`
	Experiences       []Experience `json:"experiences"`
	Education         []Education  `json:"education"`
	Skills            []Skill      `json:"skills"`
	InferredSeniority string       `json:"inferredSeniority,omitempty"`
	Strengths         []string     `json:"strengths"`
	Weaknesses        []string     `json:"weaknesses"`
	Score             int          `json:"score"`
	Assessment        string       `json:"assessment"`
	Recommendations   []string     `json:"recommendations"`
	Meta              EvalMeta     `json:"meta"`
}

const (
	weakNoName        = "name not identified"
	weakNoHeadline    = "headline short or missing"
	weakNoAbout       = "about section missing or too short"
	weakNoExperiences = "no experiences detected"
	weakLittleTenure  = "limited professional experience"
	weakNotRecent     = "no recent professional experience"
	weakNoEducation   = "education not detected"
	weakNoSkills      = "skills not detected"
	weakNoEndorsed    = "skills without endorsements"
	weakUnreachable   = "public content unavailable (blocked or private)"
)

type LinkedInService struct {
	scraper ProfileScraper
}

func NewLinkedInService(scraper ProfileScraper) *LinkedInService {
	return &LinkedInService{scraper: scraper}
}

// Evaluate fetches and scores a public LinkedIn profile. After URL
// validation it never hard-fails: unreachable or unparsable content
// degrades to a penalized result with meta.fetched=false.
func (s *LinkedInService) Evaluate(ctx context.Context, rawURL string) (*LinkedInEvaluation, error) {
	profileURL := strings.TrimSpace(rawURL)
	u, err := url.Parse(profileURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, apperr.NewValidationError("provide a valid profile URL", map[string]string{
			"url": "must be an absolute http(s) URL",
		})
	}

	result, err := s.scraper.Scrape(ctx, profileURL)
	if err != nil {
		return nil, err
	}

	data := extractProfile(result.HTML)
	score, strengths, weaknesses := scoreLinkedInProfile(&data, result.Fetched)
	recommendations := linkedinRecommendations(weaknesses, score)

	quality := parsingQuality(&data, result.Fetched)
	if !result.Fetched {
		weaknesses = append(weaknesses,
			"automated access to the profile was blocked",
			"the profile may be private or access-restricted",
		)
		recommendations = append([]string{
			"Anti-bot measures prevent automated analysis of this profile",
			"Consider using the official LinkedIn API or sharing profile data manually",
		}, recommendations...)
	}

	seniority := inferSeniorityFromHeadline(data.Headline)
	assessment := buildLinkedInAssessment(&data, seniority, score, strengths, weaknesses, recommendations)

	return &LinkedInEvaluation{
		ProfileURL:        profileURL,
		Name:              data.Name,
		Headline:          data.Headline,
		About:             data.About,
		Experiences:       data.Experiences,
		Education:         data.Education,
		Skills:            data.Skills,
		InferredSeniority: seniority,
		Strengths:         strengths,
		Weaknesses:        weaknesses,
		Score:             score,
		Assessment:        assessment,
		Recommendations:   recommendations,
		Meta: EvalMeta{
			Fetched:        result.Fetched,
			Status:         result.Status,
			ParsingQuality: quality,
		},
	}, nil
}

type linkedinProfile struct {
	Name        string
	Headline    string
	About       string
	Experiences []Experience
	Education   []Education
	Skills      []Skill
}

var (
	reOGTitle   = regexp.MustCompile(`(?i)<meta[^>]+property=["']og:title["'][^>]+content=["']([^"']+)["']`)
	reMetaTitle = regexp.MustCompile(`(?i)<meta[^>]+name=["']title["'][^>]+content=["']([^"']+)["']`)
	reTitleTag  = regexp.MustCompile(`(?i)<title>([^<]+)</title>`)
	reTitleCrop = regexp.MustCompile(`(?i)\s*\|\s*LinkedIn.*`)

	reMetaDesc = regexp.MustCompile(`(?i)<meta[^>]+name=["']description["'][^>]+content=["']([^"']+)["']`)
	reOGDesc   = regexp.MustCompile(`(?i)<meta[^>]+property=["']og:description["'][^>]+content=["']([^"']+)["']`)

	reTags     = regexp.MustCompile(`<[^>]+>`)
	reSpaces   = regexp.MustCompile(`\s+`)
	reListItem = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)

	// regexp rejects repeat counts above 1000, so the fallback windows
	// are bounded at that.
	aboutPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)aria-label="About"[\s\S]{0,1000}?<p[^>]*>(.*?)</p>`),
		regexp.MustCompile(`(?is)data-test-id="about-section"[\s\S]{0,1000}?<p[^>]*>(.*?)</p>`),
		regexp.MustCompile(`(?is)About(?:</span>)?([\s\S]{0,1000}?)</p>`),
	}
	expPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<section[^>]*aria-label="Experience"[^>]*>(.*?)</section>`),
		regexp.MustCompile(`(?is)<section[^>]*data-test-id="experience-section"[^>]*>(.*?)</section>`),
		regexp.MustCompile(`(?is)Experience(?:</span>)?([\s\S]{0,1000}?)</section>`),
	}
	eduPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<section[^>]*aria-label="Education"[^>]*>(.*?)</section>`),
		regexp.MustCompile(`(?is)<section[^>]*data-test-id="education-section"[^>]*>(.*?)</section>`),
		regexp.MustCompile(`(?is)Education(?:</span>)?([\s\S]{0,1000}?)</section>`),
	}
	skillPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<section[^>]*aria-label="Skills"[^>]*>(.*?)</section>`),
		regexp.MustCompile(`(?is)<section[^>]*data-test-id="skills-section"[^>]*>(.*?)</section>`),
		regexp.MustCompile(`(?is)Skills(?:</span>)?([\s\S]{0,1000}?)</section>`),
	}

	reItemTitle   = regexp.MustCompile(`(?is)(?:<h3[^>]*>|<span[^>]*>)([\s\S]{2,150}?)(?:</h3>|</span>)`)
	reItemCompany = regexp.MustCompile(`(?is)<a[^>]*>([\s\S]{2,150}?)</a>`)
	reItemDegree  = regexp.MustCompile(`(?is)<h4[^>]*>([\s\S]{2,150}?)</h4>`)
	rePeriod      = regexp.MustCompile(`(?i)\b\d{4}\b[\s\S]{0,80}?\b\d{4}\b|\b\d{4}\b[\s\S]{0,80}?(?:Present|Current)|\d+\s*(?:year|month)s?`)
	reSkillSpan   = regexp.MustCompile(`(?is)<span[^>]*>([\s\S]{2,100}?)</span>`)
	reEndorsement = regexp.MustCompile(`(?i)\b(\d+)\s*endorsement`)
	reYear        = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	reDurationNum = regexp.MustCompile(`\d+`)

	reSenior = regexp.MustCompile(`(?i)senior|\bsr\b|lead|principal|staff|architect|director|head|chief|vp|cto|ceo`)
	reMid    = regexp.MustCompile(`(?i)\bmid\b|middle|intermediate|specialist|analyst`)
	reJunior = regexp.MustCompile(`(?i)junior|\bjr\b|entry|associate|trainee|intern`)
)

func cleanText(s string) string {
	s = reTags.ReplaceAllString(s, " ")
	s = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&#039;", "'").Replace(s)
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

func firstMatch(html string, patterns ...*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(html); m != nil {
			return cleanText(m[1])
		}
	}
	return ""
}

func firstBlock(html string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(html); m != nil {
			return m[1]
		}
	}
	return ""
}

// extractProfile pulls best-effort fields out of raw markup. Missing
// markers produce absent fields, never an error.
func extractProfile(html string) linkedinProfile {
	var p linkedinProfile
	if html == "" {
		return p
	}

	p.Name = firstMatch(html, reOGTitle, reMetaTitle)
	if p.Name == "" {
		if m := reTitleTag.FindStringSubmatch(html); m != nil {
			p.Name = cleanText(reTitleCrop.ReplaceAllString(m[1], ""))
		}
	}

	p.Headline = firstMatch(html, reMetaDesc, reOGDesc)
	p.About = firstMatch(html, aboutPatterns...)

	if block := firstBlock(html, expPatterns); block != "" {
		for _, item := range listItems(block, 10) {
			exp := Experience{
				Title:   submatch(reItemTitle, item),
				Company: submatch(reItemCompany, item),
				Period:  cleanText(rePeriod.FindString(item)),
			}
			if exp.Title != "" || exp.Company != "" || exp.Period != "" {
				p.Experiences = append(p.Experiences, exp)
			}
		}
	}

	if block := firstBlock(html, eduPatterns); block != "" {
		for _, item := range listItems(block, 5) {
			edu := Education{
				Institution: submatch(reItemTitle, item),
				Degree:      submatch(reItemDegree, item),
				Period:      cleanText(rePeriod.FindString(item)),
			}
			if edu.Institution != "" || edu.Degree != "" {
				p.Education = append(p.Education, edu)
			}
		}
	}

	if block := firstBlock(html, skillPatterns); block != "" {
		matches := reSkillSpan.FindAllStringSubmatch(block, 20)
		for _, m := range matches {
			name := cleanText(m[1])
			if len(name) <= 2 {
				continue
			}
			endorsements := 0
			if em := reEndorsement.FindStringSubmatch(m[0]); em != nil {
				endorsements, _ = strconv.Atoi(em[1])
			}
			p.Skills = append(p.Skills, Skill{Name: name, Endorsements: endorsements})
		}
	}

	return p
}

func listItems(block string, limit int) []string {
	matches := reListItem.FindAllStringSubmatch(block, limit)
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		items = append(items, m[1])
	}
	return items
}

func submatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return cleanText(m[1])
	}
	return ""
}

func inferSeniorityFromHeadline(headline string) string {
	if headline == "" {
		return ""
	}
	switch {
	case reSenior.MatchString(headline):
		return "senior"
	case reMid.MatchString(headline):
		return "mid"
	case reJunior.MatchString(headline):
		return "junior"
	}
	return ""
}

func scoreLinkedInProfile(data *linkedinProfile, fetched bool) (int, []string, []string) {
	score := 0
	var strengths, weaknesses []string

	// Profile completeness (up to 25)
	if data.Name != "" {
		score += 8
		strengths = append(strengths, "full name present")
	} else {
		weaknesses = append(weaknesses, weakNoName)
	}

	switch {
	case len(data.Headline) > 30:
		score += 8
		strengths = append(strengths, "detailed professional headline")
	case len(data.Headline) > 15:
		score += 5
		strengths = append(strengths, "headline present")
	default:
		weaknesses = append(weaknesses, weakNoHeadline)
	}

	switch n := len(data.About); {
	case n > 300:
		score += 9
		strengths = append(strengths, "very detailed about section")
	case n > 150:
		score += 6
		strengths = append(strengths, "detailed about section")
	case n > 50:
		score += 3
		strengths = append(strengths, "about section present")
	default:
		weaknesses = append(weaknesses, weakNoAbout)
	}

	// Experience (up to 30)
	switch n := len(data.Experiences); {
	case n >= 5:
		score += 15
		strengths = append(strengths, "many experiences listed (5+)")
	case n >= 3:
		score += 12
		strengths = append(strengths, "good number of experiences (3+)")
	case n >= 1:
		score += 8
		strengths = append(strengths, "some experiences listed")
	default:
		weaknesses = append(weaknesses, weakNoExperiences)
	}

	totalYears, hasRecent := experienceSignals(data.Experiences)
	switch {
	case totalYears >= 5:
		score += 10
		strengths = append(strengths, "significant professional experience (5+ years)")
	case totalYears >= 2:
		score += 7
		strengths = append(strengths, "some professional experience (2+ years)")
	default:
		weaknesses = append(weaknesses, weakLittleTenure)
	}
	if hasRecent {
		score += 5
		strengths = append(strengths, "recent professional experience")
	} else {
		weaknesses = append(weaknesses, weakNotRecent)
	}

	// Education (up to 8)
	switch n := len(data.Education); {
	case n >= 2:
		score += 8
		strengths = append(strengths, "multiple educational backgrounds")
	case n >= 1:
		score += 5
		strengths = append(strengths, "education listed")
	default:
		weaknesses = append(weaknesses, weakNoEducation)
	}

	// Skills (up to 25)
	switch n := len(data.Skills); {
	case n >= 15:
		score += 20
		strengths = append(strengths, "many skills listed (15+)")
	case n >= 10:
		score += 15
		strengths = append(strengths, "good number of skills (10+)")
	case n >= 5:
		score += 10
		strengths = append(strengths, "some skills listed (5+)")
	case n >= 1:
		score += 5
		strengths = append(strengths, "a few skills listed")
	default:
		weaknesses = append(weaknesses, weakNoSkills)
	}

	endorsed := 0
	for _, s := range data.Skills {
		if s.Endorsements > 0 {
			endorsed++
		}
	}
	switch {
	case endorsed >= 5:
		score += 5
		strengths = append(strengths, "many endorsed skills (5+)")
	case endorsed >= 1:
		score += 3
		strengths = append(strengths, "some endorsed skills")
	default:
		weaknesses = append(weaknesses, weakNoEndorsed)
	}

	if !fetched {
		score -= 10
		weaknesses = append(weaknesses, weakUnreachable)
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, strengths, weaknesses
}

func experienceSignals(exps []Experience) (totalYears int, hasRecent bool) {
	currentYear := time.Now().Year()
	for _, exp := range exps {
		d := strings.ToLower(exp.Duration)
		if strings.Contains(d, "year") || strings.Contains(d, "ano") {
			if m := reDurationNum.FindString(d); m != "" {
				years, _ := strconv.Atoi(m)
				totalYears += years
			}
		}
		period := strings.ToLower(exp.Period)
		if strings.Contains(period, "present") || strings.Contains(period, "current") {
			hasRecent = true
			continue
		}
		for _, ym := range reYear.FindAllString(exp.Period, -1) {
			if y, err := strconv.Atoi(ym); err == nil && y >= currentYear-1 {
				hasRecent = true
			}
		}
	}
	return totalYears, hasRecent
}

func linkedinRecommendations(weaknesses []string, score int) []string {
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
			"Complete every section of your profile to improve visibility",
			"Add a professional, descriptive headline",
			"Write a detailed about section covering your experience and goals",
			"List all your relevant professional experiences",
		)
	}
	if score < 70 {
		if has(weakNoExperiences) {
			recs = append(recs,
				"Add professional experiences with detailed descriptions",
				"Include responsibilities and achievements for each position",
			)
		}
		if has(weakNoSkills) {
			recs = append(recs,
				"List your main technical and soft skills",
				"Ask colleagues to endorse your skills",
			)
		}
		if has(weakNoEducation) {
			recs = append(recs, "Add your education and certifications")
		}
	}
	if score >= 80 {
		recs = append(recs,
			"Excellent profile! Consider sharing technical content regularly",
			"Join professional groups relevant to your field",
			"Keep the profile up to date with new experiences and skills",
		)
	}
	return recs
}

func parsingQuality(data *linkedinProfile, fetched bool) string {
	if !fetched {
		return "failed"
	}
	if data.Name != "" && data.Headline != "" && data.About != "" &&
		len(data.Experiences) > 0 && len(data.Education) > 0 && len(data.Skills) > 0 {
		return "good"
	}
	return "partial"
}

func buildLinkedInAssessment(data *linkedinProfile, seniority string, score int, strengths, weaknesses, recs []string) string {
	header := "LinkedIn profile"
	if data.Name != "" {
		header = "Profile of " + data.Name
	}

	seniorityLine := "Seniority not detected"
	if seniority != "" {
		seniorityLine = "Suggested seniority: " + seniority
	}
	strengthLine := "No strengths identified"
	if len(strengths) > 0 {
		strengthLine = "Strengths: " + strings.Join(strengths, ", ")
	}
	weaknessLine := "No improvement areas identified"
	if len(weaknesses) > 0 {
		weaknessLine = "Improvement areas: " + strings.Join(weaknesses, ", ")
	}
	headlineLine := "Headline not detected"
	if data.Headline != "" {
		headlineLine = "Headline: " + data.Headline
	}
	aboutLine := "About section not detected"
	if data.About != "" {
		about := data.About
		if len(about) > 100 {
			about = about[:100] + "..."
		}
		aboutLine = "About: " + about
	}

	out := fmt.Sprintf(`%s - Score: %d/100

%s

%s

%s

Stats: %d experiences, %d educational backgrounds, %d skills
%s
%s`,
		header, score, seniorityLine, strengthLine, weaknessLine,
		len(data.Experiences), len(data.Education), len(data.Skills),
		headlineLine, aboutLine)

	if len(recs) > 0 {
		out += "\n\nRecommendations: " + strings.Join(recs, "; ")
	}
	return out
}
