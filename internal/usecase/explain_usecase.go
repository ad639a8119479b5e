package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/apperr"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/dto"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/service"
)

const explainModel = "gemini-2.5-flash"

// ExplainUsecase delegates profile + recommendations to the text
// generation collaborator. Prompt building is plain templating, no
// logic beyond formatting.
type ExplainUsecase struct {
	gemini service.TextGenerator
}

func NewExplainUsecase(gemini service.TextGenerator) *ExplainUsecase {
	return &ExplainUsecase{gemini: gemini}
}

func (uc *ExplainUsecase) Explain(ctx context.Context, req *dto.ExplainRequest) (string, error) {
	if uc.gemini == nil {
		return "", &apperr.UpstreamError{Service: "gemini", Err: fmt.Errorf("text generation is not configured")}
	}

	answer, err := uc.gemini.GenerateText(ctx, explainModel, buildExplainPrompt(req))
	if err != nil {
		return "", &apperr.UpstreamError{Service: "gemini", Err: err}
	}
	return answer, nil
}

func buildExplainPrompt(req *dto.ExplainRequest) string {
	p := req.Profile

	targetArea := p.TargetArea
	if targetArea == "" {
		targetArea = "-"
	}
	goals := strings.Join(p.Goals, ", ")
	if goals == "" {
		goals = "-"
	}

	var recs strings.Builder
	n := 0
	for _, it := range req.Recommendations.Items {
		c := it.Certification
		if c == nil {
			continue
		}
		n++
		area := ""
		if c.Area != "" {
			area = ", " + c.Area
		}
		fmt.Fprintf(&recs, "%d. %s (%s, %s%s) — Score %d\n   Reasons: %s\n",
			n, c.Name, c.Provider, c.Level, area, it.Score, strings.Join(it.Reasons, "; "))
	}

	question := ""
	if req.Question != "" {
		question = fmt.Sprintf("\nUser question: %s\n", req.Question)
	}

	return strings.TrimSpace(fmt.Sprintf(`
You are a career assistant. Explain objectively WHY these certifications were recommended for the profile below, suggest a study order (1 to 3) and risks/shortcuts.
If there is a user question, answer it at the end in at most 5 lines.
%s
Context:
Profile:
- Role: %s
- Seniority: %s
- Target area: %s
- Goals: %s

Top recommendations:
%s`, question, p.Role, p.Seniority, targetArea, goals, recs.String()))
}
