package scoring

import (
	"strings"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"
)

// Reason strings, one per rule. The reasons slice of a result always
// reflects exactly the rules that contributed, in this order.
const (
	ReasonRoleMatch     = "aligned to role"
	ReasonAreaMatch     = "matches target area"
	ReasonJuniorEntry   = "good entry point for junior level"
	ReasonMidCoherent   = "coherent with mid level"
	ReasonSeniorStretch = "advanced challenge for senior level"
	ReasonWithinBudget  = "within budget"
	ReasonOverBudget    = "over budget"
	ReasonCoversGoals   = "covers stated goals"
)

// Score rates one certification against one profile. Pure and total:
// every rule runs, contributions add up, the result may be negative.
func Score(c *model.Certification, p *model.UserProfile) (int, []string) {
	score := 0
	var reasons []string

	// Rule 1: role match (+40)
	if p.Role != "" {
		for _, r := range c.Roles {
			if strings.EqualFold(r, p.Role) {
				score += 40
				reasons = append(reasons, ReasonRoleMatch)
				break
			}
		}
	}

	// Rule 2: target area match (+30)
	if p.TargetArea != "" && strings.EqualFold(c.Area, p.TargetArea) {
		score += 30
		reasons = append(reasons, ReasonAreaMatch)
	}

	// Rule 3: seniority/level coherence (at most one fires)
	switch p.Seniority {
	case model.SeniorityJunior:
		if c.Level == model.LevelBeginner {
			score += 20
			reasons = append(reasons, ReasonJuniorEntry)
		}
	case model.SeniorityMid:
		if c.Level != model.LevelBeginner {
			score += 15
			reasons = append(reasons, ReasonMidCoherent)
		}
	case model.SenioritySenior:
		if c.Level == model.LevelAdvanced {
			score += 20
			reasons = append(reasons, ReasonSeniorStretch)
		}
	}

	// Rule 4: budget (±10, only when both sides are present)
	if p.BudgetUSD != nil && c.EstimatedCostUSD != nil {
		if *c.EstimatedCostUSD <= *p.BudgetUSD {
			score += 10
			reasons = append(reasons, ReasonWithinBudget)
		} else {
			score -= 10
			reasons = append(reasons, ReasonOverBudget)
		}
	}

	// Rule 5: goals covered by skills (+10, fires once)
	if goalHit(p.Goals, c.Skills) {
		score += 10
		reasons = append(reasons, ReasonCoversGoals)
	}

	return score, reasons
}

func goalHit(goals, skills []string) bool {
	for _, g := range goals {
		if g == "" {
			continue
		}
		lg := strings.ToLower(g)
		for _, s := range skills {
			if strings.Contains(strings.ToLower(s), lg) {
				return true
			}
		}
	}
	return false
}
