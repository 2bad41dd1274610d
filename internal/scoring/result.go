package scoring

import "github.com/abhisek/careerfit/internal/catalog"

// Recommendation is the categorical verdict of an assessment.
type Recommendation string

const (
	RecommendYes   Recommendation = "yes"
	RecommendMaybe Recommendation = "maybe"
	RecommendNo    Recommendation = "no"
)

// Headline returns the short verdict shown above a result.
func (r Recommendation) Headline() string {
	switch r {
	case RecommendYes:
		return "Excellent Fit!"
	case RecommendMaybe:
		return "Moderate Fit"
	case RecommendNo:
		return "Consider Alternatives"
	default:
		return "Assessment Complete"
	}
}

// Summary returns the one-sentence explanation of the verdict.
func (r Recommendation) Summary() string {
	switch r {
	case RecommendYes:
		return "You show strong potential for success as a Process Optimization Consultant."
	case RecommendMaybe:
		return "You have potential but may need to develop certain skills before pursuing this career."
	case RecommendNo:
		return "This career path may not be the best fit based on your current profile."
	default:
		return "Review your results below."
	}
}

// WISCARScores holds one percentage per WISCAR dimension.
type WISCARScores struct {
	Will      int `json:"will"`
	Interest  int `json:"interest"`
	Skill     int `json:"skill"`
	Cognitive int `json:"cognitive"`
	Ability   int `json:"ability"`
	RealWorld int `json:"realWorld"`
}

// Get returns the score for a dimension, or 0 for an unknown one.
func (w WISCARScores) Get(d catalog.Dimension) int {
	switch d {
	case catalog.DimensionWill:
		return w.Will
	case catalog.DimensionInterest:
		return w.Interest
	case catalog.DimensionSkill:
		return w.Skill
	case catalog.DimensionCognitive:
		return w.Cognitive
	case catalog.DimensionAbility:
		return w.Ability
	case catalog.DimensionRealWorld:
		return w.RealWorld
	default:
		return 0
	}
}

func (w *WISCARScores) set(d catalog.Dimension, v int) {
	switch d {
	case catalog.DimensionWill:
		w.Will = v
	case catalog.DimensionInterest:
		w.Interest = v
	case catalog.DimensionSkill:
		w.Skill = v
	case catalog.DimensionCognitive:
		w.Cognitive = v
	case catalog.DimensionAbility:
		w.Ability = v
	case catalog.DimensionRealWorld:
		w.RealWorld = v
	}
}

// Mean is the unweighted average of the six dimension scores.
func (w WISCARScores) Mean() float64 {
	sum := w.Will + w.Interest + w.Skill + w.Cognitive + w.Ability + w.RealWorld
	return float64(sum) / 6
}

// LearningPath lists study topics by level.
type LearningPath struct {
	Beginner     []string `json:"beginner"`
	Intermediate []string `json:"intermediate"`
	Advanced     []string `json:"advanced"`
}

// Result is the outcome of scoring one completed assessment.
type Result struct {
	PsychometricScore int            `json:"psychometricScore"`
	TechnicalScore    int            `json:"technicalScore"`
	WISCARScores      WISCARScores   `json:"wiscarScores"`
	OverallConfidence int            `json:"overallConfidence"`
	Recommendation    Recommendation `json:"recommendation"`
	Strengths         []string       `json:"strengths"`
	Weaknesses        []string       `json:"weaknesses"`
	NextSteps         []string       `json:"nextSteps"`
	CareerRoles       []string       `json:"careerRoles"`
	LearningPath      LearningPath   `json:"learningPath"`
}

// Band maps a percentage to the label shown next to it.
func Band(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Work"
	}
}
