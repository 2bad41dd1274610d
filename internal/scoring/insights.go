package scoring

import "github.com/abhisek/careerfit/internal/catalog"

const (
	strengthThreshold = 80
	weaknessThreshold = 60
)

// insight pairs the strength and weakness wording for one scored dimension.
type insight struct {
	score    func(p, t int, w WISCARScores) int
	strength string
	weakness string
}

func wiscar(d catalog.Dimension) func(p, t int, w WISCARScores) int {
	return func(_, _ int, w WISCARScores) int { return w.Get(d) }
}

// insights is ordered: psychometric, technical, then the WISCAR dimensions.
var insights = []insight{
	{
		score:    func(p, _ int, _ WISCARScores) int { return p },
		strength: "Excellent psychological fit for consulting work",
		weakness: "May struggle with the psychological demands of consulting",
	},
	{
		score:    func(_, t int, _ WISCARScores) int { return t },
		strength: "Strong technical foundation in process optimization",
		weakness: "Need to develop technical knowledge in process improvement methodologies",
	},
	{
		score:    wiscar(catalog.DimensionWill),
		strength: "High motivation and persistence",
		weakness: "May lack the persistence required for long-term success",
	},
	{
		score:    wiscar(catalog.DimensionInterest),
		strength: "Genuine interest in process optimization",
		weakness: "Limited natural interest in process improvement work",
	},
	{
		score:    wiscar(catalog.DimensionSkill),
		strength: "Solid existing skill base",
		weakness: "Need to develop foundational skills",
	},
	{
		score:    wiscar(catalog.DimensionCognitive),
		strength: "Excellent analytical and systems thinking abilities",
		weakness: "May struggle with complex analytical thinking required",
	},
	{
		score:    wiscar(catalog.DimensionAbility),
		strength: "Strong learning ability and growth mindset",
		weakness: "May have difficulty adapting and learning new approaches",
	},
	{
		score:    wiscar(catalog.DimensionRealWorld),
		strength: "Good alignment with real-world consulting demands",
		weakness: "Expectations may not align with consulting reality",
	},
}

// Insights returns the strengths (score >= 80) and weaknesses (score < 60).
// Scores in between produce neither.
func Insights(psychometric, technical int, w WISCARScores) (strengths, weaknesses []string) {
	strengths = []string{}
	weaknesses = []string{}
	for _, in := range insights {
		s := in.score(psychometric, technical, w)
		switch {
		case s >= strengthThreshold:
			strengths = append(strengths, in.strength)
		case s < weaknessThreshold:
			weaknesses = append(weaknesses, in.weakness)
		}
	}
	return strengths, weaknesses
}

// NextSteps returns the action plan for a recommendation. For a "maybe" the
// plan adds focused steps for a weak technical score, a weak skill dimension
// and a weak interest dimension.
func NextSteps(rec Recommendation, technical int, w WISCARScores) []string {
	switch rec {
	case RecommendYes:
		return []string{
			"Start with Lean Six Sigma Yellow Belt certification",
			"Practice with process mapping tools like Lucidchart or Visio",
			"Join process improvement communities and forums",
			"Seek out improvement projects in your current role",
			"Consider advanced certifications (Green Belt, Black Belt)",
		}
	case RecommendMaybe:
		steps := []string{"Take an introductory course in process improvement"}
		if technical < weaknessThreshold {
			steps = append(steps, "Focus on building technical knowledge through online courses")
		}
		if w.Skill < weaknessThreshold {
			steps = append(steps, "Develop proficiency in Excel and data analysis tools")
		}
		if w.Interest < weaknessThreshold {
			steps = append(steps, "Explore process improvement through books and case studies")
		}
		return append(steps,
			"Shadow a process improvement consultant",
			"Reassess your fit after 3-6 months of skill development",
		)
	default:
		return []string{
			"Consider alternative careers in operations, project management, or data analysis",
			"Develop stronger analytical and technical skills before reconsidering",
			"Explore related fields like quality assurance or business analysis",
			"Focus on building the specific weaknesses identified in this assessment",
		}
	}
}

var careerRoles = []string{
	"Process Optimization Consultant",
	"Business Process Analyst",
	"Continuous Improvement Manager",
	"Lean Six Sigma Specialist",
	"Operations Excellence Manager",
	"Digital Transformation Consultant",
	"Quality Assurance Manager",
	"Project Management Office (PMO) Lead",
}

// CareerRoles returns the roles worth exploring at a confidence level.
func CareerRoles(confidence int) []string {
	var roles []string
	switch {
	case confidence >= 75:
		roles = careerRoles[:6]
	case confidence >= 60:
		roles = careerRoles[1:5]
	default:
		roles = careerRoles[5:]
	}
	return append([]string(nil), roles...)
}

// LearningPathFor returns the study plan. It does not vary with the scores yet.
func LearningPathFor(technical, skill int) LearningPath {
	return LearningPath{
		Beginner: []string{
			"Introduction to Lean Manufacturing principles",
			"Basic process mapping and flowcharting",
			"Excel fundamentals for data analysis",
			"Understanding KPIs and metrics",
			"Root cause analysis techniques",
		},
		Intermediate: []string{
			"Lean Six Sigma Yellow Belt certification",
			"Advanced Excel and basic SQL",
			"Value stream mapping",
			"Statistical process control",
			"Change management fundamentals",
			"Process simulation software",
		},
		Advanced: []string{
			"Lean Six Sigma Green/Black Belt certification",
			"Advanced statistical analysis and hypothesis testing",
			"Digital process automation tools",
			"Advanced project management (PMP/Agile)",
			"Business case development and ROI analysis",
			"Leadership and consulting skills",
		},
	}
}
