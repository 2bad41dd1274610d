package catalog

// Section is one of the three top-level question groupings.
type Section string

const (
	SectionPsychometric Section = "psychometric"
	SectionTechnical    Section = "technical"
	SectionWISCAR       Section = "wiscar"
)

// AllSections returns all sections in the order they are presented.
func AllSections() []Section {
	return []Section{
		SectionPsychometric,
		SectionTechnical,
		SectionWISCAR,
	}
}

// SectionTitle returns the heading shown for a section.
func SectionTitle(s Section) string {
	switch s {
	case SectionPsychometric:
		return "Psychological Fit Assessment"
	case SectionTechnical:
		return "Technical Readiness Evaluation"
	case SectionWISCAR:
		return "WISCAR Framework Analysis"
	default:
		return string(s)
	}
}

// SectionDescription returns the one-paragraph blurb for a section.
func SectionDescription(s Section) string {
	switch s {
	case SectionPsychometric:
		return "Evaluate your personality traits, interests, and motivational alignment with process optimization consulting."
	case SectionTechnical:
		return "Assess your current knowledge and aptitude for the technical aspects of process optimization."
	case SectionWISCAR:
		return "Comprehensive evaluation using our WISCAR framework: Will, Interest, Skill, Cognitive readiness, Ability to learn, and Real-world alignment."
	default:
		return ""
	}
}

// Dimension is one of the six WISCAR categories. It doubles as the
// category tag of questions in the wiscar section.
type Dimension string

const (
	DimensionWill      Dimension = "will"
	DimensionInterest  Dimension = "interest"
	DimensionSkill     Dimension = "skill"
	DimensionCognitive Dimension = "cognitive"
	DimensionAbility   Dimension = "ability"
	DimensionRealWorld Dimension = "realWorld"
)

// AllDimensions returns the WISCAR dimensions in framework order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionWill,
		DimensionInterest,
		DimensionSkill,
		DimensionCognitive,
		DimensionAbility,
		DimensionRealWorld,
	}
}

// DimensionDisplayName returns a human-readable name for a dimension.
func DimensionDisplayName(d Dimension) string {
	switch d {
	case DimensionWill:
		return "Will"
	case DimensionInterest:
		return "Interest"
	case DimensionSkill:
		return "Skill"
	case DimensionCognitive:
		return "Cognitive Readiness"
	case DimensionAbility:
		return "Ability to Learn"
	case DimensionRealWorld:
		return "Real-World Alignment"
	default:
		return string(d)
	}
}

func isDimension(category string) bool {
	for _, d := range AllDimensions() {
		if string(d) == category {
			return true
		}
	}
	return false
}

// Type is how a question is answered.
type Type string

const (
	TypeLikert         Type = "likert"
	TypeMultipleChoice Type = "multiple-choice"
)

// MaxChoicePoints is the ceiling every multiple-choice question contributes
// to its category denominator, whatever its rule table actually awards.
const MaxChoicePoints = 5

// LikertScale is the integer range a likert question is answered on.
type LikertScale struct {
	Min      int
	Max      int
	MinLabel string
	MaxLabel string
}

// DefaultLikert returns the 1..5 agreement scale most questions use.
func DefaultLikert() LikertScale {
	return LikertScale{Min: 1, Max: 5, MinLabel: "Strongly Disagree", MaxLabel: "Strongly Agree"}
}

// Question is a single catalog entry.
type Question struct {
	ID       string
	Section  Section
	Category string
	Text     string
	Type     Type
	Options  []string
	Likert   LikertScale
}
