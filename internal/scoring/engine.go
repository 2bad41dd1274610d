// Package scoring turns assessment responses into section scores, a WISCAR
// profile, an overall confidence, a recommendation and narrative feedback.
package scoring

import (
	"math"

	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
)

// Confidence weights.
const (
	psychometricWeight = 0.3
	technicalWeight    = 0.3
	wiscarWeight       = 0.4
)

// Engine scores responses against a question catalog. It holds no mutable
// state; one Engine may score any number of assessments.
type Engine struct {
	catalog *catalog.Catalog
	log     *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger makes the engine report ignored input at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an Engine for the given catalog.
func New(c *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{catalog: c, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine scores against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Score computes the assessment result. It never fails: unknown questions
// are ignored, unknown options score 0, and a category with no answered
// questions scores 0. When a question is answered more than once the last
// response wins.
func (e *Engine) Score(responses []Response) Result {
	answers := index(responses)
	for _, r := range responses {
		if _, ok := e.catalog.Question(r.QuestionID); !ok {
			e.log.Debug("ignoring response to unknown question", zap.String("question_id", r.QuestionID))
		}
	}

	psychometric := e.categoryScore(e.catalog.BySection(catalog.SectionPsychometric), answers)
	technical := e.categoryScore(e.catalog.BySection(catalog.SectionTechnical), answers)

	var w WISCARScores
	for _, d := range catalog.AllDimensions() {
		w.set(d, e.categoryScore(e.catalog.ByCategory(catalog.SectionWISCAR, string(d)), answers))
	}

	confidence := Confidence(psychometric, technical, w)
	rec := Recommend(psychometric, technical, confidence)
	strengths, weaknesses := Insights(psychometric, technical, w)

	res := Result{
		PsychometricScore: psychometric,
		TechnicalScore:    technical,
		WISCARScores:      w,
		OverallConfidence: confidence,
		Recommendation:    rec,
		Strengths:         strengths,
		Weaknesses:        weaknesses,
		NextSteps:         NextSteps(rec, technical, w),
		CareerRoles:       CareerRoles(confidence),
		LearningPath:      LearningPathFor(technical, w.Skill),
	}

	e.log.Debug("assessment scored",
		zap.Int("responses", len(answers)),
		zap.Int("psychometric", psychometric),
		zap.Int("technical", technical),
		zap.Int("confidence", confidence),
		zap.String("recommendation", string(rec)),
	)
	return res
}

// categoryScore sums achieved and possible points over the answered
// questions of one category.
func (e *Engine) categoryScore(questions []catalog.Question, answers map[string]Answer) int {
	var achieved, possible float64
	for _, q := range questions {
		a, ok := answers[q.ID]
		if !ok {
			continue
		}
		switch q.Type {
		case catalog.TypeLikert:
			v, ok := a.Value()
			if !ok {
				e.log.Debug("likert answer is not a number", zap.String("question_id", q.ID), zap.Stringer("value", a))
			}
			achieved += v
			possible += float64(q.Likert.Max)
		case catalog.TypeMultipleChoice:
			achieved += float64(e.choicePoints(q, a))
			possible += catalog.MaxChoicePoints
		}
	}
	return Percent(achieved, possible)
}

func (e *Engine) choicePoints(q catalog.Question, a Answer) int {
	if !a.IsText() {
		e.log.Debug("multiple-choice answer is not an option", zap.String("question_id", q.ID), zap.Stringer("value", a))
		return 0
	}
	idx := e.catalog.OptionIndex(q.ID, a.String())
	if idx < 0 {
		e.log.Debug("unknown option", zap.String("question_id", q.ID), zap.String("option", a.String()))
		return 0
	}
	p, _ := e.catalog.Points(q.ID, idx)
	return p
}

// Percent returns round(100 * achieved / possible), or 0 when nothing was
// possible. Out-of-range likert answers are summed as given, so the result
// is clamped to [0, 100].
func Percent(achieved, possible float64) int {
	if possible <= 0 {
		return 0
	}
	pct := achieved / possible * 100
	switch {
	case math.IsNaN(pct) || pct <= 0:
		return 0
	case pct >= 100:
		return 100
	}
	return round(pct)
}

// Confidence weighs the section scores and the mean WISCAR score 30/30/40.
func Confidence(psychometric, technical int, w WISCARScores) int {
	return round(float64(psychometric)*psychometricWeight +
		float64(technical)*technicalWeight +
		w.Mean()*wiscarWeight)
}

// Recommend applies the thresholds in order: yes at 75, maybe at 60, else no.
// Every one of the three scores must clear the threshold.
func Recommend(psychometric, technical, confidence int) Recommendation {
	switch {
	case psychometric >= 75 && technical >= 75 && confidence >= 75:
		return RecommendYes
	case psychometric >= 60 && technical >= 60 && confidence >= 60:
		return RecommendMaybe
	default:
		return RecommendNo
	}
}

// round is half-up rounding.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
