// Package screening holds the questionnaire catalog, the per-attempt answer
// collector, the scoring engine and the chart presenter. Everything here is
// pure computation with no I/O besides reading the embedded catalog.
package screening

// ScaleKind names the answer encoding of an instrument.
type ScaleKind string

const (
	ScaleBinary ScaleKind = "binary"
	ScaleLikert ScaleKind = "likert"
)

// AgeRange is an inclusive window in months.
type AgeRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

func (r AgeRange) Contains(ageMonths int) bool {
	return ageMonths >= r.Min && ageMonths <= r.Max
}

func (r AgeRange) overlaps(o AgeRange) bool {
	return r.Min <= o.Max && o.Min <= r.Max
}

type AnswerOption struct {
	Value int    `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// AnswerScale declares the valid raw values of an instrument. Valid values
// are the integers Min..Max.
type AnswerScale struct {
	Kind    ScaleKind      `yaml:"kind" json:"kind"`
	Min     int            `yaml:"min" json:"min"`
	Max     int            `yaml:"max" json:"max"`
	Options []AnswerOption `yaml:"options" json:"options"`
}

func (s AnswerScale) Valid(value int) bool {
	return value >= s.Min && value <= s.Max
}

// Invert mirrors value on the scale, so 4 becomes 1 on a 1..4 scale and
// 1 becomes 0 on a binary scale.
func (s AnswerScale) Invert(value int) int {
	return s.Min + s.Max - value
}

type Question struct {
	ID            string `yaml:"id" json:"id"`
	Number        int    `yaml:"number" json:"number"`
	Text          string `yaml:"text" json:"text"`
	CategoryID    string `yaml:"categoryId,omitempty" json:"categoryId,omitempty"`
	Section       int    `yaml:"section,omitempty" json:"section,omitempty"`
	ReverseScored bool   `yaml:"reverseScored" json:"reverseScored"`
}

// Category groups questions into a sub-scale. QuestionIDs is derived from
// the questions' CategoryID at load time, in question order.
type Category struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	ColorKey    string   `yaml:"colorKey,omitempty" json:"colorKey,omitempty"`
	QuestionIDs []string `yaml:"-" json:"questionIds"`
}

type Section struct {
	ID    int    `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
}

// RiskBand is one step of the classification ladder. A score falls in the
// first band whose UpTo is greater than or equal to it; the last band has no
// UpTo and catches everything above.
type RiskBand struct {
	Level    int      `yaml:"level" json:"level"`
	Label    string   `yaml:"label" json:"label"`
	AltLabel string   `yaml:"altLabel" json:"altLabel"`
	UpTo     *float64 `yaml:"upTo,omitempty" json:"upTo,omitempty"`
}

// Instrument is one versioned questionnaire. Instruments are immutable once
// loaded into a Catalog; the catalog only hands out clones.
type Instrument struct {
	ID                  string      `yaml:"id" json:"id"`
	Name                string      `yaml:"name" json:"name"`
	Version             string      `yaml:"version" json:"version"`
	Description         string      `yaml:"description,omitempty" json:"description,omitempty"`
	AgeRange            *AgeRange   `yaml:"ageRangeMonths,omitempty" json:"ageRangeMonths,omitempty"`
	AnswerScale         AnswerScale `yaml:"answerScale" json:"answerScale"`
	Sections            []Section   `yaml:"sections,omitempty" json:"sections,omitempty"`
	Categories          []Category  `yaml:"categories,omitempty" json:"categories,omitempty"`
	Questions           []Question  `yaml:"questions" json:"questions"`
	RiskBands           []RiskBand  `yaml:"riskBands" json:"riskBands"`
	CriticalQuestionIDs []string    `yaml:"criticalQuestionIds,omitempty" json:"criticalQuestionIds,omitempty"`

	questionIndex map[string]int
	categoryIndex map[string]int
}

// Question looks up a question by id.
func (in *Instrument) Question(id string) (Question, bool) {
	i, ok := in.questionIndex[id]
	if !ok {
		return Question{}, false
	}
	return in.Questions[i], true
}

// Category looks up a category by id.
func (in *Instrument) Category(id string) (Category, bool) {
	i, ok := in.categoryIndex[id]
	if !ok {
		return Category{}, false
	}
	return in.Categories[i], true
}

func (in *Instrument) QuestionCount() int {
	return len(in.Questions)
}

// Categorized reports whether the instrument reports sub-scale scores.
func (in *Instrument) Categorized() bool {
	return len(in.Categories) > 0
}

func (in *Instrument) Sectioned() bool {
	return len(in.Sections) > 0
}

func (in *Instrument) AgeSelectable() bool {
	return in.AgeRange != nil
}

// MaxScale is the top of the score scale used for percentages.
func (in *Instrument) MaxScale() float64 {
	return float64(in.AnswerScale.Max)
}

// Classify returns the risk band for score.
func (in *Instrument) Classify(score float64) RiskBand {
	return classify(in.RiskBands, score)
}

func classify(bands []RiskBand, score float64) RiskBand {
	for _, band := range bands {
		if band.UpTo == nil || score <= *band.UpTo {
			return band
		}
	}
	return bands[len(bands)-1]
}

// Clone returns a deep copy. The lookup tables are shared since they only
// map ids to positions, which the copy keeps.
func (in *Instrument) Clone() *Instrument {
	out := *in
	if in.AgeRange != nil {
		r := *in.AgeRange
		out.AgeRange = &r
	}
	out.AnswerScale.Options = cloneSlice(in.AnswerScale.Options)
	out.Sections = cloneSlice(in.Sections)
	out.Questions = cloneSlice(in.Questions)
	out.CriticalQuestionIDs = cloneSlice(in.CriticalQuestionIDs)
	out.Categories = cloneSlice(in.Categories)
	for i := range out.Categories {
		out.Categories[i].QuestionIDs = cloneSlice(in.Categories[i].QuestionIDs)
	}
	out.RiskBands = cloneSlice(in.RiskBands)
	for i, band := range in.RiskBands {
		if band.UpTo != nil {
			upTo := *band.UpTo
			out.RiskBands[i].UpTo = &upTo
		}
	}
	return &out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// index builds lookup tables and derives category membership.
func (in *Instrument) index() {
	in.questionIndex = make(map[string]int, len(in.Questions))
	for i, q := range in.Questions {
		in.questionIndex[q.ID] = i
	}
	in.categoryIndex = make(map[string]int, len(in.Categories))
	for i := range in.Categories {
		in.categoryIndex[in.Categories[i].ID] = i
		in.Categories[i].QuestionIDs = nil
	}
	for _, q := range in.Questions {
		if i, ok := in.categoryIndex[q.CategoryID]; ok {
			in.Categories[i].QuestionIDs = append(in.Categories[i].QuestionIDs, q.ID)
		}
	}
}
