package screening

import "fmt"

// ResponseSet holds the raw answers of one assessment attempt keyed by
// question id.
type ResponseSet struct {
	InstrumentID string         `json:"instrumentId"`
	Answers      map[string]int `json:"answers"`
}

func NewResponseSet(instrumentID string) *ResponseSet {
	return &ResponseSet{
		InstrumentID: instrumentID,
		Answers:      make(map[string]int),
	}
}

// Clone returns a deep copy.
func (rs *ResponseSet) Clone() *ResponseSet {
	out := NewResponseSet(rs.InstrumentID)
	for k, v := range rs.Answers {
		out.Answers[k] = v
	}
	return out
}

// Progress is a snapshot of how far an attempt has come.
type Progress struct {
	Answered int     `json:"answered"`
	Total    int     `json:"total"`
	Ratio    float64 `json:"ratio"`
	Complete bool    `json:"complete"`
}

// Collector accumulates answers for one attempt against an instrument.
// It is not safe for concurrent use; an attempt belongs to one session.
type Collector struct {
	instrument *Instrument
	responses  *ResponseSet
}

// NewCollector works on a copy of rs, or a fresh response set when rs is
// nil; the caller's set is never modified. Answers already present in rs
// are validated so that state restored from storage obeys the same rules
// as state recorded through RecordAnswer.
func NewCollector(instrument *Instrument, rs *ResponseSet) (*Collector, error) {
	if rs == nil {
		rs = NewResponseSet(instrument.ID)
	} else {
		rs = rs.Clone()
	}
	if rs.InstrumentID != instrument.ID {
		return nil, fmt.Errorf("%w: %q is not %q", ErrInstrumentMismatch, rs.InstrumentID, instrument.ID)
	}
	for id, value := range rs.Answers {
		if err := validateAnswer(instrument, id, value); err != nil {
			return nil, err
		}
	}
	return &Collector{instrument: instrument, responses: rs}, nil
}

func (c *Collector) Instrument() *Instrument {
	return c.instrument
}

// RecordAnswer inserts or overwrites the answer for questionID. On error the
// previous state is kept.
func (c *Collector) RecordAnswer(questionID string, value int) error {
	if err := validateAnswer(c.instrument, questionID, value); err != nil {
		return err
	}
	c.responses.Answers[questionID] = value
	return nil
}

// CompletionRatio is answered / total in [0,1].
func (c *Collector) CompletionRatio() float64 {
	return float64(len(c.responses.Answers)) / float64(c.instrument.QuestionCount())
}

func (c *Collector) IsComplete() bool {
	return len(c.responses.Answers) == c.instrument.QuestionCount()
}

func (c *Collector) Progress() Progress {
	return Progress{
		Answered: len(c.responses.Answers),
		Total:    c.instrument.QuestionCount(),
		Ratio:    c.CompletionRatio(),
		Complete: c.IsComplete(),
	}
}

// SectionedView returns the questions of sectionID in instrument order.
func (c *Collector) SectionedView(sectionID int) ([]Question, error) {
	if !c.hasSection(sectionID) {
		return nil, fmt.Errorf("%w: %d in %q", ErrUnknownSection, sectionID, c.instrument.ID)
	}
	var out []Question
	for _, q := range c.instrument.Questions {
		if q.Section == sectionID {
			out = append(out, q)
		}
	}
	return out, nil
}

// SectionPassable reports whether every question of sectionID is answered,
// which is the condition for moving on to the next section.
func (c *Collector) SectionPassable(sectionID int) (bool, error) {
	questions, err := c.SectionedView(sectionID)
	if err != nil {
		return false, err
	}
	for _, q := range questions {
		if _, ok := c.responses.Answers[q.ID]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// Answer returns the recorded value for questionID.
func (c *Collector) Answer(questionID string) (int, bool) {
	v, ok := c.responses.Answers[questionID]
	return v, ok
}

// ResponseSet returns a copy of the collected answers.
func (c *Collector) ResponseSet() *ResponseSet {
	return c.responses.Clone()
}

func (c *Collector) hasSection(sectionID int) bool {
	for _, s := range c.instrument.Sections {
		if s.ID == sectionID {
			return true
		}
	}
	return false
}

func validateAnswer(instrument *Instrument, questionID string, value int) error {
	if _, ok := instrument.Question(questionID); !ok {
		return fmt.Errorf("%w: %q in %q", ErrUnknownQuestion, questionID, instrument.ID)
	}
	if !instrument.AnswerScale.Valid(value) {
		return fmt.Errorf("%w: %d for %q, want %d..%d", ErrInvalidAnswerValue, value, questionID,
			instrument.AnswerScale.Min, instrument.AnswerScale.Max)
	}
	return nil
}
