package screening

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed instruments/*.yaml
var embeddedInstruments embed.FS

const catalogManifest = "catalog.yaml"

type manifest struct {
	DefaultInstrument string   `yaml:"defaultInstrument"`
	Instruments       []string `yaml:"instruments"`
}

// Catalog is the immutable set of instruments known to the service.
type Catalog struct {
	instruments []*Instrument
	byID        map[string]*Instrument
	fallback    *Instrument
}

var (
	defaultCatalog     *Catalog
	defaultCatalogErr  error
	onceDefaultCatalog sync.Once
)

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	onceDefaultCatalog.Do(func() {
		sub, err := fs.Sub(embeddedInstruments, "instruments")
		if err != nil {
			defaultCatalogErr = err
			return
		}
		defaultCatalog, defaultCatalogErr = LoadCatalog(sub)
	})
	return defaultCatalog, defaultCatalogErr
}

// LoadCatalog reads catalog.yaml and the instrument files it lists from fsys
// and validates every invariant before returning.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, catalogManifest)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", catalogManifest, err)
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", catalogManifest, err)
	}

	instruments := make([]*Instrument, 0, len(m.Instruments))
	for _, file := range m.Instruments {
		data, err := fs.ReadFile(fsys, path.Clean(file))
		if err != nil {
			return nil, fmt.Errorf("reading instrument %s: %w", file, err)
		}
		in := new(Instrument)
		if err := yaml.Unmarshal(data, in); err != nil {
			return nil, fmt.Errorf("parsing instrument %s: %w", file, err)
		}
		instruments = append(instruments, in)
	}
	return NewCatalog(m.DefaultInstrument, instruments...)
}

// NewCatalog validates instruments and builds a catalog. defaultID names the
// instrument returned by SelectInstrument for ages outside every window.
func NewCatalog(defaultID string, instruments ...*Instrument) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Instrument, len(instruments))}
	for _, in := range instruments {
		if err := validateInstrument(in); err != nil {
			return nil, err
		}
		if _, dup := c.byID[in.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate instrument %q", ErrInvalidCatalog, in.ID)
		}
		in.index()
		c.byID[in.ID] = in
		c.instruments = append(c.instruments, in)
	}

	if err := checkAgeWindows(c.instruments); err != nil {
		return nil, err
	}

	fallback, ok := c.byID[defaultID]
	if !ok {
		return nil, fmt.Errorf("%w: default instrument %q is not defined", ErrInvalidCatalog, defaultID)
	}
	c.fallback = fallback
	return c, nil
}

// SelectInstrument returns the instrument whose age window contains
// ageMonths.
//
// Ages outside every window, negative ages included, get the catalog's
// default instrument (the AQ-style questionnaire). This is a deliberate
// permissive policy: selection never fails, and callers that need strict
// eligibility must check AgeRange themselves.
func (c *Catalog) SelectInstrument(ageMonths int) *Instrument {
	for _, in := range c.instruments {
		if in.AgeRange != nil && in.AgeRange.Contains(ageMonths) {
			return in.Clone()
		}
	}
	return c.fallback.Clone()
}

// Instrument looks up an instrument by id.
func (c *Catalog) Instrument(id string) (*Instrument, error) {
	in, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, id)
	}
	return in.Clone(), nil
}

// Instruments returns every instrument in manifest order.
func (c *Catalog) Instruments() []*Instrument {
	out := make([]*Instrument, len(c.instruments))
	for i, in := range c.instruments {
		out[i] = in.Clone()
	}
	return out
}

func (c *Catalog) Default() *Instrument {
	return c.fallback.Clone()
}

func validateInstrument(in *Instrument) error {
	if in.ID == "" {
		return fmt.Errorf("%w: instrument without id", ErrInvalidCatalog)
	}
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: instrument %q: %s", ErrInvalidCatalog, in.ID, fmt.Sprintf(format, args...))
	}

	if len(in.Questions) == 0 {
		return fail("no questions")
	}
	if in.AnswerScale.Kind != ScaleBinary && in.AnswerScale.Kind != ScaleLikert {
		return fail("unknown answer scale %q", in.AnswerScale.Kind)
	}
	if in.AnswerScale.Min >= in.AnswerScale.Max {
		return fail("answer scale min %d must be below max %d", in.AnswerScale.Min, in.AnswerScale.Max)
	}
	if in.AgeRange != nil && (in.AgeRange.Min < 0 || in.AgeRange.Min > in.AgeRange.Max) {
		return fail("invalid age range [%d,%d]", in.AgeRange.Min, in.AgeRange.Max)
	}

	categories := make(map[string]bool, len(in.Categories))
	for _, cat := range in.Categories {
		if cat.ID == "" || categories[cat.ID] {
			return fail("empty or duplicate category id %q", cat.ID)
		}
		categories[cat.ID] = true
	}
	sections := make(map[int]bool, len(in.Sections))
	for _, s := range in.Sections {
		if s.ID <= 0 || sections[s.ID] {
			return fail("invalid or duplicate section id %d", s.ID)
		}
		sections[s.ID] = true
	}

	seen := make(map[string]bool, len(in.Questions))
	used := make(map[string]bool, len(in.Categories))
	for _, q := range in.Questions {
		if q.ID == "" {
			return fail("question without id")
		}
		if seen[q.ID] {
			return fail("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if len(categories) > 0 {
			if !categories[q.CategoryID] {
				return fail("question %q has unknown category %q", q.ID, q.CategoryID)
			}
			used[q.CategoryID] = true
		} else if q.CategoryID != "" {
			return fail("question %q has a category but the instrument defines none", q.ID)
		}

		if len(sections) > 0 && !sections[q.Section] {
			return fail("question %q has unknown section %d", q.ID, q.Section)
		}
	}
	for id := range categories {
		if !used[id] {
			return fail("category %q has no questions", id)
		}
	}
	for _, id := range in.CriticalQuestionIDs {
		if !seen[id] {
			return fail("critical question %q is not defined", id)
		}
	}

	if len(in.RiskBands) == 0 {
		return fail("no risk bands")
	}
	for i, band := range in.RiskBands {
		last := i == len(in.RiskBands)-1
		if last != (band.UpTo == nil) {
			return fail("only the last risk band may omit upTo")
		}
		if i > 0 && !last && *band.UpTo <= *in.RiskBands[i-1].UpTo {
			return fail("risk bands must be ordered by upTo")
		}
	}
	return nil
}

func checkAgeWindows(instruments []*Instrument) error {
	selectable := make([]*Instrument, 0, len(instruments))
	for _, in := range instruments {
		if in.AgeRange != nil {
			selectable = append(selectable, in)
		}
	}
	sort.Slice(selectable, func(i, j int) bool {
		return selectable[i].AgeRange.Min < selectable[j].AgeRange.Min
	})
	for i := 1; i < len(selectable); i++ {
		prev, cur := selectable[i-1], selectable[i]
		if prev.AgeRange.overlaps(*cur.AgeRange) {
			return fmt.Errorf("%w: age windows of %q and %q overlap", ErrInvalidCatalog, prev.ID, cur.ID)
		}
	}
	return nil
}
