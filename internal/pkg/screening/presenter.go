package screening

import "hash/fnv"

const (
	ColorPink   = "pink"
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorPurple = "purple"
	ColorOrange = "orange"

	// ColorOverall is reserved for the synthetic point of flat instruments.
	ColorOverall = "teal"

	ColorLevelLow      = "green"
	ColorLevelModerate = "yellow"
	ColorLevelHigh     = "red"

	overallLabel = "Overall"
)

var categoryPalette = []string{ColorPink, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorOrange}

// ChartPoint is one slice of the results chart.
type ChartPoint struct {
	CategoryID string  `json:"categoryId,omitempty"`
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Percent    int     `json:"percent"`
	ColorKey   string  `json:"colorKey"`
}

// Summary is the headline of a result.
type Summary struct {
	Level    int    `json:"level"`
	Label    string `json:"label"`
	AltLabel string `json:"altLabel"`
	Percent  int    `json:"percent"`
	ColorKey string `json:"colorKey"`
}

// ToChartSeries projects a result into one point per category, or a single
// overall point for flat instruments. Colours depend only on category
// identity so a category renders the same across results.
func ToChartSeries(instrument *Instrument, result *ScoreResult) []ChartPoint {
	if len(result.CategoryScores) == 0 {
		return []ChartPoint{{
			Label:    overallLabel,
			Value:    result.OverallScore,
			Percent:  result.Percent(),
			ColorKey: ColorOverall,
		}}
	}

	series := make([]ChartPoint, 0, len(result.CategoryScores))
	for _, cs := range result.CategoryScores {
		declared := ""
		if instrument != nil {
			if cat, ok := instrument.Category(cs.CategoryID); ok {
				declared = cat.ColorKey
			}
		}
		series = append(series, ChartPoint{
			CategoryID: cs.CategoryID,
			Label:      cs.Name,
			Value:      cs.Score,
			Percent:    cs.Percent,
			ColorKey:   CategoryColor(cs.CategoryID, declared),
		})
	}
	return series
}

// CategoryColor returns declared when it is a palette colour, otherwise a
// colour derived from a hash of the category id.
func CategoryColor(categoryID, declared string) string {
	for _, c := range categoryPalette {
		if c == declared {
			return declared
		}
	}
	h := fnv.New32a()
	h.Write([]byte(categoryID))
	return categoryPalette[h.Sum32()%uint32(len(categoryPalette))]
}

func Summarize(result *ScoreResult) Summary {
	return Summary{
		Level:    result.RiskLevel,
		Label:    result.RiskLabel,
		AltLabel: result.RiskAltLabel,
		Percent:  result.Percent(),
		ColorKey: LevelColor(result.RiskLevel),
	}
}

func LevelColor(level int) string {
	switch {
	case level <= 1:
		return ColorLevelLow
	case level == 2:
		return ColorLevelModerate
	default:
		return ColorLevelHigh
	}
}
