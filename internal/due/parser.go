package due

import (
	"errors"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// NaturalParser understands ISO dates and English phrases such as
// "tomorrow", "next friday" or "in 3 days".
type NaturalParser struct {
	w *when.Parser
}

func NewNaturalParser() *NaturalParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &NaturalParser{w: w}
}

func (p *NaturalParser) Parse(text string, base time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t, nil
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return t, nil
		}
	}

	r, err := p.w.Parse(text, base)
	if err != nil {
		return time.Time{}, err
	}
	if r == nil {
		return time.Time{}, errors.New("no date found")
	}
	return r.Time, nil
}
