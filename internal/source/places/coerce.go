package places

import (
	"strconv"
	"strings"
)

// Provider result sets are not strictly typed: ratings and review counts
// show up as JSON numbers in some datasets and as quoted strings in
// others. The flex types tolerate both, and decode unparseable values to
// nil instead of failing the whole result set.

type flexFloat struct {
	Value *float64
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := clean(data)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.Value = &v
	return nil
}

type flexInt struct {
	Value *int
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := clean(data)
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		f.Value = &v
		return nil
	}
	// Some datasets carry counts as floats ("1200.0")
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		n := int(v)
		f.Value = &n
	}
	return nil
}

func clean(data []byte) string {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return ""
	}
	return strings.Trim(s, `"`)
}
