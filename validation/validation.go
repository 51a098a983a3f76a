package validation

import (
	"math"
	"sort"
	"strings"
	"time"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Fields returns the violated field names in a stable order.
func (v Violations) Fields() []string {
	out := make([]string, 0, len(v))
	for f := range v {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// ISODateLayout is the storage format for calendar dates (YYYY-MM-DD).
const ISODateLayout = "2006-01-02"

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func RequiredID(field string, id uint, v Violations) {
	if id == 0 {
		v[field] = "required"
	}
}

// NonNegativeFloat rejects negative amounts and NaN.
func NonNegativeFloat(field string, val float64, v Violations) {
	if math.IsNaN(val) || val < 0 {
		v[field] = "must_not_be_negative"
	}
}

func NonNegativeInt(field string, val int, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

// ISODate checks value is a real calendar date in YYYY-MM-DD form.
// An empty value is reported as required.
func ISODate(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
		return
	}
	if _, err := time.Parse(ISODateLayout, value); err != nil {
		v[field] = "invalid_date"
	}
}

func OneOf(field, value string, allowed []string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = "invalid_choice"
}
