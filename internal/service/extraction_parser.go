package service

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"receipt-desk/internal/models"
)

// Extraction is a best-effort suggestion pulled from a model answer. Either
// field may be nil.
type Extraction struct {
	Amount  *float64
	Company *string
}

var (
	fencePattern   = regexp.MustCompile("(?i)```(?:json)?")
	amountPattern  = regexp.MustCompile(`(?i)"?amount"?\s*[:=]?[\s$*]*(\d[\d,]*(?:\.\d+)?)`)
	companyPattern = regexp.MustCompile(`(?i)"?company"?\s*[:=]?\s*"?([^"\n]+)"?`)
	// nextLabel marks where a following ", label:" pair starts.
	nextLabel = regexp.MustCompile(`,\s*"?[A-Za-z_]+"?\s*[:=]`)
)

const unknownCompany = "unknown"

// ParseExtraction reads {amount, company} out of free text. A well-formed JSON
// object (or array of objects, first wins) is preferred; anything else goes
// through labeled-field patterns. It never fails.
func ParseExtraction(raw string) Extraction {
	text := strings.TrimSpace(fencePattern.ReplaceAllString(raw, ""))
	if text == "" {
		return Extraction{}
	}

	if fields, ok := decodeFields(text); ok {
		return Extraction{
			Amount:  amountFromValue(fields["amount"]),
			Company: companyFromValue(fields["company"]),
		}
	}

	var out Extraction
	if m := amountPattern.FindStringSubmatch(text); m != nil {
		out.Amount = parseAmount(m[1])
	}
	if m := companyPattern.FindStringSubmatch(text); m != nil {
		name := m[1]
		if loc := nextLabel.FindStringIndex(name); loc != nil {
			name = name[:loc[0]]
		}
		out.Company = cleanCompany(name)
	}
	return out
}

// decodeFields normalizes the decoded answer, which models return either as a
// single object or as a list, into the first object.
func decodeFields(text string) (map[string]interface{}, bool) {
	shape, ok := decodeShape(text)
	if !ok {
		start, end := strings.Index(text, "{"), strings.LastIndex(text, "}")
		if start < 0 || end <= start {
			return nil, false
		}
		if shape, ok = decodeShape(text[start : end+1]); !ok {
			return nil, false
		}
	}
	return shape.First()
}

func decodeShape(text string) (models.Variant[map[string]interface{}], bool) {
	switch text[0] {
	case '{':
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(text), &obj); err != nil {
			return models.NoneOf[map[string]interface{}](), false
		}
		return models.OneOf(obj), true
	case '[':
		var list []map[string]interface{}
		if err := json.Unmarshal([]byte(text), &list); err != nil {
			return models.NoneOf[map[string]interface{}](), false
		}
		return models.ManyOf(list), true
	}
	return models.NoneOf[map[string]interface{}](), false
}

func amountFromValue(v interface{}) *float64 {
	switch a := v.(type) {
	case float64:
		return positiveAmount(a)
	case string:
		return parseAmount(a)
	}
	return nil
}

// parseAmount drops thousands separators and currency marks. Zero counts as
// no suggestion.
func parseAmount(s string) *float64 {
	s = strings.NewReplacer(",", "", "$", "", " ", "").Replace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return positiveAmount(f)
}

func positiveAmount(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return nil
	}
	return &f
}

func companyFromValue(v interface{}) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return cleanCompany(s)
}

func cleanCompany(s string) *string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ",} ")
	s = strings.Trim(s, "*\"' ")
	if s == "" || strings.EqualFold(s, unknownCompany) {
		return nil
	}
	return &s
}
