package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"testforge/internal/domain"
	"testforge/internal/dto"
)

const sourceTextTooShortMessage = "Please paste at least ~50 characters of content."

// EnumRule describes the allowed values of an enumerated request field and
// the value used when the client sends anything else.
type EnumRule struct {
	Allowed []string
	Default string
}

func (r EnumRule) resolve(raw interface{}) string {
	value, ok := enumKey(raw)
	if !ok {
		return r.Default
	}
	for _, allowed := range r.Allowed {
		if value == allowed {
			return value
		}
	}
	return r.Default
}

const (
	FieldNumQuestions = "numQuestions"
	FieldDifficulty   = "difficulty"
	FieldMode         = "mode"
	FieldGradeLevel   = "gradeLevel"
)

// EnumRules is the allow-list table applied by the Sanitizer.
var EnumRules = map[string]EnumRule{
	FieldNumQuestions: {
		Allowed: []string{"5", "10", "15", "20"},
		Default: strconv.Itoa(domain.DefaultNumQuestions),
	},
	FieldDifficulty: {
		Allowed: []string{string(domain.DifficultyEasy), string(domain.DifficultyMedium), string(domain.DifficultyHard)},
		Default: string(domain.DifficultyMedium),
	},
	FieldMode: {
		Allowed: []string{string(domain.ModeMixed), string(domain.ModeMCQ)},
		Default: string(domain.ModeMixed),
	},
	FieldGradeLevel: {
		Allowed: []string{string(domain.GradeMiddle), string(domain.GradeHigh), string(domain.GradeCollege)},
		Default: string(domain.GradeHigh),
	},
}

// Sanitizer coerces raw request fields into a domain.QuizRequest.
type Sanitizer struct {
	rules map[string]EnumRule
}

// NewSanitizer creates a sanitizer using EnumRules.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{rules: EnumRules}
}

// Sanitize returns a request whose fields all lie in their allowed domains.
// Invalid enumerated values fall back to their defaults silently; the only
// rejected input is a source text shorter than domain.MinSourceTextLength
// runes after trimming.
func (s *Sanitizer) Sanitize(raw *dto.GenerateQuizRequest) (*domain.QuizRequest, error) {
	if raw == nil {
		raw = &dto.GenerateQuizRequest{}
	}

	sourceText, _ := raw.SourceText.(string)
	if utf8.RuneCountInString(strings.TrimSpace(sourceText)) < domain.MinSourceTextLength {
		return nil, domain.NewValidationError(sourceTextTooShortMessage)
	}

	numQuestions, err := strconv.Atoi(s.rules[FieldNumQuestions].resolve(raw.NumQuestions))
	if err != nil {
		numQuestions = domain.DefaultNumQuestions
	}

	return &domain.QuizRequest{
		Title:        SanitizeTitle(raw.Title),
		SourceText:   sourceText,
		NumQuestions: numQuestions,
		Difficulty:   domain.Difficulty(s.rules[FieldDifficulty].resolve(raw.Difficulty)),
		Mode:         domain.Mode(s.rules[FieldMode].resolve(raw.Mode)),
		GradeLevel:   domain.GradeLevel(s.rules[FieldGradeLevel].resolve(raw.GradeLevel)),
		Explanations: parseBool(raw.Explanations),
	}, nil
}

// SanitizeTitle trims and truncates a title to domain.MaxTitleLength runes.
// Missing, non-string or blank titles resolve to domain.DefaultTitle.
func SanitizeTitle(raw interface{}) string {
	title, _ := raw.(string)
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.DefaultTitle
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		title = string([]rune(title)[:domain.MaxTitleLength])
	}
	return title
}

// enumKey normalizes a raw JSON value to the string form used in EnumRules.
func enumKey(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case string:
		return strings.ToLower(strings.TrimSpace(v)), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return "", false
		}
		return strconv.FormatInt(int64(v), 10), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return enumKey(v.String())
	default:
		return "", false
	}
}

func parseBool(raw interface{}) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		}
	case float64:
		return v == 1
	}
	return false
}

// CoerceString renders an untyped JSON value as text. Absent and zero values
// (null, false, 0, "") become "", numbers use their shortest decimal form,
// objects render as "[object Object]" and arrays join their elements with ",".
func CoerceString(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return ""
	case float64:
		if v == 0 || math.IsNaN(v) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		if v == 0 {
			return ""
		}
		return strconv.Itoa(v)
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return ""
		}
		return v.String()
	case []interface{}:
		parts := make([]string, len(v))
		for i, elem := range v {
			if elem != nil {
				parts[i] = arrayElementString(elem)
			}
		}
		return strings.Join(parts, ",")
	case map[string]interface{}:
		return "[object Object]"
	default:
		return fmt.Sprint(v)
	}
}

// arrayElementString keeps falsy scalars that CoerceString would drop.
func arrayElementString(elem interface{}) string {
	switch v := elem.(type) {
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return CoerceString(v)
	}
}
