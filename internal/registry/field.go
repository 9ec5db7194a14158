package registry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind describes how a settings field is edited and parsed.
type Kind uint

const (
	KindText Kind = iota
	KindMultiline
	KindInt
	KindBool
	KindColor
	KindSelect
)

// Field is one editable settings entry as shown to the operator. Value is
// always carried as text; Collect parses it back per Kind.
type Field struct {
	Key      string
	Label    string
	Kind     Kind
	Value    string
	Default  string
	Options  []string
	Min      int
	Max      int
	HasRange bool
}

// Draft holds the edited field values for one module, keyed by field key.
// It is the explicit in-memory replacement for form-element lookups: the view
// binds to it but does not own it.
type Draft map[string]string

// NewDraft seeds a draft from rendered fields.
func NewDraft(fields []Field) Draft {
	d := make(Draft, len(fields))
	for _, f := range fields {
		d[f.Key] = f.Value
	}
	return d
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// fieldSpec is the declarative schema entry all module kinds are built from.
// Rendering and collection both walk the same spec list, which makes the
// "collect produces exactly what render exposed" contract hold by
// construction.
type fieldSpec struct {
	key      string
	label    string
	kind     Kind
	def      string
	options  []string
	min      int
	max      int
	hasRange bool
}

func (s fieldSpec) field(settings map[string]any) Field {
	value := s.def
	if raw, ok := settings[s.key]; ok {
		if v, ok := stringify(raw); ok {
			value = v
		}
	}
	return Field{
		Key:      s.key,
		Label:    s.label,
		Kind:     s.kind,
		Value:    value,
		Default:  s.def,
		Options:  s.options,
		Min:      s.min,
		Max:      s.max,
		HasRange: s.hasRange,
	}
}

// collect parses one drafted value, falling back to the field default on any
// parse failure. Bad input degrades to the default, never to an error.
func (s fieldSpec) collect(d Draft) any {
	raw, ok := d[s.key]
	if !ok {
		raw = s.def
	}

	switch s.kind {
	case KindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			n, _ = strconv.Atoi(s.def)
		}
		if s.hasRange {
			n = clamp(n, s.min, s.max)
		}
		return n
	case KindBool:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		default:
			return s.def == "true"
		}
	case KindColor:
		raw = strings.TrimSpace(raw)
		if !colorPattern.MatchString(raw) {
			return s.def
		}
		return strings.ToLower(raw)
	case KindSelect:
		for _, opt := range s.options {
			if raw == opt {
				return raw
			}
		}
		return s.def
	case KindMultiline:
		return raw
	default:
		return raw
	}
}

func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		// JSON numbers decode as float64; settings ints are whole
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10), true
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMultiline:
		return "multiline"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	case KindSelect:
		return "select"
	default:
		return fmt.Sprintf("kind(%d)", uint(k))
	}
}
