package registry

// Schema is the per-module-type extensibility point: rendering the editable
// field set from stored settings and collecting edited drafts back into a
// fully-populated settings object.
type Schema interface {
	// Key is the module-type discriminator ("clock", "btc", ...).
	Key() string
	// Fields produces the editable field set for the module's current
	// settings, substituting defaults for missing values. Read-only and
	// deterministic with respect to its argument.
	Fields(settings map[string]any) []Field
	// Collect reads edited values from the draft and returns the settings
	// object to persist. It contains exactly the keys Fields exposed.
	Collect(d Draft) map[string]any
	// Defaults is the settings object produced from an empty draft.
	Defaults() map[string]any
}

// specSchema is the shared engine: every known module type is a named list of
// fieldSpecs plus the transition sub-schema.
type specSchema struct {
	key   string
	specs []fieldSpec
}

var _ Schema = (*specSchema)(nil)

func (s *specSchema) Key() string { return s.key }

func (s *specSchema) Fields(settings map[string]any) []Field {
	fields := make([]Field, 0, len(s.specs))
	for _, spec := range s.specs {
		fields = append(fields, spec.field(settings))
	}
	return fields
}

func (s *specSchema) Collect(d Draft) map[string]any {
	out := make(map[string]any, len(s.specs))
	for _, spec := range s.specs {
		out[spec.key] = spec.collect(d)
	}
	return out
}

func (s *specSchema) Defaults() map[string]any {
	return s.Collect(Draft{})
}

// unknownSchema is the fallback for module types this build does not know:
// a placeholder with no editable fields and an empty settings object.
type unknownSchema struct {
	key string
}

var _ Schema = (*unknownSchema)(nil)

func (s *unknownSchema) Key() string                   { return s.key }
func (s *unknownSchema) Fields(map[string]any) []Field { return nil }
func (s *unknownSchema) Collect(Draft) map[string]any  { return map[string]any{} }
func (s *unknownSchema) Defaults() map[string]any      { return map[string]any{} }

// Known reports whether key names a module type with a settings schema.
func Known(key string) bool {
	_, ok := schemas[key]
	return ok
}

// Lookup returns the schema for a module-type key, or the unknown fallback.
func Lookup(key string) Schema {
	if s, ok := schemas[key]; ok {
		return s
	}
	return &unknownSchema{key: key}
}

// Keys lists the known module types in a stable order.
func Keys() []string {
	return []string{KeyClock, KeyBTC, KeyWeather, KeyTextbox, KeyBitmap}
}
