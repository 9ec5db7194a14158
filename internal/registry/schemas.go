package registry

const (
	KeyClock   = "clock"
	KeyBTC     = "btc"
	KeyWeather = "weather"
	KeyTextbox = "textbox"
	KeyBitmap  = "bitmap"
)

// Shared transition sub-schema, appended to every module type. Direction of
// the slide when one module replaces another, and its duration in ms.
var transitionSpecs = []fieldSpec{
	{key: "transition_direction", label: "Transition direction", kind: KindSelect, def: "down", options: []string{"up", "down"}},
	{key: "transition_ms", label: "Transition ms", kind: KindInt, def: "350", min: 0, max: 2000, hasRange: true},
}

func withTransition(specs []fieldSpec) []fieldSpec {
	return append(specs, transitionSpecs...)
}

var fontSizeOptions = []string{"small", "normal"}

var schemas = map[string]Schema{
	KeyClock: &specSchema{
		key: KeyClock,
		specs: withTransition([]fieldSpec{
			{key: "timezone", label: "Timezone", kind: KindText, def: "Europe/Vienna"},
			{key: "show_seconds", label: "Show seconds", kind: KindBool, def: "true"},
			{key: "font_size", label: "Font size", kind: KindSelect, def: "normal", options: fontSizeOptions},
			{key: "color", label: "Color", kind: KindColor, def: "#c8e6ff"},
			{key: "x_offset", label: "X offset", kind: KindInt, def: "0", min: -16, max: 16, hasRange: true},
			{key: "y_offset", label: "Y offset", kind: KindInt, def: "0", min: -4, max: 4, hasRange: true},
			{key: "char_spacing", label: "Char spacing", kind: KindInt, def: "1", min: 0, max: 3, hasRange: true},
			{key: "seconds_border", label: "Seconds border", kind: KindSelect, def: "off", options: []string{"off", "walk", "pulse"}},
			{key: "seconds_border_color", label: "Seconds border color", kind: KindColor, def: "#2563eb"},
		}),
	},
	KeyBTC: &specSchema{
		key: KeyBTC,
		specs: withTransition([]fieldSpec{
			{key: "font_size", label: "Font size", kind: KindSelect, def: "normal", options: fontSizeOptions},
			{key: "x_offset", label: "X offset", kind: KindInt, def: "0", min: -16, max: 16, hasRange: true},
			{key: "y_offset", label: "Y offset", kind: KindInt, def: "0", min: -4, max: 4, hasRange: true},
			{key: "color_b", label: "B symbol color", kind: KindColor, def: "#ff8c00"},
			{key: "color_up", label: "Price up color", kind: KindColor, def: "#00c850"},
			{key: "color_down", label: "Price down color", kind: KindColor, def: "#e63c3c"},
			{key: "color_flat", label: "Price flat color", kind: KindColor, def: "#dcdc50"},
			{key: "color_fallback", label: "Fallback color", kind: KindColor, def: "#9ca3af"},
		}),
	},
	KeyWeather: &specSchema{
		key: KeyWeather,
		specs: withTransition([]fieldSpec{
			{key: "postcode", label: "Postcode", kind: KindText, def: "6020"},
			{key: "font_size", label: "Font size", kind: KindSelect, def: "normal", options: fontSizeOptions},
			{key: "x_offset", label: "X offset", kind: KindInt, def: "0", min: -16, max: 16, hasRange: true},
			{key: "y_offset", label: "Y offset", kind: KindInt, def: "0", min: -4, max: 4, hasRange: true},
			{key: "color_cold", label: "Cold color", kind: KindColor, def: "#3b82f6"},
			{key: "color_warm", label: "Warm color", kind: KindColor, def: "#f97316"},
			{key: "color_fallback", label: "Fallback color", kind: KindColor, def: "#9ca3af"},
		}),
	},
	KeyTextbox: &specSchema{
		key: KeyTextbox,
		specs: withTransition([]fieldSpec{
			{key: "lines", label: "Lines", kind: KindMultiline, def: "HELLO\nPIXELDOCK"},
			{key: "line_seconds", label: "Seconds per line", kind: KindInt, def: "2", min: 1, max: 60, hasRange: true},
			{key: "mode", label: "Mode", kind: KindSelect, def: "static", options: []string{"static", "scroll"}},
			{key: "scroll_speed", label: "Scroll speed", kind: KindInt, def: "8", min: 1, max: 30, hasRange: true},
			{key: "preset", label: "Preset", kind: KindText, def: ""},
			{key: "font_size", label: "Font size", kind: KindSelect, def: "small", options: fontSizeOptions},
			{key: "color", label: "Color", kind: KindColor, def: "#f4f4f5"},
			{key: "x_offset", label: "X offset", kind: KindInt, def: "0", min: -16, max: 16, hasRange: true},
			{key: "y_offset", label: "Y offset", kind: KindInt, def: "0", min: -4, max: 4, hasRange: true},
		}),
	},
	KeyBitmap: &specSchema{
		key: KeyBitmap,
		specs: withTransition([]fieldSpec{
			{key: "file", label: "Bitmap file", kind: KindText, def: ""},
			{key: "scroll", label: "Scroll", kind: KindSelect, def: "none", options: []string{"none", "left", "right"}},
			{key: "scroll_speed", label: "Scroll speed", kind: KindInt, def: "8", min: 1, max: 30, hasRange: true},
			{key: "solid", label: "Solid color mode", kind: KindBool, def: "false"},
			{key: "color", label: "Color", kind: KindColor, def: "#f5f5f5"},
		}),
	},
}
