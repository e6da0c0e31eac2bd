package style

import "math"

// Resolve merges a sparse override map into the defaults. The map is the
// decoded form of a style override file, reduced to primitives: numbers,
// booleans, strings, and {r,g,b} maps. Merging is field by field: a
// present, well-typed value replaces the default; anything missing,
// unrecognized, or type-mismatched is silently ignored. Resolve never
// fails. A nil map returns the defaults unchanged.
func Resolve(defaults Sheet, overrides map[string]any) Sheet {
	s := defaults
	if len(overrides) == 0 {
		return s
	}

	s.Margins = resolveMargins(s.Margins, childMap(overrides, "margin"))

	heading := childMap(overrides, "heading")
	s.Heading1 = resolveDescriptor(s.Heading1, childMap(heading, "1"))
	s.Heading2 = resolveDescriptor(s.Heading2, childMap(heading, "2"))
	s.Heading3 = resolveDescriptor(s.Heading3, childMap(heading, "3"))

	s.Text = resolveDescriptor(s.Text, childMap(overrides, "text"))
	s.Emphasis = resolveDescriptor(s.Emphasis, childMap(overrides, "emphasis"))
	s.StrongEmphasis = resolveDescriptor(s.StrongEmphasis, childMap(overrides, "strong_emphasis"))
	s.Code = resolveDescriptor(s.Code, childMap(overrides, "code"))
	s.BlockQuote = resolveDescriptor(s.BlockQuote, childMap(overrides, "block_quote"))
	s.ListItem = resolveDescriptor(s.ListItem, childMap(overrides, "list_item"))
	s.Link = resolveDescriptor(s.Link, childMap(overrides, "link"))
	s.Image = resolveDescriptor(s.Image, childMap(overrides, "image"))
	s.HorizontalRule = resolveDescriptor(s.HorizontalRule, childMap(overrides, "horizontal_rule"))

	return s
}

func resolveMargins(m Margins, overrides map[string]any) Margins {
	if overrides == nil {
		return m
	}
	if v, ok := floatValue(overrides["top"]); ok {
		m.Top = v
	}
	if v, ok := floatValue(overrides["right"]); ok {
		m.Right = v
	}
	if v, ok := floatValue(overrides["bottom"]); ok {
		m.Bottom = v
	}
	if v, ok := floatValue(overrides["left"]); ok {
		m.Left = v
	}
	return m
}

func resolveDescriptor(d Descriptor, overrides map[string]any) Descriptor {
	if overrides == nil {
		return d
	}
	if v, ok := intValue(overrides["size"]); ok && v > 0 && v <= math.MaxUint8 {
		d.Size = uint8(v)
	}
	if v, ok := colorValue(overrides["textcolor"]); ok {
		d.TextColor = v
	}
	if v, ok := colorValue(overrides["backgroundcolor"]); ok {
		d.BackgroundColor = v
	}
	if v, ok := floatValue(overrides["beforespacing"]); ok {
		d.BeforeSpacing = v
	}
	if v, ok := floatValue(overrides["afterspacing"]); ok {
		d.AfterSpacing = v
	}
	if v, ok := alignmentValue(overrides["alignment"]); ok {
		d.Alignment = &v
	}
	if v, ok := overrides["fontfamily"].(string); ok && v != "" {
		d.FontFamily = v
	}
	if v, ok := overrides["bold"].(bool); ok {
		d.Bold = v
	}
	if v, ok := overrides["italic"].(bool); ok {
		d.Italic = v
	}
	if v, ok := overrides["underline"].(bool); ok {
		d.Underline = v
	}
	if v, ok := overrides["strikethrough"].(bool); ok {
		d.Strikethrough = v
	}
	return d
}

// childMap digs one level into a decoded override map. The YAML and TOML
// decoders both produce map[string]any for tables, but integer-keyed TOML
// tables like [heading.1] can also surface string keys, so only string
// keys are considered.
func childMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	child, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}
	return child
}

// intValue accepts the integer shapes the decoders produce. Floats are
// accepted only when they carry no fractional part.
func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// colorValue parses an {r,g,b} table with components 0-255. Out-of-range
// or missing components invalidate the whole color.
func colorValue(v any) (*RGB, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	r, okR := intValue(m["r"])
	g, okG := intValue(m["g"])
	b, okB := intValue(m["b"])
	if !okR || !okG || !okB {
		return nil, false
	}
	for _, c := range []int64{r, g, b} {
		if c < 0 || c > 255 {
			return nil, false
		}
	}
	return &RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// alignmentValue parses an alignment name. Unknown names are ignored
// rather than coerced, keeping the default.
func alignmentValue(v any) (Alignment, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	switch s {
	case "left":
		return AlignLeft, true
	case "center":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	case "justify":
		return AlignJustify, true
	}
	return 0, false
}
