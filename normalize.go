package argsert

// normalized is the output of normalize: the trimmed argument values,
// the raw tokens to bind and the effective argument count.
type normalized struct {
	args     []any
	expanded []string
	length   int
}

// normalize trims trailing Undefined values, expands mapStr into raw
// tokens, materialises the repeat token and, unless strict, pads the
// tokens with optional any placeholders up to the argument count.
//
// length overrides the argument count when positive.
func normalize(opts *Options, expand func(string) []string, mapStr string, values []any, length int) normalized {
	args := values
	for len(args) > 0 && args[len(args)-1] == Undefined {
		args = args[:len(args)-1]
	}

	if length <= 0 {
		length = len(args)
	}

	expanded := expand(mapStr)

	repeatIndex := -1
	var repeatToken string
	for i, raw := range expanded {
		if token, ok := CutRepeat(raw); ok {
			expanded[i] = token
			repeatIndex = i
			repeatToken = token
		}
	}

	if repeatIndex >= 0 && length > 0 {
		for n := max(0, length-(repeatIndex+1)); n > 0; n-- {
			expanded = append(expanded, repeatToken)
		}
	}

	if !opts.Strict {
		placeholder := string(OptionalOpen) + opts.Any + string(OptionalClose)
		for len(expanded) < length {
			expanded = append(expanded, placeholder)
		}
	}

	return normalized{
		args:     args,
		expanded: expanded,
		length:   length,
	}
}
