package uxsettings

// Layered fallback helpers. Each resolver applies these per field so the
// precedence is always: caller value, then the next layer down.

func valueOr[T any](value *T, fallback T) T {
	if value != nil {
		return *value
	}
	return fallback
}

func stringOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func formatOr(value, fallback DateFormat) DateFormat {
	if value != nil {
		return value.clone()
	}
	return fallback.clone()
}

func firstPtr[T any](values ...*T) *T {
	for _, value := range values {
		if value != nil {
			return value
		}
	}
	return nil
}

// cloneValue copies the maps and slices decoders produce for free-form values.
// Other values are returned as is.
func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = cloneValue(item)
		}
		return out
	case ComponentClasses:
		return v.clone()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), v...)
	default:
		return value
	}
}
