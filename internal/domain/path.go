package domain

// ResolvePath validates the directory argument of a run. The value may come
// from an untyped source such as a config file, so any non-string is
// rejected with ErrInvalidPathType and a missing or empty value with
// ErrMissingPath.
func ResolvePath(v any) (string, error) {
	if v == nil {
		return "", ErrMissingPath
	}
	s, ok := v.(string)
	if !ok {
		return "", ErrInvalidPathType
	}
	if s == "" {
		return "", ErrMissingPath
	}
	return s, nil
}
