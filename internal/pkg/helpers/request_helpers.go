package helpers

// ParseOptionalBool interprets a query parameter as a tri-state boolean.
// Only the literal strings "true" and "false" produce a value; anything
// else, including the empty string, means unset.
func ParseOptionalBool(s string) *bool {
	switch s {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
