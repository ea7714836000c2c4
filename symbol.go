package errcode

// Symbol returns the symbolic name of e, such as "ENOENT", or "" when the
// category does not know one.
func (e ErrorCode) Symbol() string {
	if s, ok := e.Category().(Symbolizer); ok {
		return s.Symbol(e.code)
	}
	return ""
}
