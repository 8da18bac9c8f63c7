package arclight

// Token is a (string, metadata) pair flowing through a Pipeline. Metadata
// values are always slices so that repeated keys (e.g. a token that passes
// through two fields) accumulate rather than overwrite.
type Token struct {
	Term     string
	Metadata map[string][]any
}

// NewToken creates a token with an initialised, empty metadata map so
// callers can always write to it without a nil check.
func NewToken(term string) *Token {
	return &Token{Term: term, Metadata: make(map[string][]any)}
}

// Clone returns a token with the same term and a shallow copy of the
// metadata map (the slices themselves are not copied; pipeline functions
// that mutate a metadata slice in place must replace it instead).
func (t *Token) Clone() *Token {
	c := &Token{Term: t.Term, Metadata: make(map[string][]any, len(t.Metadata))}
	for k, v := range t.Metadata {
		c.Metadata[k] = v
	}
	return c
}

// addMetadata appends one value under key, initialising the slice on first
// use.
func (t *Token) addMetadata(key string, value any) {
	t.Metadata[key] = append(t.Metadata[key], value)
}
