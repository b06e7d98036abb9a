package port

// Translator translates user-facing strings. Keys are the English text.
type Translator interface {
	T(key string, args ...any) string
}
