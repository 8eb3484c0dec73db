package secret

// SecretStore holds sensitive values such as the AI provider API key. The
// OS keyring backs it on desktops; tests swap in the keyring mock.
type SecretStore interface {
	// Set stores a secret value under the given key.
	Set(key string, value []byte) error

	// Get retrieves the secret value for the given key.
	// Returns empty slice and nil error if key does not exist.
	Get(key string) ([]byte, error)

	// Delete removes the secret for the given key.
	Delete(key string) error
}

// GeminiKey is the entry the Gemini API key is stored under.
const GeminiKey = "gemini-api-key"

// Resolve returns configured when set, otherwise the stored value for key.
// A missing store or entry yields "".
func Resolve(configured string, store SecretStore, key string) string {
	if configured != "" || store == nil {
		return configured
	}
	v, err := store.Get(key)
	if err != nil {
		return ""
	}
	return string(v)
}
