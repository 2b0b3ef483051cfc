package textkit

import "math/rand"

const (
	alphanumericAlphabetConstant = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	defaultRandomLengthConstant  = 8
)

// DefaultRandomLength is the length used when callers do not choose one.
const DefaultRandomLength = defaultRandomLengthConstant

// RandomString samples length alphanumeric characters with replacement.
// The source is math/rand; the result is not suitable for secrets.
func RandomString(length int) string {
	if length <= 0 {
		return ""
	}

	sampledCharacters := make([]byte, length)
	for characterIndex := range sampledCharacters {
		sampledCharacters[characterIndex] = alphanumericAlphabetConstant[rand.Intn(len(alphanumericAlphabetConstant))]
	}
	return string(sampledCharacters)
}
