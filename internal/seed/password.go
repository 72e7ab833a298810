package seed

import (
	"crypto/rand"
	"fmt"
)

// GeneratedPasswordLen gives about 95 bits of entropy with passwordChars.
const GeneratedPasswordLen = 16

var passwordChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// GeneratePassword returns a random password of length characters.
// Random bytes above the largest multiple of the alphabet size are skipped,
// so every character is equally likely.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}

	limit := 256 - (256 % len(passwordChars))
	out := make([]byte, 0, length)
	buf := make([]byte, length*2)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}

		for _, b := range buf {
			if int(b) >= limit {
				continue
			}

			out = append(out, passwordChars[int(b)%len(passwordChars)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}
