package util

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const digits = "0123456789"

// SHA256Hex returns the lowercase hex SHA-256 of s.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}

// RandomString draws n characters uniformly from charset using crypto/rand.
func RandomString(charset string, n int) (string, error) {
	alphabet := []rune(charset)
	if len(alphabet) == 0 {
		return "", errors.New("empty charset")
	}

	var sb strings.Builder
	limit := big.NewInt(int64(len(alphabet)))
	for range n {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		sb.WriteRune(alphabet[idx.Int64()])
	}

	return sb.String(), nil
}

// RandomDigits returns n random decimal digits; leading zeros are kept.
func RandomDigits(n int) (string, error) {
	return RandomString(digits, n)
}

// RandomIntRange returns a uniform integer in [lo, hi].
func RandomIntRange(lo, hi int64) (int64, error) {
	if hi < lo {
		return 0, errors.Errorf("invalid range [%d, %d]", lo, hi)
	}

	n, err := rand.Int(rand.Reader, big.NewInt(hi-lo+1))
	if err != nil {
		return 0, errors.Wrap(err, "failed to read random source")
	}

	return lo + n.Int64(), nil
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
