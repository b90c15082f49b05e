package names

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// MaxFilenameLen is the default length cap for SafeFilename.
const MaxFilenameLen = 100

var reservedChars = strings.NewReplacer(
	`\`, "_", "/", "_", ":", "_", "*", "_", "?", "_",
	`"`, "_", "<", "_", ">", "_", "|", "_",
)

// SafeFilename returns a filesystem-safe name for raw, capped at
// MaxFilenameLen characters.
func SafeFilename(raw string) string {
	return SafeFilenameMax(raw, MaxFilenameLen)
}

// SafeFilenameMax normalizes raw, replaces filesystem-reserved characters,
// and trims trailing dots and spaces. Names longer than maxLen are
// truncated and suffixed with the first 8 hex characters of the md5 digest
// of the pre-truncation name, keeping the result short, deterministic, and
// collision-resistant.
func SafeFilenameMax(raw string, maxLen int) string {
	base := Normalize(raw)
	base = reservedChars.Replace(base)
	base = strings.Trim(base, " .")
	if base == "" {
		base = FallbackName
	}
	if r := []rune(base); len(r) > maxLen {
		sum := md5.Sum([]byte(base))
		digest := hex.EncodeToString(sum[:])[:8]
		base = string(r[:maxLen-9]) + "_" + digest
	}
	return base
}
