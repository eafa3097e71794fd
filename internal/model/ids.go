package model

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"
)

var meetingIDFormat = regexp.MustCompile(`^[a-fA-F0-9]{8}(?:-[a-fA-F0-9]{4}){3}-[a-fA-F0-9]{12}$`)

// IsMeetingID reports whether s looks like a service-issued meeting id
// rather than an external one.
func IsMeetingID(s string) bool {
	return meetingIDFormat.MatchString(s)
}

// TruncateExternalID cuts s to at most MaxExternalIDLength characters.
func TruncateExternalID(s string) string {
	if utf8.RuneCountInString(s) <= MaxExternalIDLength {
		return s
	}
	return string([]rune(s)[:MaxExternalIDLength])
}

// NewExternalUserID builds "<8 random hex chars>#<name>", truncated.
func NewExternalUserID(name string) string {
	return TruncateExternalID(fmt.Sprintf("%s#%s", uuid.New().String()[:8], name))
}
