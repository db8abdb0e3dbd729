package rbxapi

import "regexp"

var (
	codePattern   = regexp.MustCompile(`^[a-zA-Z0-9]{12}$`)
	userIDPattern = regexp.MustCompile(`^\d{17,20}$`)
)

// IsValidCodeFormat reports whether code looks like an access code:
// exactly 12 alphanumeric characters.
func IsValidCodeFormat(code string) bool {
	return codePattern.MatchString(code)
}

// IsValidUserIDFormat reports whether userID looks like a Discord snowflake:
// a digit string of 17 to 20 characters.
func IsValidUserIDFormat(userID string) bool {
	return userIDPattern.MatchString(userID)
}
