// Package redact scrubs credentials and personal data out of strings before
// they are written to logs.
package redact

import "regexp"

// Placeholders substituted for redacted content.
const (
	Placeholder           = "[REDACTED]"
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	TokenPlaceholder      = "[REDACTED_TOKEN]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	SQLPlaceholder        = "[REDACTED_SQL]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules run in order; narrower patterns come before the broad ones that
// would otherwise swallow them.
var rules = []rule{
	// user:pass@ in connection strings
	{regexp.MustCompile(`(?i)(postgres(?:ql)?|pgx)://[^@\s]+@`), "${1}://" + CredentialPlaceholder + "@"},
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), TokenPlaceholder},
	{regexp.MustCompile(`Bearer\s+\S+`), "Bearer " + TokenPlaceholder},
	// postgres constraint details, e.g. Key (token)=(...) or Key (username)=(...)
	{regexp.MustCompile(`\((token|username|email|phone)\)=\([^)]*\)`), "($1)=(" + Placeholder + ")"},
	{regexp.MustCompile(`(?i)(password|passwd|secret)(\s*[=:]\s*)\S+`), "$1$2" + CredentialPlaceholder},
	{regexp.MustCompile(`(?i)(token)(\s*[=:]\s*)\S+`), "$1$2" + TokenPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), EmailPlaceholder},
	{
		regexp.MustCompile(`(?is)\b(SELECT|INSERT INTO|UPDATE|DELETE FROM)\b.*?\b(FROM|VALUES|SET|WHERE)\b[^;]*`),
		SQLPlaceholder,
	},
}

// String returns input with every sensitive fragment replaced.
func String(input string) string {
	if input == "" {
		return input
	}
	for _, r := range rules {
		input = r.pattern.ReplaceAllString(input, r.replacement)
	}
	return input
}

// Error returns the redacted message of err, or "" for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
