package drawablegen

import (
	"regexp"
	"strings"
)

var (
	capRun   = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	lowerCap = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// ToSnakeCase converts a PascalCase identifier to lowercase underscore
// form. Acronym runs stay attached to the following word boundary, so
// "HTTPServer" becomes "http_server". The function is idempotent on its
// own output.
func ToSnakeCase(name string) string {
	s := capRun.ReplaceAllString(name, "${1}_${2}")
	s = lowerCap.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}
