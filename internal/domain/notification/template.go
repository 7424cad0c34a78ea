package notification

import "strings"

// Render substitutes {placeholder} fields in a template string. Unknown
// placeholders are left as-is so a broken template stays visible.
func Render(tmpl string, vars map[string]string) string {
	out := tmpl
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}
