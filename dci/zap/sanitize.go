package zap

import "strings"

// lineBreaks are escaped so a message or field cannot forge extra entries in
// line-oriented sinks.
var lineBreaks = strings.NewReplacer("\r\n", `\r\n`, "\n", `\n`, "\r", `\r`)

func sanitize(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}

	return lineBreaks.Replace(s)
}
