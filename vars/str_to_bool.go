package vars

import "strings"

func StrToBool(str string) bool {
	str = strings.ToLower(strings.TrimSpace(str))
	switch str {
	case "true", "t", "yes", "y", "1", "on":
		return true
	}
	return false
}
