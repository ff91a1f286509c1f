package ticket

import "strings"

// PaymentMethod derives the stored payment method from the form's three-way
// choice. "cash" and "card" store the capitalized option name; "other" stores
// the operator's free text verbatim.
func PaymentMethod(option, otherText string) string {
	opt := strings.ToLower(strings.TrimSpace(option))
	if opt == "other" {
		return otherText
	}
	if opt == "" {
		return ""
	}
	return strings.ToUpper(opt[:1]) + opt[1:]
}

// restricted are the identity and relational columns an update may never
// touch, no matter what the caller sent.
var restricted = map[string]struct{}{
	"customer":   {},
	"id":         {},
	"created_at": {},
	"location":   {},
}

// SanitizeUpdateFields returns a copy of fields with the restricted keys
// removed. The update path always runs through this before hitting the DB.
func SanitizeUpdateFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if _, bad := restricted[k]; bad {
			continue
		}
		out[k] = v
	}
	return out
}
