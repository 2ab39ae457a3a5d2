package address

import "strings"

// Record is a flat keyed source row, e.g. a CSV line or a database row.
// Keys match case-insensitively and ignore underscores, hyphens and spaces.
// Missing keys read as empty text.
type Record map[string]string

// Get returns the trimmed value for key, or "" if it is absent.
func (r Record) Get(key string) string {
	if v, ok := r[key]; ok {
		return strings.TrimSpace(v)
	}
	want := recordKey(key)
	for k, v := range r {
		if recordKey(k) == want {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func recordKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
}

// appendElement adds el to the end of acc, separated by sep when both are present.
func appendElement(acc, el, sep string) string {
	switch {
	case el == "":
		return acc
	case acc == "":
		return el
	}
	return acc + sep + el
}
