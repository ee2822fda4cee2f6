package types

import "strings"

// DefaultNamespace is assumed for keys written without a namespace.
const DefaultNamespace = "minecraft"

// splitKey normalizes a namespaced key ("namespace:key") and returns its
// parts. A bare key is placed in DefaultNamespace. Namespaces allow
// [a-z0-9._-]; keys additionally allow '/'.
func splitKey(s string) (namespace, key string, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	namespace, key, found := strings.Cut(s, ":")
	if !found {
		namespace, key = DefaultNamespace, s
	}
	if !validKeyPart(namespace, false) || !validKeyPart(key, true) {
		return "", "", false
	}
	return namespace, key, true
}

func validKeyPart(s string, allowSlash bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		case r == '/' && allowSlash:
		default:
			return false
		}
	}
	return true
}
