package config

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

// GetKnownKeys returns all valid configuration keys based on the schema
func GetKnownKeys() map[string]bool {
	known := make(map[string]bool)
	addKnownKeysByType("", reflect.TypeOf(ConfigSchema{}), known)
	return known
}

// addKnownKeysByType recursively adds keys by examining the struct type
func addKnownKeysByType(prefix string, t reflect.Type, known map[string]bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// Convert the key to lowercase since viper lowercases all keys
		key = strings.ToLower(key)
		known[key] = true

		switch field.Type.Kind() {
		case reflect.Struct:
			addKnownKeysByType(key, field.Type, known)
		case reflect.Map:
			// For maps of structs, add their fields
			if field.Type.Elem().Kind() == reflect.Struct {
				addKnownKeysByType(key+".*", field.Type.Elem(), known)
			} else {
				known[key+".*"] = true
			}
		}
	}
}

// matchesWildcard checks if a key matches a wildcard pattern
func matchesWildcard(pattern, key string) bool {
	patternParts := strings.Split(strings.ToLower(pattern), ".")
	keyParts := strings.Split(strings.ToLower(key), ".")

	if len(patternParts) != len(keyParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != keyParts[i] {
			return false
		}
	}
	return true
}

// IsKnownKey checks if a key is known, including wildcard matches
func IsKnownKey(known map[string]bool, key string) bool {
	if known[strings.ToLower(key)] {
		return true
	}

	for pattern := range known {
		if strings.Contains(pattern, "*") && matchesWildcard(pattern, key) {
			return true
		}
	}
	return false
}

// PrintConfig writes the configuration as YAML. Only keys starting with prefix
// are written; with includeSources each value is followed by where it came from.
func (s *ConfigSchema) PrintConfig(w io.Writer, prefix string, includeSources bool) {
	s.printValue(w, reflect.ValueOf(*s), "", "", strings.ToLower(prefix), includeSources, 0)
}

func (s *ConfigSchema) printValue(w io.Writer, v reflect.Value, name, path, prefix string, includeSources bool, indent int) {
	if !matchesPrefix(path, prefix) {
		return
	}
	pad := strings.Repeat("  ", indent)

	switch v.Kind() {
	case reflect.Struct:
		if name != "" {
			fmt.Fprintf(w, "%s%s:\n", pad, name)
			indent++
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			tag := field.Tag.Get("mapstructure")
			if !field.IsExported() || tag == "" || tag == "-" {
				continue
			}
			s.printValue(w, v.Field(i), tag, joinKey(path, tag), prefix, includeSources, indent)
		}

	case reflect.Map:
		if name != "" {
			fmt.Fprintf(w, "%s%s:\n", pad, name)
			indent++
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, k := range keys {
			s.printValue(w, v.MapIndex(k), k.String(), joinKey(path, k.String()), prefix, includeSources, indent)
		}

	case reflect.Slice:
		items := make([]string, v.Len())
		for i := range items {
			items[i] = fmt.Sprintf("%q", fmt.Sprint(v.Index(i).Interface()))
		}
		fmt.Fprintf(w, "%s%s: [%s]", pad, name, strings.Join(items, ", "))
		s.printSourceInfo(w, path, includeSources)
		fmt.Fprintln(w)

	default:
		switch {
		case isSecretKey(name) && !v.IsZero():
			fmt.Fprintf(w, "%s%s: [REDACTED]", pad, name)
		case v.Kind() == reflect.String:
			fmt.Fprintf(w, "%s%s: %q", pad, name, v.String())
		default:
			fmt.Fprintf(w, "%s%s: %v", pad, name, v.Interface())
		}
		s.printSourceInfo(w, path, includeSources)
		fmt.Fprintln(w)
	}
}

func (s *ConfigSchema) printSourceInfo(w io.Writer, path string, includeSources bool) {
	if !includeSources {
		return
	}

	if sources, ok := s.sources[strings.ToLower(path)]; ok && len(sources) > 0 {
		fmt.Fprintf(w, " # (%s)", sources[len(sources)-1].source)
		return
	}
	fmt.Fprintf(w, " # (default)")
}

// matchesPrefix reports whether the node at path should be visited: either it
// lies under prefix or it is an ancestor of prefix.
func matchesPrefix(path, prefix string) bool {
	if prefix == "" || path == "" {
		return true
	}
	path = strings.ToLower(path)
	return strings.HasPrefix(path, prefix) || strings.HasPrefix(prefix, path+".")
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func isSecretKey(key string) bool {
	key = strings.ToLower(key)
	return key == "apikey" ||
		strings.Contains(key, "secret") ||
		strings.Contains(key, "password")
}
