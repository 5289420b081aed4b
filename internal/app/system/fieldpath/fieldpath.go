// internal/app/system/fieldpath/fieldpath.go

// Package fieldpath implements dotted-path field updates on untyped
// documents, used by the single-field PATCH endpoints of the admin
// section APIs.
package fieldpath

import "strings"

// Set returns a copy of record with the value at the dotted path
// replaced. The input is never mutated: nodes along the path are
// shallow-copied and untouched siblings are shared with the input.
//
// Missing intermediate nodes are created as empty objects. An
// intermediate that exists but is not an object is replaced by one,
// discarding its old value.
func Set(record map[string]any, path string, value any) map[string]any {
	keys := strings.Split(path, ".")

	out := make(map[string]any, len(record)+1)
	for k, v := range record {
		out[k] = v
	}

	node := out
	for _, key := range keys[:len(keys)-1] {
		child, _ := node[key].(map[string]any)
		next := make(map[string]any, len(child)+1)
		for k, v := range child {
			next[k] = v
		}
		node[key] = next
		node = next
	}
	node[keys[len(keys)-1]] = value

	return out
}
