package parser

import (
	"fmt"
	"sort"
)

// Flatten walks a decoded value tree and collects leaf values under
// dot-joined keypaths. Map values recurse, slice elements get numeric
// segments, scalars are stringified.
func Flatten(prefix string, v interface{}, out map[string]string) {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, child := range val {
			Flatten(joinSeg(prefix, k), child, out)
		}
	case map[interface{}]interface{}:
		// Older YAML decoders produce interface{} keys.
		for k, child := range val {
			Flatten(joinSeg(prefix, fmt.Sprintf("%v", k)), child, out)
		}
	case []interface{}:
		for i, child := range val {
			Flatten(joinSeg(prefix, fmt.Sprintf("%d", i)), child, out)
		}
	case nil:
		// Null leaves are treated as absent keys.
	case string:
		if prefix != "" {
			out[prefix] = val
		}
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprintf("%v", val)
		}
	}
}

func joinSeg(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}

// SortedKeys returns the map's keys in sorted order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
