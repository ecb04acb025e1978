// Package internal provides the internal implementation for settingsx.
package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"dario.cat/mergo"

	"go.fernwave.dev/settingsx/core/errors"
	"go.fernwave.dev/settingsx/core/log"
)

// Resolve loads every source in list order and deep-merges the trees with
// last-wins precedence, then flattens the result into dot-separated keys
// with stringified leaf values. The list is not mutated.
func (l *List) Resolve(ctx context.Context) (map[string]string, error) {
	merged := map[string]any{}

	for i, src := range l.sources {
		tree, err := src.Load(ctx)
		if err != nil {
			code := errors.CodeOf(err)
			if code == "" {
				code = errors.CodeInternal
			}
			return nil, errors.Wrapf(code, "resolve", err, "source %d (%s)", i, src.Describe())
		}
		if err := mergo.Merge(&merged, tree, mergo.WithOverride); err != nil {
			return nil, errors.Wrapf(errors.CodeInternal, "resolve", err, "merge source %d (%s)", i, src.Describe())
		}
	}

	snapshot := Flatten(merged)
	l.logger.Info("settings resolved",
		log.Int("sources", len(l.sources)),
		log.Int("keys", len(snapshot)))
	return snapshot, nil
}

// Flatten converts a nested key tree into a flat map with dot-separated
// keys. Array elements are addressed by their numeric index.
func Flatten(tree map[string]any) map[string]string {
	out := make(map[string]string)
	flattenInto("", tree, out)
	return out
}

func flattenInto(prefix string, v any, out map[string]string) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			flattenInto(joinKey(prefix, k), child, out)
		}
	case []any:
		for i, child := range val {
			flattenInto(joinKey(prefix, strconv.Itoa(i)), child, out)
		}
	case json.Number:
		out[prefix] = val.String()
	case string:
		out[prefix] = val
	case bool:
		out[prefix] = strconv.FormatBool(val)
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprintf("%v", val)
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// SortedKeys returns the keys of a snapshot in lexical order. Useful for
// deterministic dumps of resolved settings.
func SortedKeys(snapshot map[string]string) []string {
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
