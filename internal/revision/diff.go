package revision

import (
	"sort"
	"strings"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// Diff compares two JSON-normalised documents field by field. Nested objects
// present on both sides are compared recursively and reported with
// dot-notation paths. The result is sorted by path.
func Diff(before, after map[string]any) []domain.FieldChange {
	var out []domain.FieldChange
	diffInto("", before, after, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func diffInto(prefix string, before, after map[string]any, out *[]domain.FieldChange) {
	keys := make(map[string]struct{}, len(before)+len(after))
	for k := range before {
		keys[k] = struct{}{}
	}
	for k := range after {
		keys[k] = struct{}{}
	}

	for k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}

		oldVal, inOld := before[k]
		newVal, inNew := after[k]

		switch {
		case inOld && !inNew:
			*out = append(*out, domain.FieldChange{Path: path, Diff: domain.FieldDiff{Kind: domain.DiffRemoved, Old: oldVal}})
		case !inOld && inNew:
			*out = append(*out, domain.FieldChange{Path: path, Diff: domain.FieldDiff{Kind: domain.DiffAdded, New: newVal}})
		default:
			oldMap, oldIsMap := oldVal.(map[string]any)
			newMap, newIsMap := newVal.(map[string]any)
			if oldIsMap && newIsMap {
				diffInto(path, oldMap, newMap, out)
				continue
			}
			if !jsonEqual(oldVal, newVal) {
				*out = append(*out, domain.FieldChange{Path: path, Diff: domain.FieldDiff{Kind: domain.DiffChanged, Old: oldVal, New: newVal}})
			}
		}
	}
}

// jsonEqual compares two values produced by encoding/json decoding into any.
// Values of different JSON kinds are never equal.
func jsonEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !jsonEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			w, ok := bv[k]
			if !ok || !jsonEqual(v, w) {
				return false
			}
		}
		return true
	}
	return false
}

// Apply replays changes onto state and returns the resulting document.
// state is not modified.
func Apply(state map[string]any, changes []domain.FieldChange) map[string]any {
	out := deepCopy(state)
	for _, c := range changes {
		parts := strings.Split(c.Path, ".")
		if c.Diff.Kind == domain.DiffRemoved {
			removePath(out, parts)
			continue
		}
		setPath(out, parts, c.Diff.New)
	}
	return out
}

func setPath(m map[string]any, parts []string, v any) {
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = deepCopyValue(v)
}

func removePath(m map[string]any, parts []string) {
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			return
		}
		m = next
	}
	delete(m, parts[len(parts)-1])
}

func deepCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return deepCopy(tv)
	case []any:
		cp := make([]any, len(tv))
		for i := range tv {
			cp[i] = deepCopyValue(tv[i])
		}
		return cp
	}
	return v
}
