package gallery

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bendavieshe3/art-factory-sub001/internal/artifact"
)

// Filters address named artifact fields plus generation parameter keys.
// All active filters must match (AND composition). String fields match
// by case-insensitive substring; everything else by equality on the
// printed value. Array-valued params match when any element matches.

func matchesFilters(art artifact.Artifact, filters map[string]string) bool {
	for field, want := range filters {
		if !matchesField(art, field, want) {
			return false
		}
	}
	return true
}

func matchesField(art artifact.Artifact, field, want string) bool {
	switch field {
	case "id":
		return containsFold(art.ID, want)
	case "title":
		return containsFold(art.Title, want)
	case "prompt":
		return containsFold(art.Prompt, want)
	case "negative_prompt":
		return containsFold(art.NegativePrompt, want)
	case "provider":
		return containsFold(art.Provider, want)
	case "model":
		return containsFold(art.Model, want)
	case "order_id":
		return containsFold(art.OrderID, want)
	case "favorite":
		return fmt.Sprint(art.Favorite) == want
	case "width":
		return fmt.Sprint(art.Width) == want
	case "height":
		return fmt.Sprint(art.Height) == want
	default:
		val, ok := art.Params[field]
		if !ok {
			return false
		}
		return matchesValue(val, want)
	}
}

func matchesValue(val any, want string) bool {
	switch v := val.(type) {
	case string:
		return containsFold(v, want)
	case []any:
		for _, elem := range v {
			if matchesValue(elem, want) {
				return true
			}
		}
		return false
	default:
		return fmt.Sprint(v) == want
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// parseFilter splits a "field=value" expression. Whitespace around
// both sides is trimmed; an empty value clears that field's filter.
func parseFilter(expr string) (field, value string, ok bool) {
	field, value, ok = strings.Cut(expr, "=")
	if !ok {
		return "", "", false
	}
	field = strings.TrimSpace(field)
	value = strings.TrimSpace(value)
	if field == "" {
		return "", "", false
	}
	return field, value, true
}

// Sortable fields, cycled by the sort key in this order.
var sortFields = []string{"created_at", "title", "provider", "favorite"}

func sortArtifacts(items []artifact.Artifact, field string, asc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		less := lessByField(items[i], items[j], field)
		if asc {
			return less
		}
		return lessByField(items[j], items[i], field)
	})
}

func lessByField(a, b artifact.Artifact, field string) bool {
	switch field {
	case "created_at":
		return a.CreatedAt.Before(b.CreatedAt)
	case "title":
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	case "provider":
		return strings.ToLower(a.Provider) < strings.ToLower(b.Provider)
	case "model":
		return strings.ToLower(a.Model) < strings.ToLower(b.Model)
	case "favorite":
		return a.Favorite && !b.Favorite
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

// describeFilters renders the active filter set for the status line,
// in stable key order.
func describeFilters(filters map[string]string) string {
	if len(filters) == 0 {
		return ""
	}
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+filters[k])
	}
	return strings.Join(parts, " ")
}
