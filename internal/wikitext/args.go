package wikitext

import (
	"strconv"

	"streamindex/internal"
)

// TemplateArguments flattens one field into zero or more "key=value" template
// arguments. Mapping entries become "{key}_{sub}={value}"; list elements
// become "{key}={v}" for the first and "{key}{n}={v}" (1-based) for the rest;
// scalars become a single "{key}={value}".
func TemplateArguments(key string, value internal.Value) []string {
	switch value.Kind {
	case internal.ValueMap:
		out := make([]string, 0, len(value.Map))
		for _, entry := range value.Map {
			out = append(out, key+"_"+entry.Key+"="+entry.Value)
		}
		return out
	case internal.ValueList:
		out := make([]string, 0, len(value.List))
		for i, v := range value.List {
			suffix := ""
			if i > 0 {
				suffix = strconv.Itoa(i + 1)
			}
			out = append(out, key+suffix+"="+v)
		}
		return out
	case internal.ValueInt:
		return []string{key + "=" + strconv.Itoa(value.Int)}
	default:
		return []string{key + "=" + value.Str}
	}
}
