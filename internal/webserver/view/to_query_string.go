package view

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func ToQueryString(m map[string]string) template.URL {
	if len(m) == 0 {
		return ""
	}
	keys := maps.Keys(m)
	slices.Sort(keys)
	parts := make([]string, 0, len(m))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, url.QueryEscape(m[k])))
	}
	return template.URL(strings.Join(parts, "&"))
}
