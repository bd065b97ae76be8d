package scanner

import "sort"

// Result is the outcome of analyzing one mission file. Classes keeps
// declaration order, duplicates included; Equipment is deduplicated and
// sorted. Error is set when the analysis failed, in which case Classes and
// Equipment are empty.
type Result struct {
	File      string   `json:"file"`
	Classes   []string `json:"classes"`
	Equipment []string `json:"equipment"`
	Error     string   `json:"error,omitempty"`
}

func errorResult(path string, err error) Result {
	return Result{
		File:      path,
		Classes:   []string{},
		Equipment: []string{},
		Error:     err.Error(),
	}
}

type stringSet map[string]struct{}

func (s stringSet) add(v string) {
	s[v] = struct{}{}
}

// sorted returns the members as a sorted slice, never nil.
func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
