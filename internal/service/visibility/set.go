package visibility

import "sort"

type Set map[string]struct{}

func NewSet(keys ...string) Set {
	set := make(Set, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s Set) Add(key string) {
	s[key] = struct{}{}
}

func (s Set) Union(other Set) Set {
	result := make(Set, len(s)+len(other))
	for key := range s {
		result[key] = struct{}{}
	}
	for key := range other {
		result[key] = struct{}{}
	}
	return result
}

func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
