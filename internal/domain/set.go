package domain

import (
	"encoding/json"
	"sort"
)

// Set is an unordered collection of enumerated string values.
// A nil or empty set contains nothing. On the wire it is a sorted JSON array.
type Set[T ~string] map[T]struct{}

// NewSet builds a set holding the given values. The result is never nil.
func NewSet[T ~string](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is a member of the set
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members
func (s Set[T]) Len() int {
	return len(s)
}

// Values returns the members in ascending order
func (s Set[T]) Values() []T {
	values := make([]T, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}

// MarshalJSON encodes the set as a sorted array
func (s Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON decodes an array into the set
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewSet(values...)
	return nil
}
