package hadoop

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// ErrKeyOrdering reports intermediate keys that cannot be grouped or totally
// ordered, either because a key is not usable for equality comparison or
// because the comparator rejects a key pair.
var ErrKeyOrdering = errors.New("intermediate keys are not mutually comparable")

// KeyComparator imposes the total order used to emit groups. It returns a
// negative, zero or positive value like cmp.Compare, or an error when the two
// keys cannot be ordered against each other.
type KeyComparator func(a, b any) (int, error)

// defaultKeyComparator orders string, int, int64 and float64 keys of
// identical dynamic type and rejects everything else.
func defaultKeyComparator(a, b any) (int, error) {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv), nil
		}
	case int:
		if bv, ok := b.(int); ok {
			return cmp.Compare(av, bv), nil
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return cmp.Compare(av, bv), nil
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv), nil
		}
	}
	return 0, fmt.Errorf("cannot order %T against %T", a, b)
}

// ValueIterator walks a group's values in their original emission order. It
// supports a single forward pass: no length query, no reset, no random
// access. Once Next reports false the iterator stays exhausted.
type ValueIterator struct {
	values []any
	pos    int
}

func newValueIterator(values []any) *ValueIterator {
	return &ValueIterator{values: values}
}

// Next returns the next value in the group, or false when the group is
// exhausted.
func (it *ValueIterator) Next() (any, bool) {
	if it.pos >= len(it.values) {
		return nil, false
	}
	v := it.values[it.pos]
	it.pos++
	return v, true
}

type group struct {
	key    any
	values []any
}

// shuffle groups the map phase's intermediate pairs by key equality and
// returns the groups in ascending key order. Values within a group keep their
// emission order; no pair is dropped or duplicated.
func shuffle(pairs []KeyValue, compare KeyComparator) ([]group, error) {
	grouped := make(map[any][]any, len(pairs))
	var keys []any
	for _, kv := range pairs {
		if kv.Key == nil || !reflect.TypeOf(kv.Key).Comparable() {
			return nil, fmt.Errorf("%w: key of type %T", ErrKeyOrdering, kv.Key)
		}
		// A key that is not equal to itself (a NaN, or anything containing
		// one) hashes to a fresh map entry on every insert and its values
		// would silently vanish from the groups.
		if kv.Key != kv.Key {
			return nil, fmt.Errorf("%w: key %v is not equal to itself", ErrKeyOrdering, kv.Key)
		}
		if _, seen := grouped[kv.Key]; !seen {
			if _, err := compare(kv.Key, kv.Key); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrKeyOrdering, err)
			}
			keys = append(keys, kv.Key)
		}
		grouped[kv.Key] = append(grouped[kv.Key], kv.Value)
	}

	var cmpErr error
	sort.Slice(keys, func(i, j int) bool {
		c, err := compare(keys[i], keys[j])
		if err != nil && cmpErr == nil {
			cmpErr = fmt.Errorf("%w: %v", ErrKeyOrdering, err)
		}
		return c < 0
	})
	if cmpErr != nil {
		return nil, cmpErr
	}

	groups := make([]group, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, group{key: key, values: grouped[key]})
	}
	return groups, nil
}
