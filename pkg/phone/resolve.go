package phone

import (
	"sort"

	"github.com/mroshb/phone_manager/pkg/operators"
)

// prefixIndex maps every prefix to its owner. lengths holds the distinct
// prefix lengths, longest first, so a lookup trims the candidate from the
// longest length down and the first hit is the longest match.
type prefixIndex struct {
	owner   map[string]operators.Code
	lengths []int
}

func buildIndex(c Country) *prefixIndex {
	idx := &prefixIndex{owner: make(map[string]operators.Code)}
	seen := make(map[int]bool)
	for _, op := range c.Operators {
		for _, p := range op.Prefixes {
			if _, taken := idx.owner[p]; !taken {
				idx.owner[p] = op.Operator
			}
			if !seen[len(p)] {
				seen[len(p)] = true
				idx.lengths = append(idx.lengths, len(p))
			}
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(idx.lengths)))
	return idx
}

func (idx *prefixIndex) match(candidate string) (string, operators.Code, bool) {
	for _, l := range idx.lengths {
		if l > len(candidate) {
			continue
		}
		if op, ok := idx.owner[candidate[:l]]; ok {
			return candidate[:l], op, true
		}
	}
	return "", "", false
}

func (m *Manager) lookupIndex() *prefixIndex {
	m.indexOnce.Do(func() {
		m.index = buildIndex(m.country)
	})
	return m.index
}

// resolve returns the longest matching prefix (trunk zero included) and its
// operator for input.
func (m *Manager) resolve(input string) (string, operators.Code, bool) {
	digits, err := m.Normalize(input)
	if err != nil {
		return "", "", false
	}
	return m.lookupIndex().match(Trunk + digits)
}

// Operator returns the operator owning the longest prefix of input. It
// reports false for malformed input and for unallocated ranges.
func (m *Manager) Operator(input string) (operators.Code, bool) {
	_, op, ok := m.resolve(input)
	return op, ok
}

// HasValidPrefix reports whether input belongs to a known operator.
func (m *Manager) HasValidPrefix(input string) bool {
	_, ok := m.Operator(input)
	return ok
}

// Prefix returns the operator prefix of input. With withoutLeadingZero the
// trunk zero is dropped ("912"), otherwise it is kept ("0912").
func (m *Manager) Prefix(input string, withoutLeadingZero bool) (string, bool) {
	prefix, _, ok := m.resolve(input)
	if !ok {
		return "", false
	}
	if withoutLeadingZero {
		return prefix[len(Trunk):], true
	}
	return prefix, true
}
