// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package variant

import "strings"

// MaxVariants is the number of distinct labels an identifier may hold.
const MaxVariants = 2

// ContentVariant is one registered body.
type ContentVariant struct {
	Identifier string `yaml:"identifier" json:"identifier"`
	Label      string `yaml:"label" json:"label"`
	Body       string `yaml:"body" json:"body"`
}

// Lines returns the number of lines in the body.
func (v ContentVariant) Lines() int {
	if v.Body == "" {
		return 0
	}
	n := strings.Count(v.Body, "\n")
	if !strings.HasSuffix(v.Body, "\n") {
		n++
	}
	return n
}

// Group is every variant sharing an identifier, in registration order.
type Group struct {
	Identifier string
	Variants   []ContentVariant
}

// Pair is two variants of one group, Left registered before Right.
type Pair struct {
	Identifier string
	Left       ContentVariant
	Right      ContentVariant
}

// Labels returns the variant labels of g in order.
func (g Group) Labels() []string {
	labels := make([]string, len(g.Variants))
	for i, v := range g.Variants {
		labels[i] = v.Label
	}
	return labels
}

// Pairs returns every unordered pair (i<j) of g's variants. Groups with fewer
// than two variants return an *InsufficientVariantsError.
func (g Group) Pairs() ([]Pair, error) {
	if len(g.Variants) < 2 {
		return nil, &InsufficientVariantsError{Identifier: g.Identifier, Count: len(g.Variants)}
	}

	pairs := make([]Pair, 0, len(g.Variants)*(len(g.Variants)-1)/2)
	for i := 0; i < len(g.Variants); i++ {
		for j := i + 1; j < len(g.Variants); j++ {
			pairs = append(pairs, Pair{
				Identifier: g.Identifier,
				Left:       g.Variants[i],
				Right:      g.Variants[j],
			})
		}
	}
	return pairs, nil
}

// GroupRecords partitions records by identifier, keeping the first-seen order
// of identifiers and the record order inside each group.
func GroupRecords(records []ContentVariant) []Group {
	var groups []Group
	index := map[string]int{}
	for _, r := range records {
		i, ok := index[r.Identifier]
		if !ok {
			i = len(groups)
			index[r.Identifier] = i
			groups = append(groups, Group{Identifier: r.Identifier})
		}
		groups[i].Variants = append(groups[i].Variants, r)
	}
	return groups
}
