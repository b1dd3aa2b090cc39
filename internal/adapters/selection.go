// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapters

import (
	"fmt"
	"slices"
	"strings"
)

// Select applies an --rga-adapters selection to all, returning the adapters
// in priority order.
//
// An empty selection keeps every adapter not disabled by default. When the
// first name starts with "-" the listed adapters are removed from that
// default set; when it starts with "+" they are put in front of it.
// Otherwise exactly the listed adapters are used, in the given order.
func Select(all []Adapter, selection []string) ([]Adapter, error) {
	enabled := make([]Adapter, 0, len(all))
	for _, a := range all {
		if !a.DisabledByDefault {
			enabled = append(enabled, a)
		}
	}
	if len(selection) == 0 {
		return enabled, nil
	}

	var (
		selected    []Adapter
		subtractive bool
		additive    bool
	)
	for i, name := range selection {
		if i == 0 {
			switch {
			case strings.HasPrefix(name, "-"):
				subtractive = true
				name = name[1:]
				selected = slices.Clone(enabled)
			case strings.HasPrefix(name, "+"):
				additive = true
				name = name[1:]
				selected = slices.Clone(enabled)
			}
		}

		if subtractive {
			idx := slices.IndexFunc(selected, func(a Adapter) bool { return a.Name == name })
			if idx < 0 {
				return nil, fmt.Errorf("%w: %q", ErrAdapterNotInList, name)
			}
			selected = slices.Delete(selected, idx, idx+1)
			continue
		}

		idx := slices.IndexFunc(all, func(a Adapter) bool { return a.Name == name })
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q. Known adapters: %s", ErrUnknownAdapter, name, strings.Join(names(all), ", "))
		}
		if additive {
			selected = slices.Insert(selected, 0, all[idx])
		} else {
			selected = append(selected, all[idx])
		}
	}

	return selected, nil
}

func names(adapters []Adapter) []string {
	out := make([]string, len(adapters))
	for i, a := range adapters {
		out[i] = a.Name
	}
	return out
}
