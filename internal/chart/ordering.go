package chart

import "sort"

// SortSignals returns a new slice ordered by the three-key comparator that
// fixes each signal's angular position: STEEP category first, then the
// innermost tagged domain, then the next outermost tagged domain. The sort
// is stable, so signals with identical keys keep their input order.
func SortSignals(signals []Signal) []Signal {
	out := make([]Signal, len(signals))
	copy(out, signals)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortKey(out[i]), sortKey(out[j])
		if a.category != b.category {
			return a.category < b.category
		}
		if a.innermost != b.innermost {
			return a.innermost < b.innermost
		}
		return a.secondary < b.secondary
	})

	return out
}

type signalSortKey struct {
	category  int
	innermost int
	secondary int
}

func sortKey(s Signal) signalSortKey {
	inner := innermostDomainIndex(s.Domains)
	return signalSortKey{
		category:  s.Category.SortIndex(),
		innermost: inner,
		secondary: nextOutermostDomainIndex(s.Domains, inner),
	}
}

// innermostDomainIndex returns the canonical index of the signal's domain
// with the smallest ring radius. A signal with no domains sorts as if it
// were tagged with the outermost domain; this affects sort placement only.
func innermostDomainIndex(domains []DomainID) int {
	if len(domains) == 0 {
		return len(CanonicalDomains) - 1
	}
	best := len(CanonicalDomains)
	for _, d := range domains {
		if idx := DomainIndex(d); idx >= 0 && idx < best {
			best = idx
		}
	}
	if best == len(CanonicalDomains) {
		return len(CanonicalDomains) - 1
	}
	return best
}

// nextOutermostDomainIndex returns the smallest canonical index among the
// signal's domains excluding the innermost one. With no remaining domains
// the innermost index is returned, making the tiebreak a no-op.
func nextOutermostDomainIndex(domains []DomainID, innermost int) int {
	best := innermost
	found := false
	for _, d := range domains {
		idx := DomainIndex(d)
		if idx < 0 || idx == innermost {
			continue
		}
		if !found || idx < best {
			best = idx
			found = true
		}
	}
	return best
}
