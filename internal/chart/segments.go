package chart

// BuildWedges derives the arc wedge for every (signal, domain) pair. Each
// wedge spans the signal's angular slot; its radial band runs from the ring
// radius of the preceding canonical domain (or the inner boundary for the
// first domain) to the domain's own ring radius.
func BuildWedges(cx, cy float64, signals []Signal) []Wedge {
	n := len(signals)
	if n == 0 {
		return nil
	}

	var wedges []Wedge
	for i, sig := range signals {
		start := SlotStart(i, n)
		end := start + SlotWidth(n)

		for _, id := range sig.Domains {
			idx := DomainIndex(id)
			if idx < 0 {
				continue
			}
			inner := float64(InnerBoundaryRadius)
			if idx > 0 {
				inner = CanonicalDomains[idx-1].RingRadius
			}
			outer := CanonicalDomains[idx].RingRadius

			wedges = append(wedges, Wedge{
				SignalIndex: i,
				Domain:      id,
				InnerRadius: inner,
				OuterRadius: outer,
				StartDeg:    start,
				EndDeg:      end,
				Path:        ArcPath(cx, cy, inner, outer, start, end),
			})
		}
	}
	return wedges
}
