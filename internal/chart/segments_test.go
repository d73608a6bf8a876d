package chart

import "testing"

func TestBuildWedgesOnePerTaggedDomain(t *testing.T) {
	signals := []Signal{
		{ID: "two", Title: "Two domains", Domains: []DomainID{DomainEquityAccess, DomainCurriculumReform}},
		{ID: "none", Title: "No domains"},
	}

	wedges := BuildWedges(0, 0, signals)
	if len(wedges) != 2 {
		t.Fatalf("expected 2 wedges, got %d", len(wedges))
	}
	for _, w := range wedges {
		if w.SignalIndex != 0 {
			t.Errorf("wedge attributed to wrong signal: %d", w.SignalIndex)
		}
		if w.Path == "" {
			t.Errorf("wedge %s missing path geometry", w.Domain)
		}
	}
	if wedges[0].Domain != DomainEquityAccess || wedges[1].Domain != DomainCurriculumReform {
		t.Errorf("wedges must follow the signal's domain order, got %s %s",
			wedges[0].Domain, wedges[1].Domain)
	}
}

func TestBuildWedgesRadialBands(t *testing.T) {
	signals := []Signal{
		{ID: "first", Title: "Innermost ring", Domains: []DomainID{DomainTeachingLearning}},
		{ID: "third", Title: "Third ring", Domains: []DomainID{DomainAssessmentSystems}},
	}

	wedges := BuildWedges(0, 0, signals)
	if len(wedges) != 2 {
		t.Fatalf("expected 2 wedges, got %d", len(wedges))
	}

	if wedges[0].InnerRadius != InnerBoundaryRadius {
		t.Errorf("first ring's wedge starts at the inner boundary, got %v", wedges[0].InnerRadius)
	}
	if wedges[0].OuterRadius != CanonicalDomains[0].RingRadius {
		t.Errorf("first ring's wedge ends at its own radius, got %v", wedges[0].OuterRadius)
	}

	if wedges[1].InnerRadius != CanonicalDomains[1].RingRadius {
		t.Errorf("wedge inner radius must be the preceding ring's radius, got %v", wedges[1].InnerRadius)
	}
	if wedges[1].OuterRadius != CanonicalDomains[2].RingRadius {
		t.Errorf("wedge outer radius must be the domain's own radius, got %v", wedges[1].OuterRadius)
	}
}

func TestBuildWedgesShareTheSignalSlot(t *testing.T) {
	signals := []Signal{
		{ID: "multi", Title: "Spanning", Domains: []DomainID{DomainTeachingLearning, DomainEquityAccess}},
		{ID: "other", Title: "Other", Domains: []DomainID{DomainCurriculumReform}},
	}

	wedges := BuildWedges(0, 0, signals)
	if len(wedges) != 3 {
		t.Fatalf("expected 3 wedges, got %d", len(wedges))
	}
	if wedges[0].StartDeg != wedges[1].StartDeg || wedges[0].EndDeg != wedges[1].EndDeg {
		t.Errorf("wedges of one signal must share its angular slot")
	}
	if !almostEqual(wedges[0].EndDeg-wedges[0].StartDeg, 180) {
		t.Errorf("two signals should split the circle in half, got %v", wedges[0].EndDeg-wedges[0].StartDeg)
	}
}

func TestBuildWedgesEmptySignalList(t *testing.T) {
	if wedges := BuildWedges(0, 0, nil); wedges != nil {
		t.Fatalf("no signals should yield no wedges, got %d", len(wedges))
	}
}
