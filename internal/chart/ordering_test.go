package chart

import "testing"

func TestSortSignalsIsStable(t *testing.T) {
	signals := []Signal{
		{ID: "a", Title: "First twin", Category: CategoryEconomic, Domains: []DomainID{DomainCurriculumReform}},
		{ID: "b", Title: "Second twin", Category: CategoryEconomic, Domains: []DomainID{DomainCurriculumReform}},
		{ID: "c", Title: "Third twin", Category: CategoryEconomic, Domains: []DomainID{DomainCurriculumReform}},
	}

	sorted := SortSignals(signals)
	if sorted[0].ID != "a" || sorted[1].ID != "b" || sorted[2].ID != "c" {
		t.Fatalf("equal-key signals must keep input order, got %s %s %s",
			sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
}

func TestSortSignalsCategoryIsPrimary(t *testing.T) {
	signals := []Signal{
		{ID: "pol", Category: CategoryPolitical, Domains: []DomainID{DomainTeachingLearning}},
		{ID: "unk", Category: CategoryUnknown, Domains: []DomainID{DomainTeachingLearning}},
		{ID: "soc", Category: CategorySocial, Domains: []DomainID{DomainTeacherEmpowerment}},
	}

	sorted := SortSignals(signals)
	if sorted[0].ID != "soc" || sorted[1].ID != "pol" || sorted[2].ID != "unk" {
		t.Fatalf("category must dominate domain keys, got %s %s %s",
			sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
}

func TestSortSignalsUnknownBucketOrdersByInnermostDomain(t *testing.T) {
	// Seven signals, one distinct domain each, no category at all: they all
	// land in the trailing bucket ordered by canonical domain index.
	var signals []Signal
	for i := len(CanonicalDomains) - 1; i >= 0; i-- {
		signals = append(signals, Signal{
			ID:       string(CanonicalDomains[i].ID),
			Category: CategoryUnknown,
			Domains:  []DomainID{CanonicalDomains[i].ID},
		})
	}

	sorted := SortSignals(signals)
	for i, d := range CanonicalDomains {
		if sorted[i].ID != string(d.ID) {
			t.Fatalf("position %d: got %s, want %s", i, sorted[i].ID, d.ID)
		}
	}
	if sorted[0].ID != string(DomainTeachingLearning) {
		t.Errorf("teaching-learning should come first")
	}
	if sorted[len(sorted)-1].ID != string(DomainTeacherEmpowerment) {
		t.Errorf("teacher-empowerment should come last")
	}
}

func TestSortSignalsDomainlessSortsAsOutermost(t *testing.T) {
	signals := []Signal{
		{ID: "none", Category: CategorySocial},
		{ID: "inner", Category: CategorySocial, Domains: []DomainID{DomainTeachingLearning}},
	}

	sorted := SortSignals(signals)
	if sorted[0].ID != "inner" || sorted[1].ID != "none" {
		t.Fatalf("domain-less signal should sort as the outermost domain, got %s %s",
			sorted[0].ID, sorted[1].ID)
	}
}

func TestSortSignalsSecondaryDomainBreaksTies(t *testing.T) {
	signals := []Signal{
		{ID: "wide", Category: CategorySocial, Domains: []DomainID{DomainCurriculumReform, DomainEquityAccess}},
		{ID: "narrow", Category: CategorySocial, Domains: []DomainID{DomainCurriculumReform, DomainAssessmentSystems}},
	}

	sorted := SortSignals(signals)
	if sorted[0].ID != "narrow" || sorted[1].ID != "wide" {
		t.Fatalf("next outermost domain should break the tie, got %s %s",
			sorted[0].ID, sorted[1].ID)
	}
}

func TestSortSignalsSingleDomainTertiaryIsNoOp(t *testing.T) {
	// A single-domain signal's tertiary key equals its innermost key, so two
	// such signals tie fully and keep input order.
	signals := []Signal{
		{ID: "x", Category: CategorySocial, Domains: []DomainID{DomainAssessmentSystems}},
		{ID: "y", Category: CategorySocial, Domains: []DomainID{DomainAssessmentSystems}},
	}

	key := sortKey(signals[0])
	if key.secondary != key.innermost {
		t.Fatalf("single-domain tertiary key should equal innermost, got %d vs %d",
			key.secondary, key.innermost)
	}

	sorted := SortSignals(signals)
	if sorted[0].ID != "x" || sorted[1].ID != "y" {
		t.Fatalf("tied signals must keep input order")
	}
}
