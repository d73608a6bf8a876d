package chart

import "strings"

// DomainID identifies one of the seven fixed thematic rings.
type DomainID string

const (
	DomainTeachingLearning   DomainID = "teaching-learning"
	DomainCurriculumReform   DomainID = "curriculum-reform"
	DomainAssessmentSystems  DomainID = "assessment-systems"
	DomainLearningEnviron    DomainID = "learning-environments"
	DomainTechInfrastructure DomainID = "technology-infrastructure"
	DomainEquityAccess       DomainID = "equity-access"
	DomainTeacherEmpowerment DomainID = "teacher-empowerment"
)

// Domain is one concentric thematic ring. Ring radii increase strictly from
// the first to the last entry of CanonicalDomains; that ordering is the
// semantic innermost-to-outermost ordering used by sorting and radius lookups.
type Domain struct {
	ID           DomainID `json:"id"`
	DisplayLabel string   `json:"display_label"`
	RingRadius   float64  `json:"ring_radius"`
}

// InnerBoundaryRadius is the radius of the hole inside the first ring, in
// abstract chart units.
const InnerBoundaryRadius = 30

// CanonicalDomains lists the seven rings innermost to outermost. The set is
// static configuration; domains are never created or destroyed at runtime.
var CanonicalDomains = [7]Domain{
	{ID: DomainTeachingLearning, DisplayLabel: "Teaching & Learning Models", RingRadius: 60},
	{ID: DomainCurriculumReform, DisplayLabel: "Curriculum Reform", RingRadius: 100},
	{ID: DomainAssessmentSystems, DisplayLabel: "Assessment Systems", RingRadius: 140},
	{ID: DomainLearningEnviron, DisplayLabel: "Learning Environments", RingRadius: 180},
	{ID: DomainTechInfrastructure, DisplayLabel: "Technology & Infrastructure", RingRadius: 220},
	{ID: DomainEquityAccess, DisplayLabel: "Equity & Access", RingRadius: 260},
	{ID: DomainTeacherEmpowerment, DisplayLabel: "Teacher Empowerment", RingRadius: 300},
}

// domainTagTable maps normalized free-text tags onto canonical ids. Both the
// display label and the id itself are accepted.
var domainTagTable = buildDomainTagTable()

func buildDomainTagTable() map[string]DomainID {
	table := make(map[string]DomainID, len(CanonicalDomains)*2)
	for _, d := range CanonicalDomains {
		table[normalizeTag(d.DisplayLabel)] = d.ID
		table[normalizeTag(string(d.ID))] = d.ID
	}
	return table
}

func normalizeTag(tag string) string {
	return strings.ToLower(CollapseWhitespace(tag))
}

// LookupDomainTag resolves a free-text domain tag case-insensitively and
// whitespace-tolerantly. The second return reports whether the tag mapped.
func LookupDomainTag(tag string) (DomainID, bool) {
	id, ok := domainTagTable[normalizeTag(tag)]
	return id, ok
}

// DomainByID returns the canonical domain for an id.
func DomainByID(id DomainID) (Domain, bool) {
	idx := DomainIndex(id)
	if idx < 0 {
		return Domain{}, false
	}
	return CanonicalDomains[idx], true
}

// DomainIndex returns the position of id in the canonical order, or -1 when
// the id is not canonical.
func DomainIndex(id DomainID) int {
	for i, d := range CanonicalDomains {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// OuterRingRadius is the ring radius of the outermost domain, the base the
// label layout hangs off.
func OuterRingRadius() float64 {
	return CanonicalDomains[len(CanonicalDomains)-1].RingRadius
}

// CollapseWhitespace trims s and collapses internal whitespace runs to
// single spaces. Label text must pass through here before measurement or
// truncation; untrimmed text corrupts width estimates.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
