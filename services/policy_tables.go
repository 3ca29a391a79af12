// services/policy_tables.go - incentive policy data
//
// University incentive policy expressed as data, separated from the branching
// logic in the calculators so the rule matrix can be audited and tested on
// its own. Amounts are INR.
package services

import "strings"

// Journal classifications that qualify for the quartile table.
const (
	ClassNatureScienceLancet = "Nature/Science/Lancet"
	ClassTopOnePercent       = "Top 1% Journals"
	ClassQ1                  = "Q1"
	ClassQ2                  = "Q2"
	ClassQ3                  = "Q3"
	ClassQ4                  = "Q4"
)

// Publication types recognised by the research-paper calculator.
const (
	PubTypeResearchArticle   = "Research Article"
	PubTypeReviewArticle     = "Review Article"
	PubTypeCaseReport        = "Case Report"
	PubTypeShortSurvey       = "Short Survey"
	PubTypeLetterToEditor    = "Letter to Editor"
	PubTypeEditorial         = "Editorial"
	PubTypeScopusProceedings = "Scopus Indexed Conference Proceedings"
	PubTypeUgcCareGroupOne   = "UGC CARE Group-I Journal"
)

// Author roles as captured on the claim form.
const (
	RoleFirstAuthor              = "First Author"
	RoleCorrespondingAuthor      = "Corresponding Author"
	RoleFirstAndCorresponding    = "First & Corresponding Author"
	RoleCoAuthor                 = "Co-Author"
	RolePresentingAuthor         = "Presenting Author"
	RoleFirstAndPresentingAuthor = "First & Presenting Author"
	RoleEditor                   = "Editor"
)

const DesignationPhdScholar = "Ph.D Scholar"

// specialPolicyFaculties follow the quartile-only table with no WoS/UGC-CARE
// fallback incentives.
var specialPolicyFaculties = []string{
	"Faculty of Medicine",
	"Faculty of Homoeopathy",
	"Faculty of Ayurveda",
	"Faculty of Nursing",
	"Faculty of Physiotherapy",
	"Faculty of Public Health",
}

// IsSpecialPolicyFaculty reports whether the faculty is restricted to
// quartile-only incentive eligibility.
func IsSpecialPolicyFaculty(faculty string) bool {
	f := strings.ToLower(strings.TrimSpace(faculty))
	for _, s := range specialPolicyFaculties {
		if strings.ToLower(s) == f {
			return true
		}
	}
	return false
}

// quartileBaseAmounts is shared by special and non-special faculties for the
// quartile-qualifying branch.
var quartileBaseAmounts = map[string]int64{
	ClassNatureScienceLancet: 50000,
	ClassTopOnePercent:       25000,
	ClassQ1:                  15000,
	ClassQ2:                  10000,
	ClassQ3:                  6000,
	ClassQ4:                  4000,
}

// phdScholarAmounts is the reduced two-tier schedule for Ph.D Scholars. The
// designation check precedes every other lookup.
var phdScholarAmounts = map[string]int64{
	ClassQ1: 6000,
	ClassQ2: 4000,
}

const (
	scopusProceedingsBase = 3000
	wosFallbackBase       = 3000
	ugcCareFallbackBase   = 1000
	letterEditorialPool   = 2500
)

// wosFallbackTypes qualify non-special faculties for the WoS fallback base.
var wosFallbackTypes = map[string]bool{
	"SCIE":  true,
	"SSCI":  true,
	"A&HCI": true,
}

// Book and chapter base amounts, keyed by publisher locale and a minimum
// page count. Tiers are evaluated highest first.
type pageTier struct {
	MinPages int
	Amount   int64
}

const (
	PublisherNational      = "National"
	PublisherInternational = "International"
)

var chapterTiers = map[string][]pageTier{
	PublisherNational: {
		{MinPages: 20, Amount: 3000},
		{MinPages: 10, Amount: 2000},
		{MinPages: 5, Amount: 1000},
	},
	PublisherInternational: {
		{MinPages: 20, Amount: 6000},
		{MinPages: 10, Amount: 4000},
		{MinPages: 5, Amount: 2000},
	},
}

var bookTiers = map[string][]pageTier{
	PublisherNational: {
		{MinPages: 350, Amount: 15000},
		{MinPages: 200, Amount: 10000},
		{MinPages: 100, Amount: 6000},
	},
	PublisherInternational: {
		{MinPages: 350, Amount: 30000},
		{MinPages: 200, Amount: 20000},
		{MinPages: 100, Amount: 12000},
	},
}

const (
	scopusChapterAmount = 6000
	scopusBookAmount    = 18000
)

// lookupBookBase resolves the base amount for a book or chapter. Scopus
// indexing takes a flat amount regardless of locale and page count.
func lookupBookBase(isChapter, isScopusIndexed bool, publisherType string, pageCount int) int64 {
	if isScopusIndexed {
		if isChapter {
			return scopusChapterAmount
		}
		return scopusBookAmount
	}

	tiers := bookTiers
	if isChapter {
		tiers = chapterTiers
	}

	locale := normalizePublisherType(publisherType)
	for _, tier := range tiers[locale] {
		if pageCount >= tier.MinPages {
			return tier.Amount
		}
	}
	return 0
}

func normalizePublisherType(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), PublisherInternational) {
		return PublisherInternational
	}
	return PublisherNational
}

// APC reimbursement ceilings.
var apcQuartileCeilings = map[string]int64{
	ClassQ1: 40000,
	ClassQ2: 30000,
	ClassQ3: 20000,
	ClassQ4: 15000,
}

const (
	apcEsciCeiling    = 8000
	apcUgcCareCeiling = 5000
)

// Conference policy.
const (
	ConferenceModeOnline  = "Online"
	ConferenceModeOffline = "Offline"

	ConferenceTypeInternational = "International"
	ConferenceTypeNational      = "National"
	ConferenceTypeRegional      = "Regional/State"

	PresentationTypeOral = "Oral"
)

const homeOrganizerFeeShare = 0.75

// onlineCapTier caps online presentations by a percentage of the registration
// fee with an absolute ceiling, keyed by the presentation order in the
// academic year.
type onlineCapTier struct {
	FeeShare float64
	Ceiling  int64
}

var onlineCapTiers = map[string]onlineCapTier{
	"First":  {FeeShare: 0.75, Ceiling: 15000},
	"Second": {FeeShare: 0.60, Ceiling: 10000},
	"Third":  {FeeShare: 0.50, Ceiling: 7000},
}

var onlineCapDefault = onlineCapTier{FeeShare: 0.30, Ceiling: 2000}

// internationalVenueCaps is the seven-way offline cap table for international
// conferences, keyed by venue category.
var internationalVenueCaps = map[string]int64{
	"India":                   15000,
	"Asia":                    25000,
	"Middle East & Africa":    30000,
	"Europe":                  45000,
	"United Kingdom":          50000,
	"North America":           60000,
	"Australia & New Zealand": 75000,
}

const (
	nationalOralCap    = 8000
	nationalPosterCap  = 5000
	regionalOralCap    = 3000
	regionalDefaultCap = 2000
)

// Membership policy.
const (
	membershipFeeShare = 0.5
	membershipCap      = 10000
)

// Patent policy.
const (
	patentPublishedBase      = 3000
	patentGrantedBase        = 15000
	patentJointApplicantRate = 0.8

	PatentStatusPublished = "Published"
	PatentStatusGranted   = "Granted"
)

// PolicySnapshot returns the active policy tables for read-only display.
func PolicySnapshot() map[string]interface{} {
	return map[string]interface{}{
		"special_policy_faculties": specialPolicyFaculties,
		"quartile_amounts":         quartileBaseAmounts,
		"phd_scholar_amounts":      phdScholarAmounts,
		"chapter_tiers":            chapterTiers,
		"book_tiers":               bookTiers,
		"apc_quartile_ceilings":    apcQuartileCeilings,
		"online_conference_caps":   onlineCapTiers,
		"international_venue_caps": internationalVenueCaps,
		"membership": map[string]interface{}{
			"fee_share": membershipFeeShare,
			"cap":       membershipCap,
		},
		"patent": map[string]interface{}{
			"published_base":       patentPublishedBase,
			"granted_base":         patentGrantedBase,
			"joint_applicant_rate": patentJointApplicantRate,
		},
		"arps_grade_thresholds": ArpsGradeThresholds,
	}
}
