// services/policy_arps.go - Annual Research Performance Score policy
//
// The ARPS point system is distinct from the monetary incentive tables and
// the two must never be conflated: ARPS re-scores approved items on a
// normalized scale for performance review, while the incentive engine prices
// individual claims in INR.
package services

// Category weights and caps.
const (
	arpsPublicationWeight = 0.50
	arpsPatentWeight      = 0.15
	arpsEmrWeight         = 0.15

	arpsPublicationCap = 50.0
	arpsPatentCap      = 15.0
	arpsEmrCap         = 15.0
)

// arpsQuartilePoints scores a paper by its journal classification.
var arpsQuartilePoints = map[string]float64{
	ClassNatureScienceLancet: 40,
	ClassTopOnePercent:       30,
	ClassQ1:                  20,
	ClassQ2:                  15,
	ClassQ3:                  10,
	ClassQ4:                  8,
}

// arpsOtherIndexedPoints applies to indexed papers outside the quartile
// table (WoS/UGC-CARE fallback listings).
const arpsOtherIndexedPoints = 4.0

// arpsRoleMultipliers scales paper points by the claimant's author role.
var arpsRoleMultipliers = map[string]float64{
	RoleFirstAndCorresponding:    1.0,
	RoleFirstAuthor:              0.9,
	RoleCorrespondingAuthor:      0.9,
	RoleFirstAndPresentingAuthor: 0.8,
	RolePresentingAuthor:         0.7,
	RoleCoAuthor:                 0.5,
}

const arpsDefaultRoleMultiplier = 0.5

// Patent points by status, scaled by the applicant multiplier.
var arpsPatentBasePoints = map[string]float64{
	PatentStatusGranted:   30,
	PatentStatusPublished: 10,
}

const arpsJointApplicantMultiplier = 0.8

// EMR project points by investigator role.
const (
	arpsEmrPiPoints = 20.0
	arpsEmrCoPoints = 10.0
)

// ArpsGradeThresholds maps a total score to a letter grade. The thresholds
// are external policy; this is the default schedule, evaluated highest first.
var ArpsGradeThresholds = []struct {
	Min   float64
	Grade string
}{
	{Min: 70, Grade: "A+"},
	{Min: 55, Grade: "A"},
	{Min: 40, Grade: "B+"},
	{Min: 25, Grade: "B"},
	{Min: 10, Grade: "C"},
	{Min: 0, Grade: "D"},
}

func arpsGradeForScore(total float64) string {
	for _, t := range ArpsGradeThresholds {
		if total >= t.Min {
			return t.Grade
		}
	}
	return "D"
}
