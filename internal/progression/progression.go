// Package progression computes derived academic status for a student from
// its enrollments. All functions are pure: callers load the student and its
// enrollments (with subjects preloaded) and pass them in explicitly.
package progression

import (
	"fmt"
	"math"
	"strings"

	"github.com/campusgrid/enrollment-api/internal/models"
)

// Status classifies a single enrollment.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusPassed  Status = "PASSED"
	StatusFailed  Status = "FAILED"
)

const (
	// PassingGrade is the inclusive pass boundary: exactly 75.0 passes.
	PassingGrade = 75.0

	// FinalYear is the highest year level a student can reach.
	FinalYear = 4

	// OverallIncomplete is reported while any enrollment is still ungraded.
	OverallIncomplete = "INCOMPLETE"
	// OverallFailed is reported when every enrollment is graded and at
	// least one scored below the pass boundary.
	OverallFailed = "FAILED"
	// OverallPassed is reported when every enrollment is graded and passed.
	OverallPassed = "PASSED"
	// OverallNoSubjects is reported for a student with zero enrollments.
	OverallNoSubjects = "No subjects enrolled"
)

// Eligibility is the outcome of a year-promotion check.
type Eligibility struct {
	CanProceed bool   `json:"can_proceed"`
	Message    string `json:"message"`
}

// EnrollmentStatus returns PENDING while the enrollment is ungraded,
// otherwise PASSED or FAILED against the 75.0 boundary.
func EnrollmentStatus(enrollment models.Enrollment) Status {
	if enrollment.Grade == nil {
		return StatusPending
	}
	if *enrollment.Grade >= PassingGrade {
		return StatusPassed
	}
	return StatusFailed
}

// GPA returns the mean of all graded enrollments rounded to two decimal
// places. A student with no graded enrollments has a GPA of 0.0.
func GPA(enrollments []models.Enrollment) float64 {
	var total float64
	var graded int
	for _, enrollment := range enrollments {
		if enrollment.Grade != nil {
			total += *enrollment.Grade
			graded++
		}
	}

	if graded == 0 {
		return 0.0
	}

	return math.Round(total/float64(graded)*100) / 100
}

// OverallStatus summarises a student's enrollments. The ungraded check runs
// before the failed check: a student with one pending and one failed subject
// is INCOMPLETE, not FAILED.
func OverallStatus(enrollments []models.Enrollment) string {
	if len(enrollments) == 0 {
		return OverallNoSubjects
	}

	for _, enrollment := range enrollments {
		if enrollment.Grade == nil {
			return OverallIncomplete
		}
	}

	for _, enrollment := range enrollments {
		if *enrollment.Grade < PassingGrade {
			return OverallFailed
		}
	}

	return OverallPassed
}

// CanProceedToNextYear evaluates promotion eligibility. Checks run in a
// fixed order and stop at the first blocker: final year, no enrollments,
// any ungraded enrollment, then any failed subject.
func CanProceedToNextYear(yearLevel int, enrollments []models.Enrollment) Eligibility {
	if yearLevel >= FinalYear {
		return Eligibility{CanProceed: false, Message: "Already in final year"}
	}

	if len(enrollments) == 0 {
		return Eligibility{CanProceed: false, Message: OverallNoSubjects}
	}

	for _, enrollment := range enrollments {
		if enrollment.Grade == nil {
			return Eligibility{CanProceed: false, Message: "Not all subjects have been graded"}
		}
	}

	var failed []string
	for _, enrollment := range enrollments {
		if *enrollment.Grade < PassingGrade {
			failed = append(failed, enrollment.Subject.Name)
		}
	}
	if len(failed) > 0 {
		return Eligibility{
			CanProceed: false,
			Message:    fmt.Sprintf("Failed subjects: %s", strings.Join(failed, ", ")),
		}
	}

	return Eligibility{
		CanProceed: true,
		Message:    fmt.Sprintf("Can proceed to Year %d", yearLevel+1),
	}
}
