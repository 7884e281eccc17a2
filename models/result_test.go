package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchReportAddCountsByVerdict(t *testing.T) {
	var r BatchReport

	r.Add(EligibilityVerdict{Passed: true})
	r.Add(EligibilityVerdict{RejectionReason: "GPA below minimum requirement (3)"})
	r.Add(EligibilityVerdict{RejectionReason: "GPA below minimum requirement (3)"})

	assert.Equal(t, 1, r.PassedCount)
	assert.Equal(t, 2, r.RejectedCount)
	assert.Equal(t, 2, r.RejectionDetails["GPA below minimum requirement (3)"])
}

func TestBatchReportMergeCombinesPartials(t *testing.T) {
	var left BatchReport
	left.Add(EligibilityVerdict{Passed: true})
	left.Add(EligibilityVerdict{RejectionReason: "unreadable file"})

	var right BatchReport
	right.Add(EligibilityVerdict{Passed: true})
	right.Add(EligibilityVerdict{RejectionReason: "unreadable file"})
	right.Add(EligibilityVerdict{RejectionReason: "education level below requirement"})

	left.Merge(right)

	assert.Equal(t, 2, left.PassedCount)
	assert.Equal(t, 3, left.RejectedCount)
	assert.Equal(t, 2, left.RejectionDetails["unreadable file"])
	assert.Equal(t, 1, left.RejectionDetails["education level below requirement"])
}

func TestBatchReportMergeIntoZeroValue(t *testing.T) {
	var other BatchReport
	other.Add(EligibilityVerdict{RejectionReason: "unreadable file"})

	var r BatchReport
	r.Merge(other)

	assert.Equal(t, 1, r.RejectedCount)
	assert.Equal(t, 1, r.RejectionDetails["unreadable file"])
}
