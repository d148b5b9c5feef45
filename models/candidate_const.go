package models

type CandidateStatus string

const (
	CandidateStatusPending  CandidateStatus = "Pending"
	CandidateStatusReviewed CandidateStatus = "Reviewed"
	CandidateStatusHired    CandidateStatus = "Hired"
	CandidateStatusRejected CandidateStatus = "Rejected"
)

func (s CandidateStatus) IsValid() bool {
	switch s {
	case CandidateStatusPending, CandidateStatusReviewed, CandidateStatusHired, CandidateStatusRejected:
		return true
	}
	return false
}

func CandidateStatuses() []CandidateStatus {
	return []CandidateStatus{
		CandidateStatusPending,
		CandidateStatusReviewed,
		CandidateStatusHired,
		CandidateStatusRejected,
	}
}
