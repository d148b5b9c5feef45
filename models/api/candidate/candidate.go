package candidateapimodels

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"referral-tracker-backend/lib/utils/validators"
	"referral-tracker-backend/models"
	apimodels "referral-tracker-backend/models/api"
	dbmodels "referral-tracker-backend/models/db"
)

type CandidateData struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	JobTitle string `json:"jobTitle" form:"jobTitle"`
	Notes    string `json:"notes" form:"notes"`
}

func (d CandidateData) Validate() error {
	if d.Name == "" || d.Email == "" || d.Phone == "" || d.JobTitle == "" {
		return errors.New("please provide all required fields")
	}
	if len(d.Name) > 100 {
		return errors.New("name cannot exceed 100 characters")
	}
	if len(d.JobTitle) > 100 {
		return errors.New("job title cannot exceed 100 characters")
	}
	if len(d.Notes) > 500 {
		return errors.New("notes cannot exceed 500 characters")
	}
	if !validators.ValidateEmail(d.Email) {
		return errors.New("please provide a valid email")
	}
	if !validators.ValidatePhone(d.Phone) {
		return errors.New("please provide a valid phone number")
	}
	return nil
}

type StatusData struct {
	Status models.CandidateStatus `json:"status"`
}

type CandidateFilter struct {
	apimodels.Pagination
	Search string `json:"search" query:"search"`
	Status string `json:"status" query:"status"` // точное значение статуса или "all"
}

type ReferrerView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CandidateView struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Email      string                 `json:"email"`
	Phone      string                 `json:"phone"`
	JobTitle   string                 `json:"jobTitle"`
	Status     models.CandidateStatus `json:"status"`
	ResumeURL  string                 `json:"resumeUrl,omitempty"`
	ReferredBy ReferrerView           `json:"referredBy"`
	Notes      string                 `json:"notes,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}

func CandidateConvert(rec dbmodels.CandidateExt) CandidateView {
	view := CandidateView{
		ID:       rec.ID,
		Name:     rec.Name,
		Email:    rec.Email,
		Phone:    rec.Phone,
		JobTitle: rec.JobTitle,
		Status:   rec.Status,
		ReferredBy: ReferrerView{
			ID:    rec.ReferredByID,
			Name:  rec.ReferrerName,
			Email: rec.ReferrerEmail,
		},
		Notes:     rec.Notes,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.ResumeKey != "" {
		view.ResumeURL = fmt.Sprintf("/api/candidates/%s/resume", rec.ID)
	}
	return view
}

type StatsView struct {
	Total    int64                            `json:"total"`
	ByStatus map[models.CandidateStatus]int64 `json:"byStatus"`
}

type CandidateResponse struct {
	apimodels.Response
	Candidate CandidateView `json:"candidate"`
}

func NewCandidateResponse(message string, view CandidateView) CandidateResponse {
	return CandidateResponse{
		Response:  apimodels.NewResponse(message),
		Candidate: view,
	}
}

type CandidateListResponse struct {
	apimodels.Response
	Candidates []CandidateView          `json:"candidates"`
	Pagination apimodels.PaginationView `json:"pagination"`
}

type StatsResponse struct {
	apimodels.Response
	Stats StatsView `json:"stats"`
}
