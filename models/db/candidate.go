package dbmodels

import (
	"referral-tracker-backend/models"
)

type Candidate struct {
	BaseModel
	Name         string                 `gorm:"type:varchar(100)"`
	Email        string                 `gorm:"type:varchar(255);uniqueIndex"` // всегда в нижнем регистре
	Phone        string                 `gorm:"type:varchar(20)"`
	JobTitle     string                 `gorm:"type:varchar(100)"`
	Status       models.CandidateStatus `gorm:"type:varchar(20);index"`
	ResumeKey    string                 `gorm:"type:varchar(255)"` // ключ объекта резюме в S3, пусто если резюме нет
	ReferredByID string                 `gorm:"type:varchar(36);index"`
	ReferredBy   *User                  `gorm:"foreignKey:ReferredByID"`
	Notes        string                 `gorm:"type:varchar(500)"`
}

type CandidateExt struct {
	Candidate
	ReferrerName  string
	ReferrerEmail string
}
