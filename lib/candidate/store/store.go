package candidatestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"referral-tracker-backend/models"
	candidateapimodels "referral-tracker-backend/models/api/candidate"
	dbmodels "referral-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	GetByID(id string) (rec *dbmodels.CandidateExt, err error)
	GetByEmail(email string) (rec *dbmodels.Candidate, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter candidateapimodels.CandidateFilter) (list []dbmodels.CandidateExt, err error)
	ListAll(filter candidateapimodels.CandidateFilter) (list []dbmodels.CandidateExt, err error)
	ListCount(filter candidateapimodels.CandidateFilter) (count int64, err error)
	Count() (count int64, err error)
	StatusCounts() (map[models.CandidateStatus]int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.CandidateExt, error) {
	rec := dbmodels.CandidateExt{}
	err := i.db.
		Select("candidates.*, u.name as referrer_name, u.email as referrer_email").
		Model(&dbmodels.Candidate{}).
		Joins("left join users as u on candidates.referred_by_id = u.id").
		Where("candidates.id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByEmail(email string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Where("email = ?", email).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Candidate{}).
		Error
}

func (i impl) List(filter candidateapimodels.CandidateFilter) (list []dbmodels.CandidateExt, err error) {
	list = []dbmodels.CandidateExt{}
	tx := i.db.
		Select("candidates.*, u.name as referrer_name, u.email as referrer_email").
		Model(&dbmodels.Candidate{}).
		Joins("left join users as u on candidates.referred_by_id = u.id")
	i.addFilter(tx, filter)
	tx.Order("candidates.created_at desc").
		Order("candidates.id desc")
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return list, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListAll(filter candidateapimodels.CandidateFilter) (list []dbmodels.CandidateExt, err error) {
	list = []dbmodels.CandidateExt{}
	tx := i.db.
		Select("candidates.*, u.name as referrer_name, u.email as referrer_email").
		Model(&dbmodels.Candidate{}).
		Joins("left join users as u on candidates.referred_by_id = u.id")
	i.addFilter(tx, filter)
	err = tx.Order("candidates.created_at desc").
		Order("candidates.id desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return list, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter candidateapimodels.CandidateFilter) (count int64, err error) {
	tx := i.db.
		Model(&dbmodels.Candidate{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) Count() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Candidate{}).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) StatusCounts() (map[models.CandidateStatus]int64, error) {
	type statusCount struct {
		Status models.CandidateStatus
		Count  int64
	}
	rows := []statusCount{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Select("candidates.status, count(*) as count").
		Group("candidates.status").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	result := map[models.CandidateStatus]int64{}
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result, nil
}

// likeEscaper экранирует спецсимволы LIKE, чтобы поиск трактовал их буквально
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func (i impl) addFilter(tx *gorm.DB, filter candidateapimodels.CandidateFilter) {
	if filter.Search != "" {
		searchValue := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		tx.Where("LOWER(candidates.name) like ? or LOWER(candidates.job_title) like ? or LOWER(candidates.email) like ?",
			searchValue, searchValue, searchValue)
	}
	if filter.Status != "" && filter.Status != "all" {
		tx.Where("candidates.status = ?", filter.Status)
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
