package candidate

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"referral-tracker-backend/db"
	candidatestore "referral-tracker-backend/lib/candidate/store"
	filestorage "referral-tracker-backend/lib/file-storage"
	"referral-tracker-backend/lib/smtp"
	usersstore "referral-tracker-backend/lib/users/store"
	"referral-tracker-backend/lib/utils/validators"
	"referral-tracker-backend/models"
	candidateapimodels "referral-tracker-backend/models/api/candidate"
	dbmodels "referral-tracker-backend/models/db"
)

// ResumeUpload - содержимое файла резюме, полученное из multipart-запроса
type ResumeUpload struct {
	Body        []byte
	ContentType string
}

// Referrer - данные аутентифицированного сотрудника из claims токена
type Referrer struct {
	ID    string
	Name  string
	Email string
}

type Provider interface {
	Create(ctx context.Context, referrer Referrer, data candidateapimodels.CandidateData, resume *ResumeUpload) (candidateapimodels.CandidateView, error)
	GetByID(id string) (candidateapimodels.CandidateView, error)
	List(filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	ListAll(filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, err error)
	UpdateStatus(ctx context.Context, id string, status models.CandidateStatus) (candidateapimodels.CandidateView, error)
	Delete(ctx context.Context, id string) error
	GetResume(ctx context.Context, id string) ([]byte, error)
	Stats() (candidateapimodels.StatsView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       candidatestore.NewInstance(db.DB),
		userStore:   usersstore.NewInstance(db.DB),
		fileStorage: filestorage.Instance,
		notifier:    smtp.Instance,
	}
}

type impl struct {
	store       candidatestore.Provider
	userStore   usersstore.Provider
	fileStorage filestorage.Provider
	notifier    smtp.Provider
}

func (i impl) Create(ctx context.Context, referrer Referrer, data candidateapimodels.CandidateData, resume *ResumeUpload) (candidateapimodels.CandidateView, error) {
	if err := data.Validate(); err != nil {
		return candidateapimodels.CandidateView{}, NewValidationError(err.Error())
	}
	email := strings.ToLower(strings.TrimSpace(data.Email))

	existing, err := i.store.GetByEmail(email)
	if err != nil {
		return candidateapimodels.CandidateView{}, errors.Wrap(err, "ошибка проверки дубликата кандидата")
	}
	if existing != nil {
		return candidateapimodels.CandidateView{}, ErrEmailAlreadyUsed
	}

	if err = i.ensureReferrer(referrer); err != nil {
		return candidateapimodels.CandidateView{}, err
	}

	resumeKey := ""
	if resume != nil {
		resumeKey, err = i.fileStorage.UploadResume(ctx, resume.Body, resume.ContentType)
		if err != nil {
			if errors.Is(err, filestorage.ErrInvalidContentType) || errors.Is(err, filestorage.ErrFileTooLarge) {
				return candidateapimodels.CandidateView{}, NewValidationError(err.Error())
			}
			return candidateapimodels.CandidateView{}, err
		}
	}

	rec := dbmodels.Candidate{
		Name:         validators.SanitizeInput(data.Name),
		Email:        email,
		Phone:        validators.SanitizeInput(data.Phone),
		JobTitle:     validators.SanitizeInput(data.JobTitle),
		Status:       models.CandidateStatusPending,
		ResumeKey:    resumeKey,
		ReferredByID: referrer.ID,
		Notes:        validators.SanitizeInput(data.Notes),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		// подчистка осиротевшего файла резюме
		if resumeKey != "" {
			if delErr := i.fileStorage.DeleteFile(ctx, resumeKey); delErr != nil {
				log.WithError(delErr).WithField("resume_key", resumeKey).Error("Ошибка удаления файла резюме после неудачного создания кандидата")
			}
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return candidateapimodels.CandidateView{}, ErrEmailAlreadyUsed
		}
		return candidateapimodels.CandidateView{}, errors.Wrap(err, "ошибка создания кандидата")
	}
	return i.GetByID(id)
}

// ensureReferrer заводит запись реферера по данным токена, если сотрудник обращается впервые
func (i impl) ensureReferrer(referrer Referrer) error {
	if referrer.ID == "" {
		return errors.New("referring user not found")
	}
	user, err := i.userStore.GetByID(referrer.ID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения реферера")
	}
	if user != nil {
		return nil
	}
	_, err = i.userStore.Create(dbmodels.User{
		BaseModel: dbmodels.BaseModel{ID: referrer.ID},
		Name:      referrer.Name,
		Email:     strings.ToLower(strings.TrimSpace(referrer.Email)),
	})
	if err != nil {
		return errors.Wrap(err, "ошибка создания реферера")
	}
	return nil
}

func (i impl) GetByID(id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, errors.Wrap(err, "ошибка получения кандидата")
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, ErrCandidateNotFound
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) List(filter candidateapimodels.CandidateFilter) ([]candidateapimodels.CandidateView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения количества кандидатов")
	}
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка кандидатов")
	}
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.CandidateConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ListAll(filter candidateapimodels.CandidateFilter) ([]candidateapimodels.CandidateView, error) {
	list, err := i.store.ListAll(filter)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка кандидатов")
	}
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.CandidateConvert(rec))
	}
	return result, nil
}

func (i impl) UpdateStatus(ctx context.Context, id string, status models.CandidateStatus) (candidateapimodels.CandidateView, error) {
	if !status.IsValid() {
		return candidateapimodels.CandidateView{}, NewValidationError(fmt.Sprintf("Invalid status. Must be one of: %v", models.CandidateStatuses()))
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, errors.Wrap(err, "ошибка получения кандидата")
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, ErrCandidateNotFound
	}
	updMap := map[string]interface{}{
		"status": status,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return candidateapimodels.CandidateView{}, errors.Wrap(err, "ошибка обновления статуса кандидата")
	}
	i.notifyStatusChange(*rec, status)
	return i.GetByID(id)
}

// notifyStatusChange уведомляет реферера о смене статуса его кандидата, сбой не прерывает операцию
func (i impl) notifyStatusChange(rec dbmodels.CandidateExt, status models.CandidateStatus) {
	if i.notifier == nil || rec.ReferrerEmail == "" || rec.Status == status {
		return
	}
	subject := "candidate status updated"
	message := fmt.Sprintf("Status of your candidate %s (%s) changed from %s to %s.",
		rec.Name, rec.JobTitle, rec.Status, status)
	if err := i.notifier.SendEMail(rec.ReferrerEmail, subject, message); err != nil {
		log.WithError(err).WithField("candidate_id", rec.ID).Error("Ошибка отправки уведомления о смене статуса")
	}
}

func (i impl) Delete(ctx context.Context, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения кандидата")
	}
	if rec == nil {
		return ErrCandidateNotFound
	}
	if rec.ResumeKey != "" {
		if delErr := i.fileStorage.DeleteFile(ctx, rec.ResumeKey); delErr != nil {
			log.WithError(delErr).WithField("resume_key", rec.ResumeKey).Error("Ошибка удаления файла резюме кандидата")
		}
	}
	if err = i.store.Delete(id); err != nil {
		return errors.Wrap(err, "ошибка удаления кандидата")
	}
	return nil
}

func (i impl) GetResume(ctx context.Context, id string) ([]byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения кандидата")
	}
	if rec == nil {
		return nil, ErrCandidateNotFound
	}
	if rec.ResumeKey == "" {
		return nil, ErrResumeNotFound
	}
	return i.fileStorage.GetFile(ctx, rec.ResumeKey)
}

func (i impl) Stats() (candidateapimodels.StatsView, error) {
	total, err := i.store.Count()
	if err != nil {
		return candidateapimodels.StatsView{}, errors.Wrap(err, "ошибка получения количества кандидатов")
	}
	byStatus, err := i.store.StatusCounts()
	if err != nil {
		return candidateapimodels.StatsView{}, errors.Wrap(err, "ошибка получения статистики по статусам")
	}
	return candidateapimodels.StatsView{
		Total:    total,
		ByStatus: byStatus,
	}, nil
}
