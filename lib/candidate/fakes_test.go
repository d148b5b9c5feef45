package candidate

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	filestorage "referral-tracker-backend/lib/file-storage"
	"referral-tracker-backend/models"
	candidateapimodels "referral-tracker-backend/models/api/candidate"
	dbmodels "referral-tracker-backend/models/db"
)

type fakeCandidateStore struct {
	recs      map[string]*dbmodels.Candidate
	referrers map[string]dbmodels.User
	seq       int
	now       time.Time
	failNext  error
}

func newFakeCandidateStore(referrers map[string]dbmodels.User) *fakeCandidateStore {
	return &fakeCandidateStore{
		recs:      map[string]*dbmodels.Candidate{},
		referrers: referrers,
		now:       time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// tick выдает монотонно растущее время, чтобы порядок создания был однозначным
func (f *fakeCandidateStore) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *fakeCandidateStore) Create(rec dbmodels.Candidate) (string, error) {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return "", err
	}
	for _, existing := range f.recs {
		if existing.Email == rec.Email {
			return "", gorm.ErrDuplicatedKey
		}
	}
	f.seq++
	rec.ID = fmt.Sprintf("id-%03d", f.seq)
	rec.CreatedAt = f.tick()
	rec.UpdatedAt = rec.CreatedAt
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeCandidateStore) ext(rec dbmodels.Candidate) dbmodels.CandidateExt {
	ext := dbmodels.CandidateExt{Candidate: rec}
	if referrer, ok := f.referrers[rec.ReferredByID]; ok {
		ext.ReferrerName = referrer.Name
		ext.ReferrerEmail = referrer.Email
	}
	return ext
}

func (f *fakeCandidateStore) GetByID(id string) (*dbmodels.CandidateExt, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	ext := f.ext(*rec)
	return &ext, nil
}

func (f *fakeCandidateStore) GetByEmail(email string) (*dbmodels.Candidate, error) {
	for _, rec := range f.recs {
		if rec.Email == email {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCandidateStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.recs[id]
	if !ok {
		return errors.New("запись не найдена")
	}
	if status, ok := updMap["status"]; ok {
		rec.Status = status.(models.CandidateStatus)
	}
	rec.UpdatedAt = f.tick()
	return nil
}

func (f *fakeCandidateStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func (f *fakeCandidateStore) matches(rec dbmodels.Candidate, filter candidateapimodels.CandidateFilter) bool {
	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(rec.Name), search) &&
			!strings.Contains(strings.ToLower(rec.JobTitle), search) &&
			!strings.Contains(strings.ToLower(rec.Email), search) {
			return false
		}
	}
	if filter.Status != "" && filter.Status != "all" {
		if string(rec.Status) != filter.Status {
			return false
		}
	}
	return true
}

func (f *fakeCandidateStore) filtered(filter candidateapimodels.CandidateFilter) []dbmodels.CandidateExt {
	list := []dbmodels.CandidateExt{}
	for _, rec := range f.recs {
		if f.matches(*rec, filter) {
			list = append(list, f.ext(*rec))
		}
	}
	sort.Slice(list, func(a, b int) bool {
		if !list[a].CreatedAt.Equal(list[b].CreatedAt) {
			return list[a].CreatedAt.After(list[b].CreatedAt)
		}
		return list[a].ID > list[b].ID
	})
	return list
}

func (f *fakeCandidateStore) List(filter candidateapimodels.CandidateFilter) ([]dbmodels.CandidateExt, error) {
	list := f.filtered(filter)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if offset >= len(list) {
		return []dbmodels.CandidateExt{}, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

func (f *fakeCandidateStore) ListAll(filter candidateapimodels.CandidateFilter) ([]dbmodels.CandidateExt, error) {
	return f.filtered(filter), nil
}

func (f *fakeCandidateStore) ListCount(filter candidateapimodels.CandidateFilter) (int64, error) {
	return int64(len(f.filtered(filter))), nil
}

func (f *fakeCandidateStore) Count() (int64, error) {
	return int64(len(f.recs)), nil
}

func (f *fakeCandidateStore) StatusCounts() (map[models.CandidateStatus]int64, error) {
	result := map[models.CandidateStatus]int64{}
	for _, rec := range f.recs {
		result[rec.Status]++
	}
	return result, nil
}

type fakeUserStore struct {
	users map[string]dbmodels.User
}

func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error) {
	f.users[rec.ID] = rec
	return rec.ID, nil
}

type fakeFileStorage struct {
	objects map[string][]byte
	deleted []string
	seq     int
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{objects: map[string][]byte{}}
}

func (f *fakeFileStorage) UploadResume(ctx context.Context, file []byte, contentType string) (string, error) {
	if contentType != filestorage.ResumeContentType {
		return "", filestorage.ErrInvalidContentType
	}
	if len(file) > filestorage.MaxResumeSize {
		return "", filestorage.ErrFileTooLarge
	}
	f.seq++
	key := fmt.Sprintf("resumes/r-%d.pdf", f.seq)
	f.objects[key] = file
	return key, nil
}

func (f *fakeFileStorage) GetFile(ctx context.Context, key string) ([]byte, error) {
	body, ok := f.objects[key]
	if !ok {
		return nil, errors.New("файл не найден")
	}
	return body, nil
}

func (f *fakeFileStorage) DeleteFile(ctx context.Context, key string) error {
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) SendEMail(to, subject, message string) error {
	f.sent = append(f.sent, to+": "+subject)
	return nil
}
