package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	candidateapimodels "referral-tracker-backend/models/api/candidate"
)

type Provider interface {
	ExportCandidateList(list []candidateapimodels.CandidateView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"Name", "Contacts", "Job title", "Status", "Referred by", "Referred on"}

func (i impl) ExportCandidateList(list []candidateapimodels.CandidateView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Candidates")
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []candidateapimodels.CandidateView, row int) (int, error) {
	for _, item := range list {
		row++
		// "Name"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		// "Contacts"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Job title"
		col++
		if err := writeColumn(f, sheet, col, row, item.JobTitle); err != nil {
			return row, err
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		// "Referred by"
		col++
		referrer := item.ReferredBy.Name
		if item.ReferredBy.Email != "" {
			referrer = fmt.Sprintf("%v\r%v", item.ReferredBy.Name, item.ReferredBy.Email)
		}
		if err := writeColumn(f, sheet, col, row, referrer); err != nil {
			return row, err
		}

		// "Referred on"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
