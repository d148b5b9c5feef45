package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"referral-tracker-backend/models"
	candidateapimodels "referral-tracker-backend/models/api/candidate"
)

func TestExportCandidateList(t *testing.T) {
	list := []candidateapimodels.CandidateView{
		{
			Name:     "Jane Doe",
			Email:    "jane@x.com",
			Phone:    "+15551234567",
			JobTitle: "Engineer",
			Status:   models.CandidateStatusPending,
			ReferredBy: candidateapimodels.ReferrerView{
				Name:  "Alice Smith",
				Email: "alice@corp.com",
			},
			CreatedAt: time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
		},
	}

	buf, err := impl{}.ExportCandidateList(list)
	require.Nil(t, err)
	require.NotNil(t, buf)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	sheet := "Candidates"
	header, err := f.GetCellValue(sheet, "A1")
	require.Nil(t, err)
	require.Equal(t, "Name", header)

	name, err := f.GetCellValue(sheet, "A2")
	require.Nil(t, err)
	require.Equal(t, "Jane Doe", name)

	jobTitle, err := f.GetCellValue(sheet, "C2")
	require.Nil(t, err)
	require.Equal(t, "Engineer", jobTitle)

	status, err := f.GetCellValue(sheet, "D2")
	require.Nil(t, err)
	require.Equal(t, "Pending", status)

	date, err := f.GetCellValue(sheet, "F2")
	require.Nil(t, err)
	require.Equal(t, "10.02.2026", date)
}

func TestExportEmptyList(t *testing.T) {
	buf, err := impl{}.ExportCandidateList(nil)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	rows, err := f.GetRows("Candidates")
	require.Nil(t, err)
	require.Len(t, rows, 1)
}
