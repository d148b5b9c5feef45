package initializers

import (
	"context"

	"referral-tracker-backend/config"
	"referral-tracker-backend/fiberlog"
	"referral-tracker-backend/lib/candidate"
	xlsexport "referral-tracker-backend/lib/export/xls"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	xlsexport.NewHandler()
	candidate.NewHandler()
}
