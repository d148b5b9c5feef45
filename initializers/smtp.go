package initializers

import (
	"referral-tracker-backend/config"
	"referral-tracker-backend/lib/smtp"
)

func InitSmtp() {
	smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.EmailFrom,
		*config.Conf.Smtp.TLSEnabled)
}
