package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "referral-tracker-backend/lib/utils/auth-utils"
)

// GetUserID возвращает ид аутентифицированного пользователя из claims токена
func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		if stringName, ok := name.(string); ok {
			return stringName
		}
	}
	return ""
}

func GetUserEmail(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if email, exist := claims["email"]; exist {
		if stringEmail, ok := email.(string); ok {
			return stringEmail
		}
	}
	return ""
}
