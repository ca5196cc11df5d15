package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"

	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/token"
	"tolleasy-service/src/pkg/utils"
)

const authLocalsKey = "auth"

// VerifyBearer parses the Authorization header and stores the token metadata
// in the request locals for GetUser.
func VerifyBearer(v *viper.Viper) fiber.Handler {
	secret := v.GetString("jwt.secret")
	logger := log.GetLogger()

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing or malformed bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		claim, err := token.Parse(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Error("middleware", "token rejected", "VerifyBearer", err.Error())
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid or expired token"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(authLocalsKey, &claim.Metadata)
		return ctx.Next()
	}
}

// GetUser returns the authenticated token metadata set by VerifyBearer.
func GetUser(ctx *fiber.Ctx) *token.Metadata {
	meta, _ := ctx.Locals(authLocalsKey).(*token.Metadata)
	return meta
}
