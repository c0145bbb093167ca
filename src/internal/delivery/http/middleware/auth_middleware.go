package middleware

import (
	"fmt"
	"strings"

	httpError "payout-service/src/pkg/http-error"
	"payout-service/src/pkg/token"
	"payout-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const authLocalsKey = "auth"

// VerifyBearer validates the bearer token and stores the claim in locals.
func VerifyBearer(config *viper.Viper) fiber.Handler {
	secret := []byte(config.GetString("jwt.secret"))

	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		auth := &token.Claim{}
		if claims, ok := parsed.Claims.(jwt.MapClaims); ok {
			auth.Iss, _ = claims["iss"].(string)
			auth.Aud, _ = claims["aud"].(string)
			if metadata, ok := claims["metadata"].(map[string]interface{}); ok {
				auth.Metadata.UserID, _ = metadata["user_id"].(string)
				auth.Metadata.FullName, _ = metadata["full_name"].(string)
				auth.Metadata.Role, _ = metadata["role"].(string)
			}
		}

		ctx.Locals(authLocalsKey, auth)
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *token.Claim {
	auth, _ := ctx.Locals(authLocalsKey).(*token.Claim)
	return auth
}
