package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/repository"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/token"
	"tolleasy-service/src/pkg/utils"
)

type AuthUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	UserRepository *repository.UserRepository
	Config         *viper.Viper
}

func NewAuthUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository *repository.UserRepository,
	cfg *viper.Viper,
) *AuthUseCase {
	return &AuthUseCase{
		Log:            logger,
		Validate:       validate,
		UserRepository: userRepository,
		Config:         cfg,
	}
}

func (c *AuthUseCase) Login(ctx context.Context, request *model.LoginRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Login", utils.ConvertString(err))
		return result
	}

	user, err := c.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "incorrect email or password"
		result.Error = errObj
		c.Log.Error("auth-usecase", err.Error(), "Login", request.Email)
		return result
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "incorrect email or password"
		result.Error = errObj
		c.Log.Error("auth-usecase", "password mismatch", "Login", request.Email)
		return result
	}

	ttl := time.Duration(c.Config.GetInt("jwt.expire_minutes")) * time.Minute
	accessToken, err := token.Generate(c.Config.GetString("jwt.secret"), token.Metadata{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}, ttl)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to sign token: %v", err)
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Login", request.Email)
		return result
	}

	c.Log.Info("auth-usecase", "user logged in", "Login", request.Email)
	result.Data = model.TokenResponse{AccessToken: accessToken, TokenType: "bearer"}
	return result
}
