package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/model/converter"
	"tolleasy-service/src/internal/repository"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
	"tolleasy-service/src/pkg/utils"
)

// UserStore is the persistence surface the user usecase needs.
type UserStore interface {
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
}

type UserUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	UserRepository UserStore
}

func NewUserUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository UserStore,
) *UserUseCase {
	return &UserUseCase{
		Log:            logger,
		Validate:       validate,
		UserRepository: userRepository,
	}
}

func (c *UserUseCase) Register(ctx context.Context, request *model.RegisterUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Register", utils.ConvertString(err))
		return result
	}

	if existing, err := c.UserRepository.FindByEmail(ctx, request.Email); err == nil && existing != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "Email already registered"
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Register", request.Email)
		return result
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to hash password: %v", err)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Register", request.Email)
		return result
	}

	user := &entity.User{
		Email:        request.Email,
		PasswordHash: string(hash),
		Name:         request.Name,
		PhoneNumber:  sql.NullString{String: request.PhoneNumber, Valid: request.PhoneNumber != ""},
		Address:      sql.NullString{String: request.Address, Valid: request.Address != ""},
	}
	if err := c.UserRepository.Create(ctx, user); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to create user: %v", err)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Register", request.Email)
		return result
	}

	c.Log.Info("user-usecase", "user registered", "Register", request.Email)
	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) GetProfile(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "GetProfile", utils.ConvertString(err))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("user-usecase", err.Error(), "GetProfile", utils.ConvertString(request.ID))
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) UpdateProfile(ctx context.Context, request *model.UpdateUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "UpdateProfile", utils.ConvertString(err))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("user-usecase", err.Error(), "UpdateProfile", utils.ConvertString(request.ID))
		return result
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.PhoneNumber != nil {
		user.PhoneNumber = sql.NullString{String: *request.PhoneNumber, Valid: *request.PhoneNumber != ""}
	}
	if request.Address != nil {
		user.Address = sql.NullString{String: *request.Address, Valid: *request.Address != ""}
	}
	if request.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to hash password: %v", err)
			result.Error = errObj
			c.Log.Error("user-usecase", errObj.Message, "UpdateProfile", utils.ConvertString(request.ID))
			return result
		}
		user.PasswordHash = string(hash)
	}

	if err := c.UserRepository.Update(ctx, user); err != nil {
		errObj := httpError.NewInternalServerError()
		if errors.Is(err, repository.ErrNotFound) {
			errObj = httpError.NewNotFound()
		}
		errObj.Message = fmt.Sprintf("failed to update user: %v", err)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "UpdateProfile", utils.ConvertString(request.ID))
		return result
	}

	c.Log.Info("user-usecase", "profile updated", "UpdateProfile", utils.ConvertString(request.ID))
	result.Data = converter.UserToResponse(user)
	return result
}
