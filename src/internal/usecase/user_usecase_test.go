package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/model"
	"tolleasy-service/src/internal/repository"
	httpError "tolleasy-service/src/pkg/http-error"
	"tolleasy-service/src/pkg/log"
)

type stubUserStore struct {
	byEmail map[string]*entity.User
	created []*entity.User
}

func (s *stubUserStore) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

func (s *stubUserStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserStore) Create(ctx context.Context, user *entity.User) error {
	user.ID = int64(len(s.created) + 1)
	s.created = append(s.created, user)
	return nil
}

func (s *stubUserStore) Update(ctx context.Context, user *entity.User) error {
	return nil
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := &stubUserStore{byEmail: map[string]*entity.User{
		"rider@example.com": {ID: 1, Email: "rider@example.com"},
	}}
	useCase := NewUserUseCase(log.Log{}, validator.New(), store)

	result := useCase.Register(context.Background(), &model.RegisterUserRequest{
		Email:    "rider@example.com",
		Password: "long-enough-secret",
		Name:     "Rider",
	})

	require.Error(t, result.Error)
	var commonErr *httpError.CommonError
	require.ErrorAs(t, result.Error, &commonErr)
	assert.Equal(t, http.StatusBadRequest, commonErr.Code)
	assert.Equal(t, "Email already registered", commonErr.Message)
	assert.Empty(t, store.created)
}

func TestRegisterNewEmail(t *testing.T) {
	store := &stubUserStore{byEmail: map[string]*entity.User{}}
	useCase := NewUserUseCase(log.Log{}, validator.New(), store)

	result := useCase.Register(context.Background(), &model.RegisterUserRequest{
		Email:    "new@example.com",
		Password: "long-enough-secret",
		Name:     "New Rider",
	})

	require.NoError(t, result.Error)
	require.Len(t, store.created, 1)
	assert.Equal(t, "new@example.com", store.created[0].Email)
	assert.NotEqual(t, "long-enough-secret", store.created[0].PasswordHash)
}
