package app

import (
	"github.com/gookit/slog"

	"blogapi/internal/dto"
	"blogapi/internal/model"
	"blogapi/internal/pagination"
)

type UserService struct {
	users  UserStore
	events EventPublisher
}

func NewUserService(users UserStore, events EventPublisher) *UserService {
	return &UserService{users: users, events: events}
}

// List returns one page of users ordered by id ascending, plus the total
// row count.
func (s *UserService) List(query pagination.Query) ([]model.User, int64, error) {
	total, err := s.users.Count()
	if err != nil {
		return nil, 0, err
	}

	users, err := s.users.List(query.Offset(), query.Limit())
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserService) Get(id uint) (*model.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Create inserts a new user after checking the email is not taken. The
// check and the insert are not atomic; the unique index on email backstops
// the race.
func (s *UserService) Create(input dto.CreateUserDto) (*model.User, error) {
	existing, err := s.users.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		slog.Warnf("create user rejected, email taken: %s", input.Email)
		return nil, &AlreadyExistsError{Detail: "Email already exists"}
	}

	user := &model.User{
		Username: input.Username,
		Email:    input.Email,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	slog.Infof("user created id=%d username=%s", user.ID, user.Username)
	publish(s.events, model.EntityUser, model.ActionCreated, user.ID)
	return user, nil
}

// Update applies the fields present in the DTO. Email uniqueness is
// re-checked only when the new email differs from the stored one.
func (s *UserService) Update(id uint, input dto.UpdateUserDto) (*model.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if input.Email != nil && *input.Email != user.Email {
		existing, err := s.users.GetByEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &AlreadyExistsError{Detail: "Email already exists"}
		}
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	slog.Infof("user updated id=%d", user.ID)
	publish(s.events, model.EntityUser, model.ActionUpdated, user.ID)
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	rows, err := s.users.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	slog.Infof("user deleted id=%d", id)
	publish(s.events, model.EntityUser, model.ActionDeleted, id)
	return nil
}
