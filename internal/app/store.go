package app

import "blogapi/internal/model"

// Store contracts over the row store. The gorm repositories satisfy them;
// tests substitute in-memory fakes. A lookup that finds nothing returns
// (nil, nil); errors are reserved for store failures.

type UserStore interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	Delete(id uint) (int64, error)
	List(offset, limit int) ([]model.User, error)
	Count() (int64, error)
}

type PostStore interface {
	Create(post *model.Post) error
	GetByID(id uint) (*model.Post, error)
	Update(post *model.Post) error
	Delete(id uint) (int64, error)
	List(offset, limit int) ([]model.Post, error)
	Count() (int64, error)
}

// EventPublisher receives committed entity mutations. A nil publisher
// disables the event stream.
type EventPublisher interface {
	Publish(event model.EntityEvent) error
}
