package app

import (
	"sort"
	"time"

	"blogapi/internal/model"
)

type fakeUserStore struct {
	users  map[uint]model.User
	nextID uint
	err    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]model.User)}
}

func (f *fakeUserStore) Create(user *model.User) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) GetByID(id uint) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Update(user *model.User) error {
	if f.err != nil {
		return f.err
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) Delete(id uint) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

func (f *fakeUserStore) List(offset, limit int) ([]model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := make([]model.User, 0, len(f.users))
	for _, user := range f.users {
		all = append(all, user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, offset, limit), nil
}

func (f *fakeUserStore) Count() (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.users)), nil
}

type fakePostStore struct {
	posts  map[uint]model.Post
	nextID uint
	err    error
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: make(map[uint]model.Post)}
}

func (f *fakePostStore) Create(post *model.Post) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	f.posts[post.ID] = *post
	return nil
}

func (f *fakePostStore) GetByID(id uint) (*model.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (f *fakePostStore) Update(post *model.Post) error {
	if f.err != nil {
		return f.err
	}
	f.posts[post.ID] = *post
	return nil
}

func (f *fakePostStore) Delete(id uint) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.posts[id]; !ok {
		return 0, nil
	}
	delete(f.posts, id)
	return 1, nil
}

func (f *fakePostStore) List(offset, limit int) ([]model.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := make([]model.Post, 0, len(f.posts))
	for _, post := range f.posts {
		all = append(all, post)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return page(all, offset, limit), nil
}

func (f *fakePostStore) Count() (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.posts)), nil
}

type fakePublisher struct {
	events []model.EntityEvent
	err    error
}

func (f *fakePublisher) Publish(event model.EntityEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
