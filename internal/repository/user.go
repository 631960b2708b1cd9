package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/onlypets/go-petstore-api/internal/model"
)

// StoredUser is the on-disk shape of a user record. At most one record in the
// file may have IsCurrent set.
type StoredUser struct {
	model.User
	IsCurrent bool `json:"is_current"`
}

// UserRepository persists the full registered-user list as one flat file.
// Every write rewrites the whole file; there is no incremental update and no
// locking, which is fine for a single-process, single-session application.
type UserRepository interface {
	LoadAll() ([]StoredUser, error)
	SaveAll(users []StoredUser) error
}

type fileUserRepo struct{ path string }

func NewUserRepository(path string) UserRepository {
	return &fileUserRepo{path: path}
}

// LoadAll returns the stored user list. A missing file means no registered
// users, not an error.
func (r *fileUserRepo) LoadAll() ([]StoredUser, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read users file: %w", err)
	}

	var users []StoredUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode users file: %w", err)
	}
	return users, nil
}

func (r *fileUserRepo) SaveAll(users []StoredUser) error {
	if users == nil {
		users = []StoredUser{}
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}

// FindCurrent scans a loaded user list for the record flagged as the active
// session, if any.
func FindCurrent(users []StoredUser) *model.User {
	for i := range users {
		if users[i].IsCurrent {
			u := users[i].User
			return &u
		}
	}
	return nil
}
