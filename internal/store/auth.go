package store

import (
	"strconv"
	"strings"

	"github.com/onlypets/go-petstore-api/internal/model"
	"github.com/onlypets/go-petstore-api/internal/repository"
)

const defaultProfilePicture = "assets/default_profile.png"

// Signup registers a new account and signs it in. It fails when the email is
// already registered, raising an error toast. On success the auth modal closes
// and the profile-setup modal opens.
func (s *Store) Signup(email, password string) bool {
	s.mu.Lock()

	users := s.loadUsersLocked()
	for _, u := range users {
		if u.Email == email {
			s.addToastLocked("An account with this email already exists.", model.ToastError)
			s.mu.Unlock()
			s.notify()
			return false
		}
	}

	user := model.User{
		ID:             strconv.FormatInt(s.now().Unix(), 10),
		Email:          email,
		Username:       localPart(email),
		ProfilePicture: defaultProfilePicture,
		Password:       password,
	}
	s.currentUser = &user
	s.saveCurrentUserLocked(users)
	s.authModalOpen = false
	s.profileModalOpen = true

	s.mu.Unlock()
	s.notify()
	return true
}

// Login signs in a stored user. Email and password must both match exactly;
// passwords are stored and compared in plaintext by design.
func (s *Store) Login(email, password string) bool {
	s.mu.Lock()

	users := s.loadUsersLocked()
	for _, u := range users {
		if u.Email == email && u.Password == password {
			user := u.User
			s.currentUser = &user
			s.saveCurrentUserLocked(users)
			s.authModalOpen = false
			s.addToastLocked("Welcome back, "+user.Username+"!", model.ToastSuccess)
			s.mu.Unlock()
			s.notify()
			return true
		}
	}

	s.addToastLocked("Invalid email or password.", model.ToastError)
	s.mu.Unlock()
	s.notify()
	return false
}

// SocialLogin is a deterministic mock: it reuses any stored account whose
// email lives at the provider's domain, otherwise fabricates one. It always
// succeeds. Unknown providers fall back to the google persona.
func (s *Store) SocialLogin(provider string) {
	s.mu.Lock()

	users := s.loadUsersLocked()
	domain := "@" + provider + ".com"
	for _, u := range users {
		if strings.Contains(u.Email, domain) {
			user := u.User
			s.currentUser = &user
			s.addToastLocked("Welcome back, "+user.Username+"!", model.ToastSuccess)
			s.saveCurrentUserLocked(users)
			s.authModalOpen = false
			s.mu.Unlock()
			s.notify()
			return
		}
	}

	now := s.now()
	suffix := strconv.FormatInt(now.Unix()%10000, 10)
	username, email := "Jane Doe", "jane.doe."+suffix+"@google.com"
	if provider == "facebook" {
		username, email = "John Smith", "john.smith."+suffix+"@facebook.com"
	}

	user := model.User{
		ID:             strconv.FormatInt(now.Unix(), 10),
		Email:          email,
		Username:       username,
		ProfilePicture: defaultProfilePicture,
	}
	s.currentUser = &user
	s.profileModalOpen = true
	s.addToastLocked("Account created successfully! Please review your profile.", model.ToastSuccess)
	s.saveCurrentUserLocked(users)
	s.authModalOpen = false

	s.mu.Unlock()
	s.notify()
}

// Logout clears the session in memory and drops the current flag from every
// persisted record.
func (s *Store) Logout() {
	s.mu.Lock()

	s.currentUser = nil
	users := s.loadUsersLocked()
	for i := range users {
		users[i].IsCurrent = false
	}
	s.persistLocked(users)
	s.addToastLocked("You have been signed out.", model.ToastInfo)

	s.mu.Unlock()
	s.notify()
}

// UpdateUserProfile changes the given fields of the signed-in user. Empty
// arguments leave a field untouched; a userID that is not the current user is
// a no-op.
func (s *Store) UpdateUserProfile(userID, username, profilePicture string) {
	s.mu.Lock()

	if s.currentUser == nil || s.currentUser.ID != userID {
		s.mu.Unlock()
		return
	}
	if username != "" {
		s.currentUser.Username = username
	}
	if profilePicture != "" {
		s.currentUser.ProfilePicture = profilePicture
	}
	s.saveCurrentUserLocked(s.loadUsersLocked())
	s.addToastLocked("Profile updated successfully!", model.ToastSuccess)

	s.mu.Unlock()
	s.notify()
}

func (s *Store) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// loadUsersLocked reads the persisted user list, degrading unreadable or
// corrupt files to an empty list.
func (s *Store) loadUsersLocked() []repository.StoredUser {
	users, err := s.users.LoadAll()
	if err != nil {
		s.log.Error("load users", "error", err)
		return nil
	}
	return users
}

// saveCurrentUserLocked rewrites the user file so the in-memory current user
// is the single record flagged current, upserting it by id.
func (s *Store) saveCurrentUserLocked(users []repository.StoredUser) {
	if s.currentUser == nil {
		s.persistLocked(users)
		return
	}
	for i := range users {
		users[i].IsCurrent = false
	}
	record := repository.StoredUser{User: *s.currentUser, IsCurrent: true}
	updated := false
	for i := range users {
		if users[i].ID == s.currentUser.ID {
			users[i] = record
			updated = true
			break
		}
	}
	if !updated {
		users = append(users, record)
	}
	s.persistLocked(users)
}

func (s *Store) persistLocked(users []repository.StoredUser) {
	if err := s.users.SaveAll(users); err != nil {
		s.log.Error("save users", "error", err)
	}
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
