package services

import (
	"context"
	"fmt"
	"time"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/user"
	"github.com/deepsoc/deepsoc/pkg/auth"
	"github.com/deepsoc/deepsoc/pkg/config"
)

// UserService manages API accounts. Passwords enter as plain text and
// are hashed here; nothing above this layer ever sees a hash.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// CreateUserInput contains fields for creating a user.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput contains the mutable account fields. Nil pointers
// leave the current value untouched.
type UpdateUserInput struct {
	Email    *string
	Role     *string
	IsActive *bool
}

// Create adds a new account with a freshly hashed password.
func (s *UserService) Create(httpCtx context.Context, input CreateUserInput) (*ent.User, error) {
	if input.Username == "" {
		return nil, NewValidationError("username", "required")
	}
	if input.Email == "" {
		return nil, NewValidationError("email", "required")
	}
	if len(input.Password) < 6 {
		return nil, NewValidationError("password", "must be at least 6 characters")
	}
	role := user.RoleUser
	if input.Role != "" {
		role = user.Role(input.Role)
		if err := user.RoleValidator(role); err != nil {
			return nil, NewValidationError("role", fmt.Sprintf("unknown role '%s'", input.Role))
		}
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	created, err := s.client.User.Create().
		SetUsername(input.Username).
		SetEmail(input.Email).
		SetPasswordHash(hash).
		SetRole(role).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, fmt.Errorf("user %s: %w", input.Username, ErrAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", input.Username, err)
	}
	return created, nil
}

// Authenticate checks a username/password pair and stamps the login
// time on success. Unknown usernames and wrong passwords both come
// back as ErrInvalidCredentials.
func (s *UserService) Authenticate(httpCtx context.Context, username, password string) (*ent.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	account, err := s.client.User.Query().
		Where(user.UsernameEQ(username)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", username, err)
	}
	if !account.IsActive {
		return nil, ErrInvalidCredentials
	}

	ok, err := auth.VerifyPassword(password, account.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password for %s: %w", username, err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	updated, err := account.Update().
		SetLastLoginAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record login for %s: %w", username, err)
	}
	return updated, nil
}

// Get retrieves a user by database id.
func (s *UserService) Get(ctx context.Context, id int) (*ent.User, error) {
	account, err := s.client.User.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return account, nil
}

// GetByUsername retrieves a user by username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*ent.User, error) {
	account, err := s.client.User.Query().
		Where(user.UsernameEQ(username)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return account, nil
}

// List returns all accounts ordered by creation time.
func (s *UserService) List(ctx context.Context) ([]*ent.User, error) {
	users, err := s.client.User.Query().
		Order(ent.Asc(user.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Update applies the provided account changes.
func (s *UserService) Update(httpCtx context.Context, id int, input UpdateUserInput) (*ent.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	update := s.client.User.UpdateOneID(id)
	if input.Email != nil {
		if *input.Email == "" {
			return nil, NewValidationError("email", "must not be empty")
		}
		update = update.SetEmail(*input.Email)
	}
	if input.Role != nil {
		role := user.Role(*input.Role)
		if err := user.RoleValidator(role); err != nil {
			return nil, NewValidationError("role", fmt.Sprintf("unknown role '%s'", *input.Role))
		}
		update = update.SetRole(role)
	}
	if input.IsActive != nil {
		update = update.SetIsActive(*input.IsActive)
	}

	updated, err := update.Save(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if ent.IsConstraintError(err) {
		return nil, fmt.Errorf("user %d: %w", id, ErrAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return updated, nil
}

// ChangePassword swaps the stored hash after verifying the current
// password.
func (s *UserService) ChangePassword(httpCtx context.Context, id int, current, next string) error {
	if len(next) < 6 {
		return NewValidationError("new_password", "must be at least 6 characters")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	account, err := s.client.User.Get(ctx, id)
	if ent.IsNotFound(err) {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to get user %d: %w", id, err)
	}

	ok, err := auth.VerifyPassword(current, account.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if _, err := account.Update().SetPasswordHash(hash).Save(ctx); err != nil {
		return fmt.Errorf("failed to update password for user %d: %w", id, err)
	}
	return nil
}

// Delete removes an account.
func (s *UserService) Delete(httpCtx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := s.client.User.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

// EnsureAdmin creates the bootstrap admin account when it does not
// exist yet. Returns true when an account was created.
func (s *UserService) EnsureAdmin(httpCtx context.Context, cfg config.AuthConfig) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	exists, err := s.client.User.Query().
		Where(user.UsernameEQ(cfg.AdminUsername)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check for admin account: %w", err)
	}
	if exists {
		return false, nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}
	_, err = s.client.User.Create().
		SetUsername(cfg.AdminUsername).
		SetEmail(cfg.AdminEmail).
		SetPasswordHash(hash).
		SetRole(user.RoleAdmin).
		Save(ctx)
	if ent.IsConstraintError(err) {
		// Lost a race with a parallel init; the account is there.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create admin account: %w", err)
	}
	return true, nil
}
