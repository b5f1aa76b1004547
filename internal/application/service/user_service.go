package service

import (
	"context"
	"strings"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/ahmadfaris/kasirku-api/pkg/pagination"
	"github.com/ahmadfaris/kasirku-api/pkg/utils"
	"github.com/google/uuid"
)

var validRoles = map[string]bool{
	entity.RoleAdmin:   true,
	entity.RoleManager: true,
	entity.RoleCashier: true,
}

// UserService handles staff management
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	Username string
	Password string
	FullName string
	Role     string
	Phone    string
	Address  string
	CardID   string
}

// CreateUser registers a new staff member
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Username) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "username", Message: "Username is required"})
	}
	if len(input.Password) < 6 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	if strings.TrimSpace(input.FullName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "full_name", Message: "Full name is required"})
	}
	if !validRoles[input.Role] {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "role", Message: "Role must be admin, manager or cashier"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	cardID := strings.TrimSpace(input.CardID)
	if cardID == "" {
		cardID = utils.GenerateStaffCardID()
	}

	user := &entity.User{
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(input.FullName),
		Role:         input.Role,
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		CardID:       cardID,
		JoinDate:     time.Now(),
		Active:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a staff member by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers lists staff with search and pagination
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.User], error) {
	users, total, err := s.userRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(users, pag), nil
}

// UpdateUserInput represents the update user input. Nil fields are left
// unchanged.
type UpdateUserInput struct {
	ID       uuid.UUID
	Username *string
	Password *string
	FullName *string
	Role     *string
	Phone    *string
	Address  *string
	CardID   *string
	Active   *bool
}

// UpdateUser updates a staff member
func (s *UserService) UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.Username != nil && *input.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(ctx, *input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, apperror.NewConflictError("Username already taken")
		}
		user.Username = *input.Username
	}

	if input.Password != nil {
		if len(*input.Password) < 6 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "password", Message: "Password must be at least 6 characters"},
			})
		}
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if input.FullName != nil {
		user.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Role != nil {
		if !validRoles[*input.Role] {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "role", Message: "Role must be admin, manager or cashier"},
			})
		}
		user.Role = *input.Role
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		user.Address = strings.TrimSpace(*input.Address)
	}
	if input.CardID != nil {
		user.CardID = strings.TrimSpace(*input.CardID)
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// StaffIDCard is the payload a client renders onto a physical staff card
type StaffIDCard struct {
	UserID   uuid.UUID `json:"user_id"`
	CardID   string    `json:"card_id"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	Phone    string    `json:"phone"`
	JoinDate time.Time `json:"join_date"`
}

// IDCard returns the data needed to render a staff member's ID card
func (s *UserService) IDCard(ctx context.Context, id uuid.UUID) (*StaffIDCard, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	return &StaffIDCard{
		UserID:   user.ID,
		CardID:   user.CardID,
		FullName: user.FullName,
		Role:     user.Role,
		Phone:    user.Phone,
		JoinDate: user.JoinDate,
	}, nil
}

// DeleteUser removes a staff member. The last remaining admin cannot be
// deleted, so the store never locks itself out.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	if id == actorID {
		return apperror.NewBadRequestError("Cannot delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	return s.userRepo.Delete(ctx, id)
}
