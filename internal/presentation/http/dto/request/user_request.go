package request

// CreateUserRequest represents the create staff member request payload
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	CardID   string `json:"card_id"`
}

// UpdateUserRequest represents the update staff member request payload.
// Absent fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	CardID   *string `json:"card_id"`
	Active   *bool   `json:"active"`
}

// AttendanceNoteRequest carries the optional note on check-in/check-out
type AttendanceNoteRequest struct {
	Note string `json:"note"`
}
