package model

// UserEntity represents the user table entity
type UserEntity struct {
	ID          uint64 `db:"id" json:"id"`
	Email       string `db:"email" json:"email"`
	Username    string `db:"username" json:"username"`
	Password    string `db:"password" json:"-"`
	FirstName   string `db:"first_name" json:"first_name"`
	LastName    string `db:"last_name" json:"last_name"`
	PhoneNumber string `db:"phone_number" json:"phone_number"`
}

// UserFilter for querying users. ExcludeID skips a given id, used to
// check whether another user already owns an email.
type UserFilter struct {
	ID        uint64
	Email     string
	ExcludeID uint64
}

// SignUpRequest for user registration
type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// SignInRequest for user login
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest overwrites every profile field of the given user.
// The password is stored exactly as supplied; callers are expected to
// send a pre-hashed value.
type UpdateUserRequest struct {
	UserID      uint64 `json:"user_id" validate:"required,gt=0"`
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type TokenResponse struct {
	AuthenticationToken string `json:"authentication_token"`
}

type AuthorizationResponse struct {
	Authorized bool `json:"authorized"`
}
