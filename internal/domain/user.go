package domain

type UserRole string

const (
	RoleStoreOwner UserRole = "storeOwner"
	RoleJobSeeker  UserRole = "jobSeeker"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleStoreOwner, RoleJobSeeker:
		return true
	default:
		return false
	}
}

// UserData is the session record identifying the logged-in user. It
// is the only entity that outlives a restart: it is serialized as-is
// into the session store on login and on profile update. Role is set
// once at role selection and never changes afterwards.
type UserData struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Phone string   `json:"phone"`
	Role  UserRole `json:"role"`
}

type SelectRoleInput struct {
	Role UserRole `json:"role" validate:"required,oneof=storeOwner jobSeeker"`
}

// LoginInput is the login form. Phone must be 10 digits starting with
// 7, 8 or 9. The password is checked for shape and then discarded;
// authentication is completed by the OTP step.
type LoginInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required,indianmobile"`
}

type VerifyOTPInput struct {
	LoginInput
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}

// UpdateProfileInput covers the editable profile fields. Role is
// deliberately absent.
type UpdateProfileInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,indianmobile"`
}
