package dto

// Request payloads bound from form-encoded or multipart bodies. Field
// names in validation errors follow the form tags.

type RegisterRequest struct {
	Name            string `form:"name" json:"name" validate:"required"`
	Email           string `form:"email" json:"email" validate:"required,email"`
	Password        string `form:"password" json:"password" validate:"required,min=4,eqfield=ConfirmPassword"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" validate:"required"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `form:"email" json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `form:"token" json:"token" validate:"required"`
	Password        string `form:"password" json:"password" validate:"required,min=4,eqfield=ConfirmPassword"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name        string `form:"name" json:"name" validate:"required,min=4,max=30"`
	Email       string `form:"email" json:"email" validate:"required,email"`
	Designation string `form:"designation" json:"designation"`
	Mobile      string `form:"mobile" json:"mobile"`
}

// JobRequest is shared by create and update; both run the same rule
// set. Vacancy stays a string through binding so that non-integer
// input surfaces as a field error instead of a bind failure.
type JobRequest struct {
	Title           string `form:"title" json:"title" validate:"required,min=4,max=150"`
	Category        string `form:"category" json:"category" validate:"required"`
	JobType         string `form:"jobType" json:"jobType" validate:"required"`
	Vacancy         string `form:"vacancy" json:"vacancy" validate:"required,numeric"`
	Salary          string `form:"salary" json:"salary"`
	Location        string `form:"location" json:"location" validate:"required,max=100"`
	Description     string `form:"description" json:"description" validate:"required"`
	Benefits        string `form:"benefits" json:"benefits"`
	Responsibility  string `form:"responsibility" json:"responsibility"`
	Qualifications  string `form:"qualifications" json:"qualifications"`
	Experience      string `form:"experience" json:"experience" validate:"required"`
	Keywords        string `form:"keywords" json:"keywords"`
	CompanyName     string `form:"companyName" json:"companyName" validate:"required,min=3,max=100"`
	CompanyLocation string `form:"company_location" json:"company_location"`
	Website         string `form:"website" json:"website" validate:"omitempty,url"`
}
