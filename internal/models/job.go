package models

type Job struct {
	BaseModel
	// UserID is the owning user; immutable after creation.
	UserID string `gorm:"not null;index" json:"user_id"`

	Title      string `gorm:"not null" json:"title"`
	CategoryID string `gorm:"not null" json:"category_id"`
	JobTypeID  string `gorm:"not null" json:"job_type_id"`
	Vacancy    int    `gorm:"not null" json:"vacancy"`
	Salary     string `json:"salary"`
	Location   string `gorm:"not null" json:"location"`

	Description    string `gorm:"not null" json:"description"`
	Benefits       string `json:"benefits"`
	Responsibility string `json:"responsibility"`
	Qualifications string `json:"qualifications"`
	Experience     string `gorm:"not null" json:"experience"`
	Keywords       string `json:"keywords"`

	CompanyName     string `gorm:"not null" json:"company_name"`
	CompanyLocation string `json:"company_location"`
	CompanyWebsite  string `json:"company_website"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	JobType  *JobType  `gorm:"foreignKey:JobTypeID" json:"job_type,omitempty"`
}
