package models

type JobApplication struct {
	BaseModel
	// UserID is the applying user; applications are readable and
	// deletable only by that user.
	UserID string `gorm:"not null;index" json:"user_id"`
	JobID  string `gorm:"not null;index" json:"job_id"`

	// Job is nil when the referenced job has been deleted; read paths
	// must tolerate the orphan and null-fill rather than fail.
	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
