package model

// User 讲师账号，仅作为课程归属的身份来源
// swagger:model
type User struct {
	UUIDBase
	Name     string `gorm:"size:100" json:"name"`
	Email    string `gorm:"uniqueIndex;size:191" json:"email"`
	Password string `gorm:"size:255" json:"-"`
}
