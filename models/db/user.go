package dbmodels

type User struct {
	BaseModel
	Name  string `gorm:"type:varchar(100)"`
	Email string `gorm:"type:varchar(255);uniqueIndex"`
}
