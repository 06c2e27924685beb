package model

import (
	"gorm.io/gorm"
)

// User model
type User struct {
	ID int64 `json:"id" gorm:"omitempty; primaryKey;"`

	UserName string `json:"userName" gorm:"omitempty; not null; type:varchar(64); index;"`
	Email    string `json:"email" gorm:"omitempty; not null; type:varchar(64); unique;"`
	Password string `json:"password" gorm:"omitempty; not null; type:varchar(128); default:'';"`

	Age    int64  `json:"age" gorm:"omitempty; not null; default:0;"`
	Gender string `json:"gender" gorm:"omitempty; not null; type:varchar(16); default:'';"`
	Phone  string `json:"phone" gorm:"omitempty; not null; type:varchar(32); default:'';"`

	// Posts is the reverse side of Post.UserID. Never written through the
	// user row; loaded on demand for the profile view.
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:UserID"`
}

func CreateUser(db *gorm.DB, u *User) error {
	return db.Create(u).Error
}

func UserByID(db *gorm.DB, id int64) (*User, error) {
	var u User
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveUser overwrites every column of an existing user.
func SaveUser(db *gorm.DB, u *User) error {
	return db.Save(u).Error
}

func DeleteUser(db *gorm.DB, u *User) error {
	return db.Delete(u).Error
}

func AllUsers(db *gorm.DB) ([]User, error) {
	users := []User{}
	if err := db.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// EmailTaken reports whether any user already holds the given email.
func EmailTaken(db *gorm.DB, email string) (bool, error) {
	var count int64
	if err := db.Model(User{}).Where("`email` = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SearchUsers returns users whose name starts with prefix, case-insensitive
// per the column collation. An empty prefix matches every name. When maxAge
// is non-nil the age must be strictly below it; nil leaves the clause unset.
func SearchUsers(db *gorm.DB, prefix string, maxAge *int64) ([]User, error) {
	tx := db.Where("`user_name` LIKE ?", prefix+"%")
	if maxAge != nil {
		tx = tx.Where("`age` < ?", *maxAge)
	}

	users := []User{}
	if err := tx.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UsersByAgeRange returns users with age in [minAge, maxAge], both ends
// inclusive. A nil bound leaves that clause unset.
func UsersByAgeRange(db *gorm.DB, minAge, maxAge *int64) ([]User, error) {
	tx := db
	if minAge != nil {
		tx = tx.Where("`age` >= ?", *minAge)
	}
	if maxAge != nil {
		tx = tx.Where("`age` <= ?", *maxAge)
	}

	users := []User{}
	if err := tx.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UserWithPosts loads a user together with their posts via the reverse
// lookup on Post.UserID.
func UserWithPosts(db *gorm.DB, id int64) (*User, error) {
	var u User
	if err := db.Preload("Posts").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
