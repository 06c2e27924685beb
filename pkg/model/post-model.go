package model

import (
	"time"

	"gorm.io/gorm"
)

// Post model
//
// UserID is checked against the users table when a post is created, not
// enforced with a foreign key constraint.
type Post struct {
	ID int64 `json:"id" gorm:"omitempty; primaryKey;"`

	Title   string `json:"title" gorm:"omitempty; not null; type:varchar(255); default:'';"`
	Content string `json:"content" gorm:"omitempty; not null; type:text;"`

	UserID int64     `json:"userID" gorm:"omitempty; not null; default:0; index;"`
	Date   time.Time `json:"date" gorm:"omitempty; not null;"`

	// User is the owner, expanded only for the withUsers view.
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// CreatePost persists a new post, defaulting Date to now when unset.
func CreatePost(db *gorm.DB, p *Post) error {
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	return db.Create(p).Error
}

func PostByID(db *gorm.DB, id int64) (*Post, error) {
	var p Post
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// SavePost overwrites every column of an existing post.
func SavePost(db *gorm.DB, p *Post) error {
	return db.Save(p).Error
}

func DeletePost(db *gorm.DB, p *Post) error {
	return db.Delete(p).Error
}

func AllPosts(db *gorm.DB) ([]Post, error) {
	posts := []Post{}
	if err := db.Order("id asc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// PostsWithUsers returns every post with its owner record expanded.
func PostsWithUsers(db *gorm.DB) ([]Post, error) {
	posts := []Post{}
	if err := db.Preload("User").Order("id asc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// PostsByDateDesc returns every post ordered by date, most recent first.
func PostsByDateDesc(db *gorm.DB) ([]Post, error) {
	posts := []Post{}
	if err := db.Order("date desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
