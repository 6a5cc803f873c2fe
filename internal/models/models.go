package models

import (
	"time"
)

type Role struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string       `gorm:"unique;not null"          json:"name"`
	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
}

type Permission struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null"          json:"name"`
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	Email        string `gorm:"unique;not null"          json:"email"`
	FullName     string `gorm:"not null"                 json:"full_name"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Status       string `gorm:"not null;default:active"  json:"status"`
	RoleID       uint   `gorm:"index;not null"           json:"-"`
	Role         Role   `json:"role"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null"          json:"name"`
}

type Language struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null"          json:"name"`
}

type Location struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"unique;not null"          json:"name"`
	Shelf string `json:"shelf"`
}

type Book struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string   `gorm:"not null;index"           json:"title"`
	Author     string   `gorm:"not null"                 json:"author"`
	ISBN       string   `gorm:"uniqueIndex"              json:"isbn"`
	Year       int      `json:"year"`
	CategoryID uint     `gorm:"index"                    json:"category_id"`
	Category   Category `json:"category,omitempty"`
	LanguageID uint     `gorm:"index"                    json:"language_id"`
	Language   Language `json:"language,omitempty"`
	LocationID uint     `gorm:"index"                    json:"location_id"`
	Location   Location `json:"location,omitempty"`
	Restricted bool     `gorm:"default:false"            json:"restricted"`
}

type BookCopy struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	BookID    uint   `gorm:"index;not null"           json:"book_id"`
	Book      Book   `json:"book,omitempty"`
	Barcode   string `gorm:"unique;not null"          json:"barcode"`
	Condition string `gorm:"default:good"             json:"condition"`
	Available bool   `gorm:"default:true"             json:"available"`
}

type Loan struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CopyID     uint       `gorm:"index;not null"           json:"copy_id"`
	Copy       BookCopy   `json:"copy,omitempty"`
	UserID     uint       `gorm:"index;not null"           json:"user_id"`
	User       User       `json:"user,omitempty"`
	IssuedAt   time.Time  `gorm:"not null"                 json:"issued_at"`
	DueAt      time.Time  `gorm:"not null"                 json:"due_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
}

// RestrictedBookGrant lets a named user see a restricted title in the public catalog.
type RestrictedBookGrant struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	BookID uint `gorm:"index;not null"           json:"book_id"`
	Book   Book `json:"book,omitempty"`
	UserID uint `gorm:"index;not null"           json:"user_id"`
	User   User `json:"user,omitempty"`
}

type ActivityLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index"                    json:"user_id"`
	Action    string    `gorm:"not null"                 json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
