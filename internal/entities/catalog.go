package entities

import (
	"fmt"
	"time"
)

type Author struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	Books       []Book     `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Author) TableName() string {
	return "authors"
}

func (a Author) String() string {
	return fmt.Sprintf("Author: %s", a.Name)
}

type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ISBN            string    `gorm:"uniqueIndex;size:13;not null" json:"isbn"`
	Title           string    `gorm:"index;size:200;not null" json:"title"`
	PublicationYear int       `json:"publication_year,omitempty"` // zero means unknown
	AuthorID        uint      `gorm:"index;not null" json:"author_id"`
	Author          Author    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

func (b Book) String() string {
	return fmt.Sprintf("Book: %s (ISBN: %s)", b.Title, b.ISBN)
}
