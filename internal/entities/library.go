package entities

import "time"

// ReadingStatus is free-form; these are the values the seed data uses.
const (
	ReadingStatusWantToRead = "Want to Read"
	ReadingStatusReading    = "Reading"
	ReadingStatusCompleted  = "Completed"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:100" json:"username"`
	// Indexed but not unique: uniqueness is checked by the library service.
	Email     string    `gorm:"index;size:255" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"index;size:512" json:"title"`
	Author          string    `gorm:"index;size:256" json:"author"`
	Genre           string    `gorm:"size:100" json:"genre"`
	PublicationYear int       `json:"publicationYear"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ReadingList is a single entry of a user's reading list. UserID and BookID
// are plain columns; references are checked when the entry is created.
type ReadingList struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"userId"`
	BookID    uint      `gorm:"index" json:"bookId"`
	Status    string    `gorm:"size:50" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (Book) TableName() string {
	return "books"
}

func (ReadingList) TableName() string {
	return "reading_lists"
}
