package services

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateUserInput is the body of POST /api/users.
type CreateUserInput struct {
	Username string `json:"username" validate:"required" message:"username is required!"`
	Email    string `json:"email" validate:"required" message:"email is required!"`
}

// AddBookInput is the body of POST /api/books.
type AddBookInput struct {
	Title           string  `json:"title" validate:"required" message:"book title is required!"`
	Author          string  `json:"author" validate:"required" message:"author is required!"`
	Genre           string  `json:"genre" validate:"required" message:"genre is required!"`
	PublicationYear FlexInt `json:"publicationYear" validate:"required" message:"publication year is required!"`
}

// SearchBooksInput holds the query of GET /api/books/search.
type SearchBooksInput struct {
	Title  string `form:"title" validate:"required" message:"book title is required!"`
	Author string `form:"author" validate:"required" message:"author is required!"`
}

// UpdateBookInput is the body of POST /api/books/:bookId.
type UpdateBookInput struct {
	Title string `json:"title" validate:"required"`
	Genre string `json:"genre" validate:"required"`
}

// AddToReadingListInput is the body of POST /api/reading-list.
// Missing, negative and non-numeric ids decode as zero and fail the
// reference check.
type AddToReadingListInput struct {
	UserID FlexInt `json:"userId"`
	BookID FlexInt `json:"bookId"`
	Status string  `json:"status"`
}

// ValidateUser lists missing user fields: username, then email.
func ValidateUser(in CreateUserInput) []string {
	return requiredFieldMessages(in)
}

// ValidateBook lists missing book fields in the order title, author, genre, publication year.
func ValidateBook(in AddBookInput) []string {
	return requiredFieldMessages(in)
}

// ValidateSearch lists missing search parameters: title, then author.
func ValidateSearch(in SearchBooksInput) []string {
	return requiredFieldMessages(in)
}

// requiredFieldMessages runs the struct validator and converts each failing
// field to the text of its `message` tag. The validator reports fields in
// declaration order, which fixes the order of the returned messages.
func requiredFieldMessages(in any) []string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	typ := reflect.TypeOf(in)
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field, ok := typ.FieldByName(fe.StructField())
		if !ok || field.Tag.Get("message") == "" {
			messages = append(messages, fe.Field()+" is required!")
			continue
		}
		messages = append(messages, field.Tag.Get("message"))
	}
	return messages
}
