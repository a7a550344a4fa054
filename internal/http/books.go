package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/services"
)

type BooksController struct {
	catalog BookCatalog
}

func NewBooksController(catalog BookCatalog) *BooksController {
	return &BooksController{
		catalog: catalog,
	}
}

// AddBook handles POST /api/books.
func (controller *BooksController) AddBook(c *gin.Context) {
	var input services.AddBookInput
	if !bindJSON(c, &input) {
		return
	}

	book, err := controller.catalog.AddBook(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create books!")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Book added successfully", "book": book})
}

// SearchBooks handles GET /api/books/search?title=&author=.
func (controller *BooksController) SearchBooks(c *gin.Context) {
	var input services.SearchBooksInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ValidationResponse{Errors: []string{services.MsgInvalidBody}})
		return
	}

	books, err := controller.catalog.SearchBooks(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch books!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": books})
}

// UpdateBook handles POST /api/books/:bookId.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	var input services.UpdateBookInput
	if !bindJSON(c, &input) {
		return
	}
	bookID, _ := parseIDParam(c, "bookId")

	book, err := controller.catalog.UpdateBook(c.Request.Context(), bookID, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update book!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book details updated successfully!", "book": book})
}
