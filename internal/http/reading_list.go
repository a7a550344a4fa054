package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/services"
)

type ReadingListController struct {
	lists ReadingListManager
}

func NewReadingListController(lists ReadingListManager) *ReadingListController {
	return &ReadingListController{
		lists: lists,
	}
}

// AddToReadingList handles POST /api/reading-list.
func (controller *ReadingListController) AddToReadingList(c *gin.Context) {
	var input services.AddToReadingListInput
	if !bindJSON(c, &input) {
		return
	}

	entry, err := controller.lists.AddToReadingList(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch ReadingList!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book added to reading list", "readingList": entry})
}

// GetReadingList handles GET /api/reading-list/:userId.
// Unknown and malformed user ids produce an empty list.
func (controller *ReadingListController) GetReadingList(c *gin.Context) {
	userID, _ := parseIDParam(c, "userId")

	entries, err := controller.lists.GetReadingList(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch user reading list!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"readingList": entries})
}

// RemoveFromReadingList handles POST /api/reading-list/:readingListId.
func (controller *ReadingListController) RemoveFromReadingList(c *gin.Context) {
	readingListID, present := parseIDParam(c, "readingListId")
	if !present {
		respondBadRequest(c, services.MsgReadingListIDRequired)
		return
	}

	if err := controller.lists.RemoveFromReadingList(c.Request.Context(), readingListID); err != nil {
		respondServiceError(c, err, "Failed to remove book from reading list!")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Book removed from reading list!"})
}
