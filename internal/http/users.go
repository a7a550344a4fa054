package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/services"
)

type UsersController struct {
	users UserCreator
}

func NewUsersController(users UserCreator) *UsersController {
	return &UsersController{
		users: users,
	}
}

// CreateUser handles POST /api/users.
func (controller *UsersController) CreateUser(c *gin.Context) {
	var input services.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := controller.users.CreateUser(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create user!")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
}
