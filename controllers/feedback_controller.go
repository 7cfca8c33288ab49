package controllers

import (
	"net/http"

	"github.com/Bishesh15/smartpantry/services"

	"github.com/gin-gonic/gin"
)

// SubmitFeedback accepts feedback from logged-in users and anonymous
// visitors alike.
func SubmitFeedback(c *gin.Context) {
	var input services.FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var userID *uint
	if id := c.GetUint("userID"); id != 0 {
		userID = &id
	}

	fb, err := services.SubmitFeedback(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, fb)
}

func ListFeedback(c *gin.Context) {
	status := c.Query("status")

	feedback, err := services.ListFeedback(status, 100, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}

type FeedbackResponseInput struct {
	Response string `json:"response" binding:"required"`
}

func RespondToFeedback(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback id"})
		return
	}

	var input FeedbackResponseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := services.RespondToFeedback(id, input.Response)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fb)
}

func DeleteFeedback(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback id"})
		return
	}

	if err := services.DeleteFeedback(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "feedback deleted"})
}
