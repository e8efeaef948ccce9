// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanza-tracker/backend/internal/application/usecase/assistant"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
	"github.com/finanza-tracker/backend/internal/integration/entrypoint/dto"
)

// AssistantController handles chat assistant endpoints.
type AssistantController struct {
	sendUseCase *assistant.SendMessageUseCase
	listUseCase *assistant.ListMessagesUseCase
}

// NewAssistantController creates a new assistant controller instance.
func NewAssistantController(
	sendUseCase *assistant.SendMessageUseCase,
	listUseCase *assistant.ListMessagesUseCase,
) *AssistantController {
	return &AssistantController{
		sendUseCase: sendUseCase,
		listUseCase: listUseCase,
	}
}

// Send handles POST /assistant/messages requests. A remote model failure is
// not an error here: the reply carries a fixed fallback text instead.
func (c *AssistantController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := assistant.SendMessageInput{Message: req.Message}
	output, err := c.sendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrEmptyChatMessage) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Message cannot be empty",
				Code:  string(domainerror.ErrCodeEmptyChatMessage),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatMessageResponse(output.Reply))
}

// History handles GET /assistant/messages requests.
func (c *AssistantController) History(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve chat history",
		})
		return
	}

	response := dto.ToChatHistoryResponse(output.Messages)
	ctx.JSON(http.StatusOK, response)
}
