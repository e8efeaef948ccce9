// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finanza-tracker/backend/internal/application/usecase/document"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
	"github.com/finanza-tracker/backend/internal/integration/entrypoint/dto"
)

// MaxUploadBytes bounds the accepted document size.
const MaxUploadBytes = 10 << 20 // 10 MiB

// DocumentController handles document extraction endpoints.
type DocumentController struct {
	extractUseCase *document.ExtractTransactionUseCase
}

// NewDocumentController creates a new document controller instance.
func NewDocumentController(extractUseCase *document.ExtractTransactionUseCase) *DocumentController {
	return &DocumentController{
		extractUseCase: extractUseCase,
	}
}

// Extract handles POST /documents/extract requests. The document arrives as
// a multipart upload under the "file" field; "category_id" optionally carries
// the category currently selected on the entry form.
func (c *DocumentController) Extract(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing file upload",
		})
		return
	}
	if fileHeader.Size > MaxUploadBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: "File too large",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read file upload",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read file upload",
		})
		return
	}

	var selectedCategoryID uuid.UUID
	if raw := ctx.PostForm("category_id"); raw != "" {
		selectedCategoryID, err = uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
	}

	input := document.ExtractTransactionInput{
		Data:               data,
		MediaType:          fileHeader.Header.Get("Content-Type"),
		SelectedCategoryID: selectedCategoryID,
	}

	output, err := c.extractUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDocumentError(ctx, err)
		return
	}

	response := dto.ToExtractTransactionResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// handleDocumentError maps document errors to HTTP responses.
func (c *DocumentController) handleDocumentError(ctx *gin.Context, err error) {
	var docErr *domainerror.DocumentError
	if errors.As(err, &docErr) {
		ctx.JSON(c.statusCodeForDocumentError(docErr.Code), dto.ErrorResponse{
			Error: docErr.Message,
			Code:  string(docErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForDocumentError maps document error codes to HTTP status codes.
func (c *DocumentController) statusCodeForDocumentError(code domainerror.DocumentErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnsupportedDocumentFormat, domainerror.ErrCodeDocumentDecodeFailed:
		return http.StatusBadRequest
	case domainerror.ErrCodeDocumentUnreadable:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeAIServiceNotConfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
