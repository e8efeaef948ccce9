// Package document contains document preprocessing and extraction use cases.
package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
)

// ExtractTransactionInput represents the input for document extraction.
type ExtractTransactionInput struct {
	// Data is the raw uploaded file content.
	Data []byte
	// MediaType is the declared MIME type of the upload.
	MediaType string
	// SelectedCategoryID is the category currently selected on the entry
	// form; it is returned unchanged when the extracted category name does
	// not match any known category.
	SelectedCategoryID uuid.UUID
}

// ExtractTransactionOutput is a draft transaction prefill. It is never
// persisted; the caller reviews it in the entry form before submitting.
type ExtractTransactionOutput struct {
	Merchant   string
	Amount     decimal.Decimal
	Date       string // ISO 8601 (YYYY-MM-DD); empty when illegible
	Type       entity.TransactionType
	CategoryID uuid.UUID
	Items      []entity.TransactionItem
}

// ExtractTransactionUseCase handles AI-assisted document extraction: it
// preprocesses the upload, sends it to the extraction service together with
// the known category names, and resolves the returned category name against
// the category collection.
type ExtractTransactionUseCase struct {
	categoryRepo      adapter.CategoryRepository
	extractionService adapter.DocumentExtractionService
}

// NewExtractTransactionUseCase creates a new ExtractTransactionUseCase instance.
func NewExtractTransactionUseCase(
	categoryRepo adapter.CategoryRepository,
	extractionService adapter.DocumentExtractionService,
) *ExtractTransactionUseCase {
	return &ExtractTransactionUseCase{
		categoryRepo:      categoryRepo,
		extractionService: extractionService,
	}
}

// Execute performs the document extraction.
func (uc *ExtractTransactionUseCase) Execute(ctx context.Context, input ExtractTransactionInput) (*ExtractTransactionOutput, error) {
	if !uc.extractionService.IsAvailable() {
		return nil, domainerror.NewDocumentError(
			domainerror.ErrCodeAIServiceNotConfigured,
			"document extraction requires a configured AI service",
			domainerror.ErrAIServiceNotConfigured,
		)
	}

	// Unsupported formats and undecodable files fail here, before any
	// network traffic.
	processed, err := Preprocess(input.Data, input.MediaType)
	if err != nil {
		return nil, err
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}

	result, err := uc.extractionService.ExtractTransaction(ctx, &adapter.DocumentExtractionRequest{
		Data:          processed.Data,
		MediaType:     processed.MediaType,
		CategoryNames: names,
	})
	if err != nil {
		slog.Warn("Document extraction failed", "mediaType", processed.MediaType, "error", err)
		return nil, domainerror.NewDocumentError(
			domainerror.ErrCodeDocumentUnreadable,
			"the document could not be read",
			err,
		)
	}

	transactionType := entity.TransactionTypeExpense
	if result.Type == string(entity.TransactionTypeIncome) {
		transactionType = entity.TransactionTypeIncome
	}

	output := &ExtractTransactionOutput{
		Merchant:   result.Merchant,
		Amount:     result.Amount,
		Date:       result.Date,
		Type:       transactionType,
		CategoryID: matchCategory(categories, result.CategoryName, input.SelectedCategoryID),
	}

	for _, item := range result.Items {
		output.Items = append(output.Items, entity.TransactionItem{
			Description: item.Description,
			Amount:      item.Amount,
		})
	}

	return output, nil
}
