// Package assistant contains the conversational assistant use cases.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
)

// ContextTransactionLimit bounds the snapshot to the most recent transactions.
const ContextTransactionLimit = 50

// FallbackReply is returned as the model's message whenever the remote
// service fails, so the conversation thread is never corrupted by an error.
const FallbackReply = "Tuve un problema conectando con el servicio de IA. Por favor intenta de nuevo."

// NotConfiguredReply is returned when no API credential is configured.
const NotConfiguredReply = "El asistente no está configurado. Define GEMINI_API_KEY para activarlo."

// MessageOutput represents a chat message in use case outputs.
type MessageOutput struct {
	ID        uuid.UUID
	Role      entity.ChatRole
	Text      string
	Timestamp time.Time
}

// SendMessageInput represents the input for sending a chat message.
type SendMessageInput struct {
	Message string
}

// SendMessageOutput represents the output of sending a chat message.
type SendMessageOutput struct {
	Reply *MessageOutput
}

// SendMessageUseCase handles a conversation turn with the assistant: it
// snapshots the financial context, replays the prior history, sends the new
// message and appends both sides of the exchange to the thread.
type SendMessageUseCase struct {
	chatRepo         adapter.ChatHistoryRepository
	transactionRepo  adapter.TransactionRepository
	categoryRepo     adapter.CategoryRepository
	goalRepo         adapter.GoalRepository
	investmentRepo   adapter.InvestmentRepository
	assistantService adapter.AssistantService
}

// NewSendMessageUseCase creates a new SendMessageUseCase instance.
func NewSendMessageUseCase(
	chatRepo adapter.ChatHistoryRepository,
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	goalRepo adapter.GoalRepository,
	investmentRepo adapter.InvestmentRepository,
	assistantService adapter.AssistantService,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		chatRepo:         chatRepo,
		transactionRepo:  transactionRepo,
		categoryRepo:     categoryRepo,
		goalRepo:         goalRepo,
		investmentRepo:   investmentRepo,
		assistantService: assistantService,
	}
}

// Execute performs one conversation turn. The reply text falls back to a
// fixed message when the remote service fails; an error return only happens
// for invalid input or when the context snapshot cannot be built.
func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, domainerror.ErrEmptyChatMessage
	}

	history, err := uc.chatRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	turns := make([]adapter.ChatTurn, 0, len(history))
	for _, m := range history {
		turns = append(turns, adapter.ChatTurn{Role: string(m.Role), Text: m.Text})
	}

	snapshot, err := uc.buildContext(ctx)
	if err != nil {
		return nil, err
	}

	var reply string
	switch {
	case !uc.assistantService.IsAvailable():
		reply = NotConfiguredReply
	default:
		reply, err = uc.assistantService.Chat(ctx, turns, input.Message, snapshot)
		if err != nil {
			slog.Warn("Assistant call failed, using fallback reply", "error", err)
			reply = FallbackReply
		}
	}

	userMessage := entity.NewChatMessage(entity.ChatRoleUser, input.Message)
	if err := uc.chatRepo.Append(ctx, userMessage); err != nil {
		return nil, fmt.Errorf("failed to record user message: %w", err)
	}

	modelMessage := entity.NewChatMessage(entity.ChatRoleModel, reply)
	if err := uc.chatRepo.Append(ctx, modelMessage); err != nil {
		return nil, fmt.Errorf("failed to record assistant reply: %w", err)
	}

	return &SendMessageOutput{
		Reply: &MessageOutput{
			ID:        modelMessage.ID,
			Role:      modelMessage.Role,
			Text:      modelMessage.Text,
			Timestamp: modelMessage.Timestamp,
		},
	}, nil
}

// buildContext snapshots the financial data for the system instruction:
// the most recent transactions up to ContextTransactionLimit, plus every
// category, goal and investment.
func (uc *SendMessageUseCase) buildContext(ctx context.Context) (*adapter.AssistantContext, error) {
	transactions, err := uc.transactionRepo.FindRecent(ctx, ContextTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for context: %w", err)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for context: %w", err)
	}

	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals for context: %w", err)
	}

	investments, err := uc.investmentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments for context: %w", err)
	}

	categoryNames := make(map[uuid.UUID]string, len(categories))
	snapshot := &adapter.AssistantContext{}

	for _, cat := range categories {
		categoryNames[cat.ID] = cat.Name
		snapshot.Categories = append(snapshot.Categories, adapter.AssistantCategory{
			Name:   cat.Name,
			Type:   string(cat.Type),
			Budget: cat.Budget.String(),
		})
	}

	for _, t := range transactions {
		snapshot.Transactions = append(snapshot.Transactions, adapter.AssistantTransaction{
			Type:     string(t.Type),
			Amount:   t.Amount.String(),
			Category: categoryNames[t.CategoryID],
			Date:     t.Date.Format("2006-01-02"),
			Note:     t.Note,
			Merchant: t.Merchant,
		})
	}

	for _, g := range goals {
		snapshot.Goals = append(snapshot.Goals, adapter.AssistantGoal{
			Title:               g.Title,
			TargetAmount:        g.TargetAmount.String(),
			CurrentAmount:       g.CurrentAmount.String(),
			Deadline:            g.Deadline.Format("2006-01-02"),
			MonthlyContribution: g.MonthlyContribution.String(),
		})
	}

	for _, inv := range investments {
		snapshot.Investments = append(snapshot.Investments, adapter.AssistantInvestment{
			AssetName:          inv.AssetName,
			Amount:             inv.Amount.String(),
			Type:               string(inv.Type),
			Date:               inv.Date.Format("2006-01-02"),
			ExpectedReturnRate: inv.ExpectedReturnRate.String(),
		})
	}

	return snapshot, nil
}
