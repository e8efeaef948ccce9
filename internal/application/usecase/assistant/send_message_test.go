package assistant

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
	"github.com/finanza-tracker/backend/internal/integration/persistence"
	"github.com/finanza-tracker/backend/internal/testutil"
)

// stubAssistantService records the last call so tests can inspect the
// history and context snapshot handed to the model.
type stubAssistantService struct {
	available bool
	failing   bool
	reply     string

	gotHistory []adapter.ChatTurn
	gotMessage string
	gotContext *adapter.AssistantContext
}

func (s *stubAssistantService) IsAvailable() bool {
	return s.available
}

func (s *stubAssistantService) Chat(_ context.Context, history []adapter.ChatTurn, message string, snapshot *adapter.AssistantContext) (string, error) {
	s.gotHistory = history
	s.gotMessage = message
	s.gotContext = snapshot
	if s.failing {
		return "", errors.New("simulated chat failure")
	}
	return s.reply, nil
}

func newSendMessageFixture(t *testing.T, service *stubAssistantService) (*SendMessageUseCase, adapter.ChatHistoryRepository, adapter.TransactionRepository) {
	t.Helper()

	db := testutil.OpenTestDB(t)
	chatRepo := persistence.NewChatHistoryRepository()
	transactionRepo := persistence.NewTransactionRepository(db)

	uc := NewSendMessageUseCase(
		chatRepo,
		transactionRepo,
		persistence.NewCategoryRepository(db),
		persistence.NewGoalRepository(db),
		persistence.NewInvestmentRepository(db),
		service,
	)
	return uc, chatRepo, transactionRepo
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank message", func(t *testing.T) {
		uc, _, _ := newSendMessageFixture(t, &stubAssistantService{available: true})

		_, err := uc.Execute(ctx, SendMessageInput{Message: "   "})
		if !errors.Is(err, domainerror.ErrEmptyChatMessage) {
			t.Fatalf("expected ErrEmptyChatMessage, got %v", err)
		}
	})

	t.Run("returns model reply and appends both sides", func(t *testing.T) {
		service := &stubAssistantService{available: true, reply: "Gastaste 1200 en Vivienda."}
		uc, chatRepo, _ := newSendMessageFixture(t, service)

		output, err := uc.Execute(ctx, SendMessageInput{Message: "¿Cuánto gasté?"})
		testutil.AssertNoError(t, err)

		if output.Reply.Text != "Gastaste 1200 en Vivienda." {
			t.Errorf("unexpected reply text: %q", output.Reply.Text)
		}
		if output.Reply.Role != entity.ChatRoleModel {
			t.Errorf("expected model role, got %q", output.Reply.Role)
		}

		thread, err := chatRepo.All(ctx)
		testutil.AssertNoError(t, err)
		if len(thread) != 2 {
			t.Fatalf("expected 2 messages in thread, got %d", len(thread))
		}
		if thread[0].Role != entity.ChatRoleUser || thread[0].Text != "¿Cuánto gasté?" {
			t.Errorf("expected user message first, got %+v", thread[0])
		}
		if thread[1].Role != entity.ChatRoleModel || thread[1].Text != output.Reply.Text {
			t.Errorf("expected model reply second, got %+v", thread[1])
		}
	})

	t.Run("replays prior history to the service", func(t *testing.T) {
		service := &stubAssistantService{available: true, reply: "ok"}
		uc, _, _ := newSendMessageFixture(t, service)

		_, err := uc.Execute(ctx, SendMessageInput{Message: "primera"})
		testutil.AssertNoError(t, err)
		_, err = uc.Execute(ctx, SendMessageInput{Message: "segunda"})
		testutil.AssertNoError(t, err)

		if len(service.gotHistory) != 2 {
			t.Fatalf("expected 2 prior turns on second call, got %d", len(service.gotHistory))
		}
		if service.gotHistory[0].Role != "user" || service.gotHistory[0].Text != "primera" {
			t.Errorf("unexpected first turn: %+v", service.gotHistory[0])
		}
		if service.gotHistory[1].Role != "model" {
			t.Errorf("expected model turn second, got %+v", service.gotHistory[1])
		}
		if service.gotMessage != "segunda" {
			t.Errorf("expected new message outside history, got %q", service.gotMessage)
		}
	})

	t.Run("not configured yields fixed reply without calling the service", func(t *testing.T) {
		service := &stubAssistantService{available: false, reply: "should not be used"}
		uc, chatRepo, _ := newSendMessageFixture(t, service)

		output, err := uc.Execute(ctx, SendMessageInput{Message: "hola"})
		testutil.AssertNoError(t, err)

		if output.Reply.Text != NotConfiguredReply {
			t.Errorf("expected not-configured reply, got %q", output.Reply.Text)
		}
		if service.gotMessage != "" {
			t.Error("expected the service not to be called when unavailable")
		}

		thread, err := chatRepo.All(ctx)
		testutil.AssertNoError(t, err)
		if len(thread) != 2 {
			t.Errorf("expected the exchange recorded anyway, got %d messages", len(thread))
		}
	})

	t.Run("service failure yields fallback reply", func(t *testing.T) {
		service := &stubAssistantService{available: true, failing: true}
		uc, chatRepo, _ := newSendMessageFixture(t, service)

		output, err := uc.Execute(ctx, SendMessageInput{Message: "hola"})
		testutil.AssertNoError(t, err)

		if output.Reply.Text != FallbackReply {
			t.Errorf("expected fallback reply, got %q", output.Reply.Text)
		}

		thread, err := chatRepo.All(ctx)
		testutil.AssertNoError(t, err)
		if len(thread) != 2 || thread[1].Text != FallbackReply {
			t.Errorf("expected fallback recorded as the model turn, got %+v", thread)
		}
	})

	t.Run("context snapshot is capped at the most recent transactions", func(t *testing.T) {
		service := &stubAssistantService{available: true, reply: "ok"}
		uc, _, transactionRepo := newSendMessageFixture(t, service)

		base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < ContextTransactionLimit+5; i++ {
			tx := entity.NewTransaction(
				entity.TransactionTypeExpense,
				decimal.NewFromInt(int64(i+1)),
				uuid.New(),
				base.AddDate(0, 0, i),
				fmt.Sprintf("gasto %d", i),
				"",
				entity.PaymentMethodCash,
				nil,
			)
			testutil.AssertNoError(t, transactionRepo.Create(ctx, tx))
		}

		_, err := uc.Execute(ctx, SendMessageInput{Message: "resumen"})
		testutil.AssertNoError(t, err)

		if service.gotContext == nil {
			t.Fatal("expected a context snapshot")
		}
		if len(service.gotContext.Transactions) != ContextTransactionLimit {
			t.Errorf("expected %d transactions in snapshot, got %d",
				ContextTransactionLimit, len(service.gotContext.Transactions))
		}
	})
}
