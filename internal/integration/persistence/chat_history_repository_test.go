package persistence

import (
	"context"
	"testing"

	"github.com/finanza-tracker/backend/internal/domain/entity"
	"github.com/finanza-tracker/backend/internal/testutil"
)

func TestChatHistoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps messages in arrival order", func(t *testing.T) {
		repo := NewChatHistoryRepository()

		testutil.AssertNoError(t, repo.Append(ctx, entity.NewChatMessage(entity.ChatRoleUser, "hola")))
		testutil.AssertNoError(t, repo.Append(ctx, entity.NewChatMessage(entity.ChatRoleModel, "¡Hola!")))

		all, err := repo.All(ctx)
		testutil.AssertNoError(t, err)
		if len(all) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(all))
		}
		if all[0].Text != "hola" || all[1].Text != "¡Hola!" {
			t.Errorf("expected arrival order, got %q then %q", all[0].Text, all[1].Text)
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		repo := NewChatHistoryRepository()

		testutil.AssertNoError(t, repo.Append(ctx, entity.NewChatMessage(entity.ChatRoleUser, "hola")))

		first, err := repo.All(ctx)
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, repo.Append(ctx, entity.NewChatMessage(entity.ChatRoleModel, "respuesta")))

		if len(first) != 1 {
			t.Errorf("expected earlier snapshot unchanged, got %d messages", len(first))
		}
	})
}
