package adapters

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"github.com/finanza-tracker/backend/internal/application/adapter"
)

func TestIsAvailable(t *testing.T) {
	if NewGeminiService("", "gemini-2.5-flash").IsAvailable() {
		t.Error("expected service without API key to be unavailable")
	}
	if !NewGeminiService("key", "gemini-2.5-flash").IsAvailable() {
		t.Error("expected service with API key to be available")
	}
}

func TestBuildExtractionPrompt(t *testing.T) {
	service := NewGeminiService("key", "gemini-2.5-flash")

	t.Run("embeds the known category names", func(t *testing.T) {
		prompt := service.buildExtractionPrompt([]string{"Alimentación", "Vivienda"})

		if !strings.Contains(prompt, "[Alimentación, Vivienda]") {
			t.Errorf("expected category list in prompt, got:\n%s", prompt)
		}
		if !strings.Contains(prompt, "TAREA 1: CLASIFICAR TIPO DE TRANSACCIÓN") {
			t.Error("expected classification task in prompt")
		}
		if !strings.Contains(prompt, "Devuelve SOLO JSON válido.") {
			t.Error("expected JSON-only directive in prompt")
		}
	})

	t.Run("falls back to the default categories", func(t *testing.T) {
		prompt := service.buildExtractionPrompt(nil)

		if !strings.Contains(prompt, fallbackCategoryNames) {
			t.Errorf("expected fallback category list in prompt, got:\n%s", prompt)
		}
	})
}

func TestParseExtractionResponse(t *testing.T) {
	service := NewGeminiService("key", "gemini-2.5-flash")

	response := func(text string) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text(text)}}},
			},
		}
	}

	payload := `{"merchant":"Supermercado Central","amount":150.75,"date":"2026-01-15","categoryName":"Alimentación","type":"expense","items":[{"description":"Pan","amount":50.25}]}`

	t.Run("parses a plain JSON payload", func(t *testing.T) {
		result, err := service.parseExtractionResponse(response(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Merchant != "Supermercado Central" {
			t.Errorf("unexpected merchant %q", result.Merchant)
		}
		if result.Amount.String() != "150.75" {
			t.Errorf("unexpected amount %s", result.Amount)
		}
		if result.Type != "expense" {
			t.Errorf("unexpected type %q", result.Type)
		}
		if len(result.Items) != 1 || result.Items[0].Description != "Pan" {
			t.Errorf("unexpected items %+v", result.Items)
		}
	})

	t.Run("strips markdown code fences", func(t *testing.T) {
		fenced := "```json\n" + payload + "\n```"

		result, err := service.parseExtractionResponse(response(fenced))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.CategoryName != "Alimentación" {
			t.Errorf("unexpected category %q", result.CategoryName)
		}
	})

	t.Run("rejects non-JSON content", func(t *testing.T) {
		if _, err := service.parseExtractionResponse(response("lo siento, no puedo")); err == nil {
			t.Error("expected an error for non-JSON content")
		}
	})

	t.Run("rejects an empty response", func(t *testing.T) {
		if _, err := service.parseExtractionResponse(&genai.GenerateContentResponse{}); err == nil {
			t.Error("expected an error for an empty response")
		}
	})
}

func TestBuildSystemInstruction(t *testing.T) {
	service := NewGeminiService("key", "gemini-2.5-flash")

	snapshot := &adapter.AssistantContext{
		Transactions: []adapter.AssistantTransaction{
			{Type: "expense", Amount: "45.50", Category: "Alimentación", Date: "2025-06-15"},
		},
		Categories: []adapter.AssistantCategory{
			{Name: "Alimentación", Type: "variable", Budget: "500"},
		},
	}

	instruction, err := service.buildSystemInstruction(snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(instruction, `"FinanzaBot"`) {
		t.Error("expected the assistant persona in the instruction")
	}
	if !strings.Contains(instruction, "Transacciones recientes (1)") {
		t.Error("expected the transaction count in the instruction")
	}
	if !strings.Contains(instruction, `"amount":"45.50"`) {
		t.Errorf("expected the transaction JSON embedded, got:\n%s", instruction)
	}
	if !strings.Contains(instruction, "Alimentación") {
		t.Error("expected category data embedded in the instruction")
	}
}

func TestDecodeBase64(t *testing.T) {
	raw := []byte("%PDF-1.4 body")

	t.Run("standard padding", func(t *testing.T) {
		decoded, err := decodeBase64(base64.StdEncoding.EncodeToString(raw))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(decoded) != string(raw) {
			t.Errorf("unexpected payload %q", decoded)
		}
	})

	t.Run("raw unpadded", func(t *testing.T) {
		decoded, err := decodeBase64(base64.RawStdEncoding.EncodeToString(raw))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(decoded) != string(raw) {
			t.Errorf("unexpected payload %q", decoded)
		}
	})
}
