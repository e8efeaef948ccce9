// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/finanza-tracker/backend/internal/application/adapter"
)

// fallbackCategoryNames is offered to the model when no categories exist yet.
const fallbackCategoryNames = "Alimentación, Transporte, Vivienda, Entretenimiento, Salud, Servicios, Otros"

// GeminiService implements the DocumentExtractionService and AssistantService
// interfaces using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// ExtractTransaction sends a receipt image or PDF to Gemini and returns the
// structured extraction result.
func (s *GeminiService) ExtractTransaction(ctx context.Context, request *adapter.DocumentExtractionRequest) (*adapter.DocumentExtractionResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = extractionSchema()

	document, err := decodeBase64(request.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document payload: %w", err)
	}

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: request.MediaType, Data: document},
		genai.Text(s.buildExtractionPrompt(request.CategoryNames)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseExtractionResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// buildExtractionPrompt creates the document analysis prompt for Gemini.
func (s *GeminiService) buildExtractionPrompt(categoryNames []string) string {
	names := fallbackCategoryNames
	if len(categoryNames) > 0 {
		names = strings.Join(categoryNames, ", ")
	}

	var sb strings.Builder
	sb.WriteString(`Actúa como un asistente contable experto. Analiza este documento financiero (imagen o PDF).

TAREA 1: CLASIFICAR TIPO DE TRANSACCIÓN (CRÍTICO)
- Determina si es un GASTO (Expense) o un INGRESO (Income).
- Pistas para INGRESO: Palabras como "Liquidación de Sueldo", "Nómina", "Honorarios", "Abono", "Transferencia Recibida", "Devolución", "Pago de Factura (emitida)".
- Pistas para GASTO: "Ticket", "Boleta Fiscal", "Factura de Compra", "Total a Pagar", "Consumo", "Venta", tickets de supermercado, restaurantes, tiendas.

TAREA 2: EXTRAER DATOS
- Comerciante/Pagador: Nombre de la tienda, empresa o persona.
- Monto: El total final del documento.
- Fecha: Formato YYYY-MM-DD. Si no hay año, asume el actual.
- Items: Extrae la lista detallada de productos o servicios comprados, con su precio individual si es legible. Si no hay items individuales claros, usa una descripción general.

TAREA 3: CATEGORIZAR
- Clasifica la transacción en EXACTAMENTE UNA de estas categorías: [`)
	sb.WriteString(names)
	sb.WriteString(`].
- Si es un Ingreso, busca una categoría relacionada con ingresos si existe (ej. "Salario", "Ventas"), si no, usa "Ingresos" u "Otros".
- Si es Gasto, elige la categoría más lógica.

Devuelve SOLO JSON válido.
`)
	return sb.String()
}

// extractionSchema constrains the model output to the extraction shape.
func extractionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"merchant":     {Type: genai.TypeString, Description: "Nombre del comercio o pagador"},
			"amount":       {Type: genai.TypeNumber, Description: "Monto total numérico"},
			"date":         {Type: genai.TypeString, Description: "Fecha ISO YYYY-MM-DD"},
			"categoryName": {Type: genai.TypeString, Description: "Categoría seleccionada de la lista"},
			"type":         {Type: genai.TypeString, Enum: []string{"income", "expense"}, Description: "Tipo determinado de la transacción"},
			"items": {
				Type:        genai.TypeArray,
				Description: "Lista detallada de items y sus precios",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"description": {Type: genai.TypeString},
						"amount":      {Type: genai.TypeNumber},
					},
					Required: []string{"description", "amount"},
				},
			},
		},
		Required: []string{"amount", "merchant", "type", "categoryName", "items"},
	}
}

// geminiExtraction represents the raw extraction response from Gemini.
type geminiExtraction struct {
	Merchant     string  `json:"merchant"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	CategoryName string  `json:"categoryName"`
	Type         string  `json:"type"`
	Items        []struct {
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
	} `json:"items"`
}

// parseExtractionResponse parses the Gemini response into the extraction result.
func (s *GeminiService) parseExtractionResponse(resp *genai.GenerateContentResponse) (*adapter.DocumentExtractionResult, error) {
	textContent, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var extraction geminiExtraction
	if err := json.Unmarshal([]byte(textContent), &extraction); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	result := &adapter.DocumentExtractionResult{
		Merchant:     extraction.Merchant,
		Amount:       decimal.NewFromFloat(extraction.Amount),
		Date:         extraction.Date,
		CategoryName: extraction.CategoryName,
		Type:         extraction.Type,
	}
	for _, item := range extraction.Items {
		result.Items = append(result.Items, adapter.ExtractedItem{
			Description: item.Description,
			Amount:      decimal.NewFromFloat(item.Amount),
		})
	}
	return result, nil
}

// Chat replays the conversation history and sends the new user message with
// the financial context embedded in the system instruction.
func (s *GeminiService) Chat(ctx context.Context, history []adapter.ChatTurn, message string, assistantContext *adapter.AssistantContext) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	instruction, err := s.buildSystemInstruction(assistantContext)
	if err != nil {
		return "", fmt.Errorf("failed to build system instruction: %w", err)
	}

	model := client.GenerativeModel(s.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(instruction)},
	}

	session := model.StartChat()
	session.History = make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		session.History = append(session.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	reply, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return reply, nil
}

// buildSystemInstruction embeds the financial snapshot as JSON inside the
// assistant persona instruction.
func (s *GeminiService) buildSystemInstruction(assistantContext *adapter.AssistantContext) (string, error) {
	transactions, err := json.Marshal(assistantContext.Transactions)
	if err != nil {
		return "", err
	}
	categories, err := json.Marshal(assistantContext.Categories)
	if err != nil {
		return "", err
	}
	goals, err := json.Marshal(assistantContext.Goals)
	if err != nil {
		return "", err
	}
	investments, err := json.Marshal(assistantContext.Investments)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("CONTEXTO FINANCIERO ACTUAL DEL USUARIO:\n")
	sb.WriteString(fmt.Sprintf("- Transacciones recientes (%d): %s\n", len(assistantContext.Transactions), transactions))
	sb.WriteString(fmt.Sprintf("- Categorías y Presupuestos: %s\n", categories))
	sb.WriteString(fmt.Sprintf("- Metas de Ahorro: %s\n", goals))
	sb.WriteString(fmt.Sprintf("- Inversiones: %s\n", investments))
	sb.WriteString(`
INSTRUCCIONES:
Eres "FinanzaBot", un asistente financiero experto, amable y motivador.
Responde a las preguntas del usuario basándote ESTRICTAMENTE en los datos proporcionados arriba.
Si te preguntan por gastos, calcula las sumas basándote en el JSON.
Si sugieres ahorrar, mira sus metas.
Sé conciso y directo. Usa formato Markdown para listas o negritas.
`)
	return sb.String(), nil
}

// decodeBase64 accepts both standard and raw (unpadded) base64 payloads.
func decodeBase64(data string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err == nil {
		return decoded, nil
	}
	return base64.RawStdEncoding.DecodeString(data)
}

// responseText returns the first text part of a Gemini response, stripped of
// markdown code fences.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	textContent = strings.TrimSpace(textContent)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	return strings.TrimSpace(textContent), nil
}
