// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finanza-tracker/backend/internal/application/usecase/assistant"
	"github.com/finanza-tracker/backend/internal/application/usecase/category"
	"github.com/finanza-tracker/backend/internal/application/usecase/dashboard"
	"github.com/finanza-tracker/backend/internal/application/usecase/document"
	"github.com/finanza-tracker/backend/internal/application/usecase/goal"
	"github.com/finanza-tracker/backend/internal/application/usecase/investment"
	"github.com/finanza-tracker/backend/internal/application/usecase/settings"
	"github.com/finanza-tracker/backend/internal/application/usecase/transaction"
	"github.com/finanza-tracker/backend/internal/infra/server/router"
	"github.com/finanza-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/finanza-tracker/backend/internal/integration/persistence"
	"github.com/finanza-tracker/backend/internal/integration/persistence/model"
	"github.com/finanza-tracker/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Values captured from earlier responses, referenced as {name} in later
	// endpoints and bodies.
	stored map[string]string

	// Dependencies
	db *gorm.DB
	ai *mock.AIService
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			stored:         make(map[string]string),
			ai:             mock.NewAIService(),
		}

		if err := tc.buildApp(); err != nil {
			return ctx, err
		}
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerAISteps(ctx)
}

// buildApp wires the full application against a fresh in-memory database,
// with the stub AI service in place of the Gemini adapter.
func (tc *TestContext) buildApp() error {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open test database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.TransactionItemModel{},
		&model.GoalModel{},
		&model.InvestmentModel{},
		&model.SettingModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate test database: %w", err)
	}
	tc.db = db

	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	investmentRepo := persistence.NewInvestmentRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	chatRepo := persistence.NewChatHistoryRepository()

	if err := category.NewSeedCategoriesUseCase(categoryRepo).Execute(context.Background()); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	healthController := controller.NewHealthController(func() bool { return true })
	transactionController := controller.NewTransactionController(
		transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo),
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewDeleteTransactionUseCase(transactionRepo),
	)
	categoryController := controller.NewCategoryController(category.NewListCategoriesUseCase(categoryRepo))
	goalController := controller.NewGoalController(
		goal.NewSaveGoalUseCase(goalRepo),
		goal.NewListGoalsUseCase(goalRepo),
		goal.NewDeleteGoalUseCase(goalRepo),
	)
	investmentController := controller.NewInvestmentController(
		investment.NewSaveInvestmentUseCase(investmentRepo),
		investment.NewListInvestmentsUseCase(investmentRepo),
		investment.NewDeleteInvestmentUseCase(investmentRepo),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetSummaryUseCase(transactionRepo, categoryRepo),
	)
	documentController := controller.NewDocumentController(
		document.NewExtractTransactionUseCase(categoryRepo, tc.ai),
	)
	assistantController := controller.NewAssistantController(
		assistant.NewSendMessageUseCase(chatRepo, transactionRepo, categoryRepo, goalRepo, investmentRepo, tc.ai),
		assistant.NewListMessagesUseCase(chatRepo),
	)
	settingsController := controller.NewSettingsController(
		settings.NewGetSettingsUseCase(settingsRepo),
		settings.NewUpdateCurrencyUseCase(settingsRepo),
	)

	r := router.NewRouter(
		healthController,
		transactionController,
		categoryController,
		goalController,
		investmentController,
		dashboardController,
		documentController,
		assistantController,
		settingsController,
	)
	tc.engine = r.Setup("test")
	return nil
}

// expand replaces {name} placeholders with values stored from earlier responses.
func (tc *TestContext) expand(s string) string {
	for name, value := range tc.stored {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

func (tc *TestContext) doRequest(method, endpoint string, body io.Reader) error {
	url := tc.server.URL + tc.expand(endpoint)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// doMultipartRequest uploads a single file under the "file" field, with the
// declared content type on the file part itself.
func (tc *TestContext) doMultipartRequest(endpoint, filename, mediaType string, content []byte) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", mediaType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("failed to write multipart content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, tc.server.URL+tc.expand(endpoint), &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// documentFixture returns upload bytes matching the declared content type:
// a minimal PDF body for PDFs, undecodable bytes for everything else.
func documentFixture(mediaType string) []byte {
	if mediaType == "application/pdf" {
		return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj")
	}
	return []byte("not a decodable document")
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I upload a document "([^"]*)" with content type "([^"]*)" to "([^"]*)"$`, iUploadADocumentTo)
	ctx.Step(`^I upload an oversized document to "([^"]*)"$`, iUploadAnOversizedDocumentTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, theResponseShouldNotContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, iStoreTheResponseFieldAs)
}

// registerAISteps registers steps that reconfigure the stub AI service.
func registerAISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the AI extraction service is configured$`, theAIExtractionServiceIsConfigured)
	ctx.Step(`^the AI service is not configured$`, theAIServiceIsNotConfigured)
	ctx.Step(`^the AI assistant replies "([^"]*)"$`, theAIAssistantReplies)
	ctx.Step(`^the AI service is failing$`, theAIServiceIsFailing)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	payload := bytes.NewBufferString(tc.expand(body.Content))
	if err := tc.doRequest(method, endpoint, payload); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iUploadADocumentTo(ctx context.Context, filename, mediaType, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return ctx, tc.doMultipartRequest(endpoint, filename, mediaType, documentFixture(mediaType))
}

func iUploadAnOversizedDocumentTo(ctx context.Context, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	content := bytes.Repeat([]byte("a"), controller.MaxUploadBytes+1)
	return ctx, tc.doMultipartRequest(endpoint, "resumen.pdf", "application/pdf", content)
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	expected = tc.expand(expected)
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldNotContain(ctx context.Context, unexpected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	unexpected = tc.expand(unexpected)
	if strings.Contains(string(tc.responseBody), unexpected) {
		return fmt.Errorf("response should not contain '%s'. Body: %s", unexpected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	expected = tc.expand(expected)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if _, err := tc.lookupField(field); err != nil {
		return err
	}
	return nil
}

func iStoreTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return ctx, err
	}

	tc.stored[name] = fmt.Sprintf("%v", value)
	return SetTestContext(ctx, tc), nil
}

// lookupField resolves a dotted path in the response JSON object.
func (tc *TestContext) lookupField(path string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("field '%s' not found in response: %s", path, string(tc.responseBody))
		}
		current, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field '%s' not found in response: %s", path, string(tc.responseBody))
		}
	}
	return current, nil
}

func theAIExtractionServiceIsConfigured(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.ai.Available = true
	tc.ai.Failing = false
	return nil
}

func theAIServiceIsNotConfigured(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.ai.Available = false
	return nil
}

func theAIAssistantReplies(ctx context.Context, reply string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.ai.Available = true
	tc.ai.Failing = false
	tc.ai.Reply = reply
	return nil
}

func theAIServiceIsFailing(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.ai.Available = true
	tc.ai.Failing = true
	return nil
}
