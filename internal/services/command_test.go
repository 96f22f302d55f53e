package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ojabooks/ojabooks-backend/internal/assistant"
	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/platform/llm"
	"github.com/ojabooks/ojabooks-backend/internal/repos"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) GenerateText(ctx context.Context, system, user string, opts llm.Options) (string, error) {
	return f.response, f.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Material{},
		&types.Product{},
		&types.Sale{},
		&types.Expense{},
		&types.Idea{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

type commandHarness struct {
	db           *gorm.DB
	svc          CommandService
	materialRepo repos.MaterialRepo
	productRepo  repos.ProductRepo
	saleRepo     repos.SaleRepo
	expenseRepo  repos.ExpenseRepo
	userID       uuid.UUID
}

func newCommandHarness(t *testing.T, ai llm.Client) *commandHarness {
	t.Helper()
	db := testDB(t)
	log := testLogger(t)
	materialRepo := repos.NewMaterialRepo(db, log)
	productRepo := repos.NewProductRepo(db, log)
	saleRepo := repos.NewSaleRepo(db, log)
	expenseRepo := repos.NewExpenseRepo(db, log)
	parser := assistant.NewParser(log, ai)
	svc := NewCommandService(db, log, parser, materialRepo, productRepo, saleRepo, expenseRepo, NewLogInvalidator(log))
	return &commandHarness{
		db:           db,
		svc:          svc,
		materialRepo: materialRepo,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		userID:       uuid.New(),
	}
}

func (h *commandHarness) seedMaterial(t *testing.T, name string, qty, cost float64) *types.Material {
	t.Helper()
	m := &types.Material{UserID: h.userID, Name: name, Quantity: qty, CostPrice: cost, Unit: "unit"}
	if _, err := h.materialRepo.Create(context.Background(), nil, m); err != nil {
		t.Fatalf("seed material: %v", err)
	}
	return m
}

func (h *commandHarness) seedProduct(t *testing.T, name string, selling, cost float64, recipe []types.RecipeLine) *types.Product {
	t.Helper()
	p := &types.Product{UserID: h.userID, Name: name, SellingPrice: selling, CostPrice: cost}
	if err := p.SetRecipe(recipe); err != nil {
		t.Fatalf("set recipe: %v", err)
	}
	if _, err := h.productRepo.Create(context.Background(), nil, p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func TestExecuteSaleDeductsRecipeIngredients(t *testing.T) {
	h := newCommandHarness(t, nil)
	flour := h.seedMaterial(t, "Flour", 10, 200)
	h.seedProduct(t, "Meatpie", 500, 0, []types.RecipeLine{{MaterialID: flour.ID, Quantity: 0.5}})

	result, err := h.svc.Execute(context.Background(), h.userID, "Sold 4 Meatpie at 500 each")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(result.Message, "ingredients deducted") {
		t.Fatalf("unexpected message: %q", result.Message)
	}

	updated, err := h.materialRepo.GetByID(context.Background(), nil, h.userID, flour.ID)
	if err != nil {
		t.Fatalf("reload material: %v", err)
	}
	if updated.Quantity != 8 {
		t.Fatalf("expected flour 8 after deduction, got %v", updated.Quantity)
	}

	sales, err := h.saleRepo.GetByUserID(context.Background(), nil, h.userID)
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("expected 1 sale, got %d", len(sales))
	}
	if sales[0].TotalAmount != 2000 {
		t.Fatalf("expected total 2000, got %v", sales[0].TotalAmount)
	}
	if sales[0].CostAmount != 400 {
		t.Fatalf("expected cost snapshot 400 (4 x 0.5 x 200), got %v", sales[0].CostAmount)
	}
}

func TestExecuteSaleClampsStockAtZero(t *testing.T) {
	h := newCommandHarness(t, nil)
	rice := h.seedMaterial(t, "Rice", 3, 900)

	_, err := h.svc.Execute(context.Background(), h.userID, "Sold 10 rice at 1200 each")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	updated, err := h.materialRepo.GetByID(context.Background(), nil, h.userID, rice.ID)
	if err != nil {
		t.Fatalf("reload material: %v", err)
	}
	if updated.Quantity != 0 {
		t.Fatalf("expected oversell clamped to zero, got %v", updated.Quantity)
	}

	sales, _ := h.saleRepo.GetByUserID(context.Background(), nil, h.userID)
	if len(sales) != 1 || sales[0].Quantity != 10 {
		t.Fatalf("sale should record the full requested quantity: %+v", sales)
	}
}

func TestExecuteSaleUnknownItemStillRecords(t *testing.T) {
	h := newCommandHarness(t, nil)

	result, err := h.svc.Execute(context.Background(), h.userID, "Sold 2 mystery at 100 each")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(result.Message, "item not found, stock not deducted") {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	sales, _ := h.saleRepo.GetByUserID(context.Background(), nil, h.userID)
	if len(sales) != 1 || sales[0].CostAmount != 0 {
		t.Fatalf("expected sale with zero cost, got %+v", sales)
	}
}

func TestExecuteStockInAccumulates(t *testing.T) {
	h := newCommandHarness(t, nil)
	h.seedMaterial(t, "Milo", 5, 4000)

	_, err := h.svc.Execute(context.Background(), h.userID, "Add 10 cartons of Milo at 4500 each")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	materials, _ := h.materialRepo.GetByUserID(context.Background(), nil, h.userID)
	if len(materials) != 1 {
		t.Fatalf("expected accumulate, not duplicate: %d materials", len(materials))
	}
	if materials[0].Quantity != 15 {
		t.Fatalf("expected quantity 15, got %v", materials[0].Quantity)
	}
	if materials[0].CostPrice != 4500 {
		t.Fatalf("expected cost overwritten to 4500, got %v", materials[0].CostPrice)
	}
}

func TestExecuteStockInKeepsCostWhenPriceOmitted(t *testing.T) {
	ai := &fakeLLM{response: `[{"action":"STOCK_IN","item":"Milo","quantity":5}]`}
	h := newCommandHarness(t, ai)
	h.seedMaterial(t, "Milo", 5, 4000)

	if _, err := h.svc.Execute(context.Background(), h.userID, "received 5 milo"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	materials, _ := h.materialRepo.GetByUserID(context.Background(), nil, h.userID)
	if materials[0].CostPrice != 4000 {
		t.Fatalf("expected cost unchanged at 4000, got %v", materials[0].CostPrice)
	}
	if materials[0].Quantity != 10 {
		t.Fatalf("expected quantity 10, got %v", materials[0].Quantity)
	}
}

func TestExecuteStockInCreatesNewMaterial(t *testing.T) {
	h := newCommandHarness(t, nil)

	if _, err := h.svc.Execute(context.Background(), h.userID, "Bought 20 crates of eggs at 2500 each"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	materials, _ := h.materialRepo.GetByUserID(context.Background(), nil, h.userID)
	if len(materials) != 1 {
		t.Fatalf("expected new material, got %d", len(materials))
	}
	if materials[0].Name != "eggs" || materials[0].Quantity != 20 {
		t.Fatalf("unexpected material: %+v", materials[0])
	}
}

func TestExecuteCreateProductWithProvisionalMaterials(t *testing.T) {
	ai := &fakeLLM{response: `[{"action":"CREATE_PRODUCT","item":"Meatpie","price":500,"recipe":[{"item":"flour","quantity":0.2},{"item":"egg","quantity":1}]}]`}
	h := newCommandHarness(t, ai)
	h.seedMaterial(t, "Flour", 10, 200)

	result, err := h.svc.Execute(context.Background(), h.userID, "Create Meatpie at 500 using 0.2kg flour and 1 egg")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(result.Message, "2 ingredient(s)") {
		t.Fatalf("unexpected message: %q", result.Message)
	}

	materials, _ := h.materialRepo.GetByUserID(context.Background(), nil, h.userID)
	if len(materials) != 2 {
		t.Fatalf("expected provisional egg to be created, got %d materials", len(materials))
	}
	var egg *types.Material
	for _, m := range materials {
		if m.Name == "egg" {
			egg = m
		}
	}
	if egg == nil || !egg.AutoCreated {
		t.Fatalf("expected provisional egg with AutoCreated set, got %+v", egg)
	}

	products, _ := h.productRepo.GetByUserID(context.Background(), nil, h.userID)
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if len(products[0].Recipe()) != 2 {
		t.Fatalf("expected 2 recipe lines, got %d", len(products[0].Recipe()))
	}
}

func TestExecuteBatchCreateThenSell(t *testing.T) {
	ai := &fakeLLM{response: `[{"action":"CREATE_PRODUCT","item":"Chin Chin","price":800},{"action":"SALE","item":"Chin Chin","quantity":2,"price":800}]`}
	h := newCommandHarness(t, ai)

	result, err := h.svc.Execute(context.Background(), h.userID, "Create Chin Chin at 800 then sell 2")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	lines := strings.Split(result.Message, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one message per action, got %q", result.Message)
	}

	sales, _ := h.saleRepo.GetByUserID(context.Background(), nil, h.userID)
	if len(sales) != 1 || sales[0].ProductName != "Chin Chin" {
		t.Fatalf("second action should see the first action's product: %+v", sales)
	}
}

func TestExecuteStockCheck(t *testing.T) {
	h := newCommandHarness(t, nil)
	h.seedMaterial(t, "Rice", 7, 900)

	result, err := h.svc.Execute(context.Background(), h.userID, "How many bags of rice do I have?")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Message != "You have 7 unit of Rice" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestExecuteExpense(t *testing.T) {
	h := newCommandHarness(t, nil)

	result, err := h.svc.Execute(context.Background(), h.userID, "Paid 5000 for transport")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(result.Message, "₦5000") {
		t.Fatalf("unexpected message: %q", result.Message)
	}

	expenses, _ := h.expenseRepo.GetByUserID(context.Background(), nil, h.userID)
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}
	if expenses[0].Category != "General" {
		t.Fatalf("expected default category General, got %q", expenses[0].Category)
	}
}

func TestExecuteChatPassthrough(t *testing.T) {
	ai := &fakeLLM{response: `[{"action":"CHAT","message":"Business is looking healthy this week."}]`}
	h := newCommandHarness(t, ai)

	result, err := h.svc.Execute(context.Background(), h.userID, "how are things going?")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Message != "Business is looking healthy this week." {
		t.Fatalf("expected verbatim chat message, got %q", result.Message)
	}
}

func TestExecuteClarifyPrefix(t *testing.T) {
	ai := &fakeLLM{response: `[{"action":"CLARIFY","message":"Which product did you sell?"}]`}
	h := newCommandHarness(t, ai)

	result, err := h.svc.Execute(context.Background(), h.userID, "sold some stuff")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.HasPrefix(result.Message, "I need a bit more detail: ") {
		t.Fatalf("expected clarify prefix, got %q", result.Message)
	}
}

func TestExecuteNoMatchReturnsErrNoMatch(t *testing.T) {
	h := newCommandHarness(t, nil)

	_, err := h.svc.Execute(context.Background(), h.userID, "blah blah nothing")
	if !errors.Is(err, assistant.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestExecuteRequiresUser(t *testing.T) {
	h := newCommandHarness(t, nil)
	if _, err := h.svc.Execute(context.Background(), uuid.Nil, "Sold 1 rice at 100"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestExecuteSummaryCountsToday(t *testing.T) {
	h := newCommandHarness(t, nil)
	if _, err := h.svc.Execute(context.Background(), h.userID, "Sold 2 rice at 500 each"); err != nil {
		t.Fatalf("seed sale: %v", err)
	}

	log := testLogger(t)
	parser := assistant.NewParser(log, &fakeLLM{response: `[{"action":"SUMMARY"}]`})
	svc := NewCommandService(h.db, log, parser, h.materialRepo, h.productRepo, h.saleRepo, h.expenseRepo, NewLogInvalidator(log))

	result, err := svc.Execute(context.Background(), h.userID, "summary")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Message != "Today: 1 sale(s) totalling ₦1000" {
		t.Fatalf("unexpected summary: %q", result.Message)
	}
}
