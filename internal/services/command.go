package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ojabooks/ojabooks-backend/internal/assistant"
	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/repos"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

// CommandResult is the user-facing outcome of one command: a message per
// executed action (newline-joined) plus the parsed intents for display.
type CommandResult struct {
	Message string                   `json:"message"`
	Actions []assistant.ActionIntent `json:"actions"`
}

type CommandService interface {
	Execute(ctx context.Context, userID uuid.UUID, text string) (*CommandResult, error)
}

type commandService struct {
	db           *gorm.DB
	log          *logger.Logger
	parser       *assistant.Parser
	materialRepo repos.MaterialRepo
	productRepo  repos.ProductRepo
	saleRepo     repos.SaleRepo
	expenseRepo  repos.ExpenseRepo
	invalidator  Invalidator
}

func NewCommandService(
	db *gorm.DB,
	log *logger.Logger,
	parser *assistant.Parser,
	materialRepo repos.MaterialRepo,
	productRepo repos.ProductRepo,
	saleRepo repos.SaleRepo,
	expenseRepo repos.ExpenseRepo,
	invalidator Invalidator,
) CommandService {
	return &commandService{
		db:           db,
		log:          log.With("service", "CommandService"),
		parser:       parser,
		materialRepo: materialRepo,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		invalidator:  invalidator,
	}
}

// Execute parses the command and runs the resulting actions strictly in
// order. Later actions may depend on rows written by earlier ones (create a
// product, then sell it, in one utterance), so the batch is never parallel.
// A persistence failure aborts the remaining queue without rolling back
// actions already committed.
func (s *commandService) Execute(ctx context.Context, userID uuid.UUID, text string) (*CommandResult, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	intents, err := s.parser.Parse(ctx, text)
	if err != nil {
		return nil, err
	}

	messages := make([]string, 0, len(intents))
	for i, intent := range intents {
		msg, execErr := s.executeAction(ctx, userID, intent)
		if execErr != nil {
			s.log.Error("Action failed, aborting remaining queue",
				"user_id", userID.String(),
				"action", intent.Action,
				"completed", i,
				"error", execErr,
			)
			return nil, fmt.Errorf("%w (%s): %v", ErrExecutionFailed, intent.Action, execErr)
		}
		messages = append(messages, msg)
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(userID, SurfaceDashboard, SurfaceInventory, SurfaceSales, SurfaceProducts)
	}

	return &CommandResult{
		Message: strings.Join(messages, "\n"),
		Actions: intents,
	}, nil
}

func (s *commandService) executeAction(ctx context.Context, userID uuid.UUID, intent assistant.ActionIntent) (string, error) {
	switch intent.Action {
	case assistant.ActionSale:
		return s.executeSale(ctx, userID, intent)
	case assistant.ActionStockIn:
		return s.executeStockIn(ctx, userID, intent)
	case assistant.ActionCreateProduct:
		return s.executeCreateProduct(ctx, userID, intent)
	case assistant.ActionStockCheck:
		return s.executeStockCheck(ctx, userID, intent)
	case assistant.ActionExpense:
		return s.executeExpense(ctx, userID, intent)
	case assistant.ActionSummary:
		return s.executeSummary(ctx, userID)
	case assistant.ActionChat:
		return intent.Message, nil
	case assistant.ActionClarify:
		return "I need a bit more detail: " + intent.Message, nil
	default:
		return "", fmt.Errorf("unknown action %q", intent.Action)
	}
}

// quantityOrDefault applies the numeric policy: quantity defaults to 1 when
// the parser omitted it.
func quantityOrDefault(q float64) float64 {
	if q <= 0 {
		return 1
	}
	return q
}

func (s *commandService) executeSale(ctx context.Context, userID uuid.UUID, intent assistant.ActionIntent) (string, error) {
	qty := quantityOrDefault(intent.Quantity)
	price := intent.Price

	products, err := s.productRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return "", err
	}
	materials, err := s.materialRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return "", err
	}

	unitCost := assistant.ResolveUnitCost(intent.Item, products, materials)
	product := assistant.FindProduct(intent.Item, products)
	var directMaterial *types.Material
	if product == nil {
		directMaterial = assistant.FindMaterial(intent.Item, materials)
	}

	name := strings.TrimSpace(intent.Item)
	if name == "" {
		name = "Unnamed item"
	}

	sale := &types.Sale{
		UserID:        userID,
		ProductName:   name,
		Quantity:      qty,
		TotalAmount:   qty * price,
		CostAmount:    qty * unitCost,
		PaymentMethod: types.PaymentCash,
	}

	// The sale insert and its stock deductions are one transaction; the
	// cross-action batch stays non-atomic.
	var note string
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, cErr := s.saleRepo.Create(ctx, tx, sale); cErr != nil {
			return cErr
		}
		switch {
		case product != nil && len(product.Recipe()) > 0:
			for _, line := range product.Recipe() {
				for _, m := range materials {
					if m.ID != line.MaterialID {
						continue
					}
					m.Quantity -= line.Quantity * qty
					if m.Quantity < 0 {
						m.Quantity = 0
					}
					if uErr := s.materialRepo.Update(ctx, tx, m); uErr != nil {
						return uErr
					}
				}
			}
			note = "ingredients deducted"
		case product != nil:
			note = "retail item, no ingredients to deduct"
		case directMaterial != nil:
			directMaterial.Quantity -= qty
			if directMaterial.Quantity < 0 {
				directMaterial.Quantity = 0
			}
			if uErr := s.materialRepo.Update(ctx, tx, directMaterial); uErr != nil {
				return uErr
			}
			note = "stock deducted"
		default:
			note = "item not found, stock not deducted"
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Recorded sale: %s x %s for %s (%s)",
		formatQty(qty), name, formatNaira(sale.TotalAmount), note), nil
}

func (s *commandService) executeStockIn(ctx context.Context, userID uuid.UUID, intent assistant.ActionIntent) (string, error) {
	qty := quantityOrDefault(intent.Quantity)

	materials, err := s.materialRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return "", err
	}

	if existing := assistant.FindMaterial(intent.Item, materials); existing != nil {
		existing.Quantity += qty
		if intent.Price > 0 {
			existing.CostPrice = intent.Price
		}
		if err := s.materialRepo.Update(ctx, nil, existing); err != nil {
			return "", err
		}
		return fmt.Sprintf("Updated stock: %s now %s %s",
			existing.Name, formatQty(existing.Quantity), existing.Unit), nil
	}

	material := &types.Material{
		UserID:    userID,
		Name:      strings.TrimSpace(intent.Item),
		Quantity:  qty,
		CostPrice: intent.Price,
		Unit:      "unit",
	}
	if _, err := s.materialRepo.Create(ctx, nil, material); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added new material: %s (%s %s)",
		material.Name, formatQty(material.Quantity), material.Unit), nil
}

func (s *commandService) executeCreateProduct(ctx context.Context, userID uuid.UUID, intent assistant.ActionIntent) (string, error) {
	name := strings.TrimSpace(intent.Item)
	if name == "" {
		return "", fmt.Errorf("product name required")
	}

	product := &types.Product{
		UserID:       userID,
		Name:         name,
		SellingPrice: intent.Price,
	}

	var lines []types.RecipeLine
	if len(intent.Recipe) > 0 {
		materials, err := s.materialRepo.GetByUserID(ctx, nil, userID)
		if err != nil {
			return "", err
		}
		for _, ing := range intent.Recipe {
			m := assistant.FindMaterial(ing.Item, materials)
			if m == nil {
				// Provisional material: the user named an ingredient that is
				// not declared yet. Created empty so the recipe can reference
				// it; the UI prompts for quantity and cost later.
				m = &types.Material{
					UserID:      userID,
					Name:        strings.TrimSpace(ing.Item),
					Unit:        "unit",
					AutoCreated: true,
				}
				if _, cErr := s.materialRepo.Create(ctx, nil, m); cErr != nil {
					return "", cErr
				}
				materials = append(materials, m)
			}
			lines = append(lines, types.RecipeLine{MaterialID: m.ID, Quantity: ing.Quantity})
		}
	}
	if err := product.SetRecipe(lines); err != nil {
		return "", err
	}

	if _, err := s.productRepo.Create(ctx, nil, product); err != nil {
		return "", err
	}

	if len(lines) > 0 {
		return fmt.Sprintf("Created product %s at %s with %d ingredient(s)",
			product.Name, formatNaira(product.SellingPrice), len(lines)), nil
	}
	return fmt.Sprintf("Created product %s at %s", product.Name, formatNaira(product.SellingPrice)), nil
}

func (s *commandService) executeStockCheck(ctx context.Context, userID uuid.UUID, intent assistant.ActionIntent) (string, error) {
	materials, err := s.materialRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return "", err
	}
	m := assistant.FindMaterial(intent.Item, materials)
	if m == nil {
		return fmt.Sprintf("Could not find %q in your inventory", strings.TrimSpace(intent.Item)), nil
	}
	return fmt.Sprintf("You have %s %s of %s", formatQty(m.Quantity), m.Unit, m.Name), nil
}

func (s *commandService) executeExpense(ctx context.Context, userID uuid.UUID, intent assistant.ActionIntent) (string, error) {
	expense := &types.Expense{
		UserID:      userID,
		Description: strings.TrimSpace(intent.Item),
		Amount:      intent.Price,
		Category:    "General",
	}
	if _, err := s.expenseRepo.Create(ctx, nil, expense); err != nil {
		return "", err
	}
	return fmt.Sprintf("Recorded expense: %s for %s", formatNaira(expense.Amount), expense.Description), nil
}

func (s *commandService) executeSummary(ctx context.Context, userID uuid.UUID) (string, error) {
	sales, err := s.saleRepo.GetAllByUserID(ctx, nil, userID)
	if err != nil {
		return "", err
	}
	now := time.Now()
	var revenue float64
	var count int
	for _, sale := range sales {
		y1, m1, d1 := sale.Date.Date()
		y2, m2, d2 := now.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			revenue += sale.TotalAmount
			count++
		}
	}
	return fmt.Sprintf("Today: %d sale(s) totalling %s", count, formatNaira(revenue)), nil
}

func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func formatNaira(amount float64) string {
	return "₦" + strconv.FormatFloat(amount, 'f', -1, 64)
}
