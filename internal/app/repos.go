package app

import (
	"gorm.io/gorm"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/repos"
)

type Repos struct {
	User      repos.UserRepo
	UserToken repos.UserTokenRepo
	Material  repos.MaterialRepo
	Product   repos.ProductRepo
	Sale      repos.SaleRepo
	Expense   repos.ExpenseRepo
	Idea      repos.IdeaRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:      repos.NewUserRepo(db, log),
		UserToken: repos.NewUserTokenRepo(db, log),
		Material:  repos.NewMaterialRepo(db, log),
		Product:   repos.NewProductRepo(db, log),
		Sale:      repos.NewSaleRepo(db, log),
		Expense:   repos.NewExpenseRepo(db, log),
		Idea:      repos.NewIdeaRepo(db, log),
	}
}
