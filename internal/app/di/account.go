// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"

	"gorm.io/gorm"

	accountadapters "interview_backend/internal/feature/account/adapters"
	accounthandler "interview_backend/internal/feature/account/transport/handler"
	accountusecase "interview_backend/internal/feature/account/usecase"
)

// NewAccountHandler wires the gorm repository, the bcrypt usecase and the HTTP handler.
func NewAccountHandler(db *gorm.DB, bcryptCost int) (*accounthandler.AccountHandler, error) {
	userRepo := accountadapters.NewUserRepository(db)
	accountUC, err := accountusecase.NewAccountUsecase(userRepo, bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to build account usecase: %w", err)
	}
	return accounthandler.NewAccountHandler(accountUC), nil
}
