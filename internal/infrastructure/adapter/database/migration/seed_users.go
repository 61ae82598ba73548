package migration

import (
	"context"
	"errors"

	errs "github.com/boostly-app/boostly/internal/domain/error"
	"github.com/boostly-app/boostly/internal/domain/port/usecase"
)

// seedUsers are demo accounts created on fresh non-production environments
var seedUsers = []usecase.RegisterRequest{
	{FullName: "Asha Rao", Email: "asha@boostly.test", Password: "boostly-demo"},
	{FullName: "Ravi Menon", Email: "ravi@boostly.test", Password: "boostly-demo"},
	{FullName: "Meera Iyer", Email: "meera@boostly.test", Password: "boostly-demo"},
}

// CreateSeedUsers registers the demo accounts, skipping ones that already
// exist. Enabled via configuration for local and staging environments only.
func CreateSeedUsers(ctx context.Context, authService usecase.AuthUseCase) error {
	for _, req := range seedUsers {
		if _, err := authService.Register(ctx, req); err != nil {
			if errors.Is(err, errs.ErrDuplicateEmail) {
				continue
			}
			return err
		}
	}

	return nil
}
