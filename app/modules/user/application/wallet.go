package userservice

import (
	"context"
	"errors"
	"fmt"

	userdb "github.com/AhmedMHR/PadelPal/app/modules/user/infrastructure/repositories"
	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/AhmedMHR/PadelPal/app/shared/operations"
	"github.com/AhmedMHR/PadelPal/app/shared/results"
)

// TopUp credits the wallet with a simulated payment. The increment is a
// single atomic statement.
func (s *UserService) TopUp(ctx context.Context, userID string, amount int64) (*TopUpResult, error) {
	return operations.Unwrap(operations.WithTelemetry(s.telemetry(), ctx, "TopUp", userID, func(ctx context.Context) (operations.Result[*TopUpResult], error) {
		if amount <= 0 {
			return failure[*TopUpResult](results.NewError(results.KindValidation, "Top-up amount must be positive")), nil
		}

		balance, err := s.repo.IncrementBalance(ctx, s.readDB(), userID, amount)
		if err != nil {
			if errors.Is(err, userdb.ErrNotFound) {
				return failure[*TopUpResult](errProfileNotFound(userID)), nil
			}
			return operations.Result[*TopUpResult]{}, fmt.Errorf("failed to top up wallet: %w", err)
		}

		s.logger.InfoContext(ctx, "Wallet topped up",
			attr.ExtractCorrelationID(ctx),
			attr.String("user_id", userID),
			attr.Int64("amount", amount),
			attr.Int64("balance", balance),
		)
		return success(&TopUpResult{UserID: userID, Amount: amount, Balance: balance}), nil
	}))
}
