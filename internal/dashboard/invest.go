package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/openfund/fundview/pkg/models"
)

// Invest computes how many shares a dollar amount buys at the current
// price. The amount must parse as a positive number; a missing or zero
// price is ErrPriceUnavailable. Quantity is rounded to 2 decimal
// places.
func (s *Service) Invest(ctx context.Context, ticker, rawAmount string) (models.Investment, error) {
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return models.Investment{}, fmt.Errorf("%w: %q", ErrBadAmount, rawAmount)
	}
	if !amount.IsPositive() {
		return models.Investment{}, fmt.Errorf("%w: %s", ErrBadAmount, amount)
	}

	info, err := s.market.Info(ctx, ticker)
	if err != nil {
		return models.Investment{}, err
	}
	if info.CurrentPrice == 0 {
		return models.Investment{}, ErrPriceUnavailable
	}

	price := decimal.NewFromFloat(info.CurrentPrice)
	return models.Investment{
		Amount:      amount,
		Quantity:    amount.Div(price).Round(2),
		CompanyName: models.StringField(info.Name),
		Price:       info.CurrentPrice,
	}, nil
}
