package ordering

import (
	"context"

	"github.com/amazons/backend/lib/myerrors"
	"github.com/amazons/backend/lib/mylog"
	"github.com/amazons/backend/lib/myvalidation"
)

func (s *service) checkout(c context.Context, req CheckoutRequest) (CheckoutResponse, error) {
	err := myvalidation.Check(req)
	if err != nil {
		return CheckoutResponse{}, myerrors.NewInvalidInputError(err)
	}

	// The submitted per-item price is authoritative: the total is computed
	// from what the caller sent, not re-priced against the product catalog.
	total := 0.0
	for _, item := range req.Items {
		total += item.Price * float64(item.Quantity)
	}

	order := Order{
		UserID:    req.UserID,
		Items:     req.Items,
		Total:     total,
		Address:   req.Address,
		Status:    orderStatusPlaced,
		CreatedAt: s.nower.Now(),
	}

	id, err := s.orderStore.Insert(c, order)
	if err != nil {
		return CheckoutResponse{}, myerrors.NewInternalError(err)
	}

	s.logger.Log(c, id, mylog.SeverityInfo, "Placed order %s for user %s (%d items, total %.2f)",
		id, req.UserID, len(req.Items), total)

	return CheckoutResponse{
		OrderID: id,
		Total:   total,
		Status:  orderStatusPlaced,
	}, nil
}
