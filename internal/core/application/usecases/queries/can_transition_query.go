package queries

import (
	"errors"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var (
	ErrCanTransitionQueryIsNotConstructed = errors.New(
		"CanTransitionQuery must be created via NewCanTransitionQuery constructor",
	)
)

// CanTransitionQuery asks whether an order in status From may move to status To.
// Both names are matched case-insensitively; unknown names are never transitionable.
type CanTransitionQuery struct {
	from  string
	to    string
	guard guard.ConstructorGuard
}

func NewCanTransitionQuery(from, to string) CanTransitionQuery {
	return CanTransitionQuery{from: from, to: to, guard: guard.NewConstructorGuard()}
}

func (q CanTransitionQuery) From() string { return q.from }

func (q CanTransitionQuery) To() string { return q.to }

func (q CanTransitionQuery) Validate() error {
	return q.guard.Validate(ErrCanTransitionQueryIsNotConstructed)
}

// CanTransitionQueryHandler evaluates the transition table. It touches no storage.
type CanTransitionQueryHandler struct{}

func NewCanTransitionQueryHandler() CanTransitionQueryHandler {
	return CanTransitionQueryHandler{}
}

func (h CanTransitionQueryHandler) Handle(query CanTransitionQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}
	return order.CanTransition(query.From(), query.To()), nil
}
