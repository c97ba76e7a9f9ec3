package checkout

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/vibast-solutions/ms-go-enrollment/app/entity"
)

const (
	statusParam = "status"
	orderParam  = "order"
	nextParam   = "next"

	statusReceipt = "receipt"
	statusCancel  = "cancel"
)

// Outcome is how a payment attempt looks once the browser comes back from the
// processor.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomePending
	OutcomeCancelled
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomePending:
		return "pending"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeTimedOut:
		return "timed_out"
	default:
		return "none"
	}
}

// Final reports whether no further polling can change the outcome.
func (o Outcome) Final() bool {
	return o == OutcomeSuccess || o == OutcomeCancelled || o == OutcomeTimedOut
}

// ReturnParams are the status and order values of a return trip, after the
// next-wrapper has been unwrapped.
type ReturnParams struct {
	Status  string
	OrderID string
}

// ParseReturnParams reads status and order from the query. When the processor
// wrapped the original return URL in a "next" parameter, the values are read
// from the query string of that URL instead.
func ParseReturnParams(query url.Values) ReturnParams {
	if query.Has(nextParam) {
		next, err := url.Parse(query.Get(nextParam))
		if err != nil {
			return ReturnParams{}
		}
		query = next.Query()
	}

	return ReturnParams{
		Status:  strings.TrimSpace(query.Get(statusParam)),
		OrderID: strings.TrimSpace(query.Get(orderParam)),
	}
}

// ClassifyReturnStatus decides the outcome of a return trip. A receipt only
// counts as Success once the matching order is fulfilled; until then it is
// Pending. The result depends only on its inputs.
func ClassifyReturnStatus(query url.Values, orders []entity.Order) Outcome {
	params := ParseReturnParams(query)

	switch params.Status {
	case statusCancel:
		return OutcomeCancelled
	case statusReceipt:
		orderID, err := strconv.ParseInt(params.OrderID, 10, 64)
		if err != nil {
			return OutcomePending
		}
		for _, order := range orders {
			if order.ID == orderID && order.Status == entity.OrderStatusFulfilled {
				return OutcomeSuccess
			}
		}
		return OutcomePending
	default:
		return OutcomeNone
	}
}
