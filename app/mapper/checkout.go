package mapper

import (
	"time"

	"github.com/vibast-solutions/ms-go-enrollment/app/checkout"
	"github.com/vibast-solutions/ms-go-enrollment/app/types"
)

var timeNow = time.Now

func RedirectToResponse(instruction *checkout.RedirectInstruction) *types.RedirectResponse {
	if instruction == nil {
		return nil
	}
	payload := make(map[string]string, len(instruction.Payload))
	for k, v := range instruction.Payload {
		payload[k] = v
	}
	return &types.RedirectResponse{Url: instruction.URL, Payload: payload}
}

// OutcomeToResponse folds the outcome into a fresh page state so the response
// carries the toast the page would show.
func OutcomeToResponse(outcome checkout.Outcome, policy checkout.PollPolicy) *types.ReturnStatusResponse {
	state := &checkout.State{}
	state.Apply(outcome, timeNow())

	resp := &types.ReturnStatusResponse{
		Outcome: outcome.String(),
		Final:   outcome.Final(),
		Toast:   state.Toast,
	}
	if outcome == checkout.OutcomePending {
		interval := policy.Interval
		if interval <= 0 {
			interval = checkout.DefaultPollInterval
		}
		resp.RetryAfterSeconds = int(interval.Seconds())
	}
	return resp
}
