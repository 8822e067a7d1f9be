// Package bid is the entrypoint for full bid calculation. It validates the
// snapshot, runs the workload model, then prices the result.
package bid

import (
	"github.com/Anderson413366/gleamops-sub002/decision/pricing"
	"github.com/Anderson413366/gleamops-sub002/decision/workload"
	"github.com/Anderson413366/gleamops-sub002/pkg/api"
	"github.com/Anderson413366/gleamops-sub002/pkg/errors"
)

// Calculate runs the full pipeline on one immutable snapshot. The same
// snapshot always yields the same result.
func Calculate(snapshot *api.BidSnapshot) (*api.BidResult, error) {
	if len(snapshot.Areas) == 0 {
		return nil, errors.NewNoAreasError()
	}

	wl, err := workload.Calculate(snapshot)
	if err != nil {
		return nil, err
	}

	pr, err := pricing.Calculate(snapshot, wl)
	if err != nil {
		return nil, err
	}

	return &api.BidResult{
		Workload: *wl,
		Pricing:  *pr,
	}, nil
}
