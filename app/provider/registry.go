package provider

import "errors"

var ErrFlowNotSupported = errors.New("payment flow is not supported")

type Registry struct {
	initiators map[string]Initiator
}

func NewRegistry(initiators ...Initiator) *Registry {
	items := make(map[string]Initiator, len(initiators))
	for _, i := range initiators {
		items[i.Flow()] = i
	}
	return &Registry{initiators: items}
}

func (r *Registry) Get(flow string) (Initiator, error) {
	initiator, ok := r.initiators[flow]
	if !ok {
		return nil, ErrFlowNotSupported
	}
	return initiator, nil
}
