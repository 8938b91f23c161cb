package request_models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"tourcms/pkg/utils"
)

var ErrInvalidOrderFormat = fmt.Errorf("%w: orderedTours must be an array of {id}", utils.ErrInvalidOrderPayload)

type OrderedTour struct {
	ID FlexID `json:"id"`
}

type UpdateOrderRequest struct {
	OrderedTours []OrderedTour `json:"orderedTours"`
}

// ParseOrderedTours reads a reorder payload, either {"orderedTours": [...]}
// or a bare array, and returns the tour ids in their new display order.
func ParseOrderedTours(body []byte) ([]uint, error) {
	body = bytes.TrimSpace(body)

	var entries []OrderedTour
	switch {
	case bytes.HasPrefix(body, []byte("[")):
		if err := json.Unmarshal(body, &entries); err != nil {
			return nil, ErrInvalidOrderFormat
		}
	case bytes.HasPrefix(body, []byte("{")):
		var wrapped struct {
			OrderedTours json.RawMessage `json:"orderedTours"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, ErrInvalidOrderFormat
		}
		if !bytes.HasPrefix(bytes.TrimSpace(wrapped.OrderedTours), []byte("[")) {
			return nil, ErrInvalidOrderFormat
		}
		if err := json.Unmarshal(wrapped.OrderedTours, &entries); err != nil {
			return nil, ErrInvalidOrderFormat
		}
	default:
		return nil, ErrInvalidOrderFormat
	}

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		if e.ID == 0 {
			return nil, ErrInvalidOrderFormat
		}
		ids = append(ids, e.ID.Uint())
	}
	return ids, nil
}
