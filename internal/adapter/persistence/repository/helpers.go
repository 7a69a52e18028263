package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"hiko_buyforme/internal/domain/entities"
)

// The aggregate is stored as one JSON document next to the indexed columns
// (user_id, status) that lookups need.

func marshalPayload(r entities.BuyForMeRequest) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal request %s: %w", r.ID, err)
	}
	return b, nil
}

func unmarshalPayload(b []byte) (entities.BuyForMeRequest, error) {
	var r entities.BuyForMeRequest
	if err := json.Unmarshal(b, &r); err != nil {
		return entities.BuyForMeRequest{}, fmt.Errorf("unmarshal request: %w", err)
	}
	return r, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
