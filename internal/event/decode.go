package event

import "encoding/json"

// DecodePayload returns the payload as T. MemoryBus delivers the struct
// itself; payloads replayed from the dead-letter file are maps and go
// through a JSON round trip.
func DecodePayload[T any](input any) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var out T
	data, err := json.Marshal(input)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(data, &out)
	return out, err
}
