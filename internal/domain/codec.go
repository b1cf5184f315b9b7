package domain

import (
	"encoding/json"
	"fmt"
)

// MarshalState сериализует состояние целиком в JSON для записи в слот хранилища.
func MarshalState(s AppState) ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalState восстанавливает состояние из JSON и приводит его к текущим инвариантам.
func UnmarshalState(data []byte) (AppState, error) {
	var s AppState
	if err := json.Unmarshal(data, &s); err != nil {
		return AppState{}, fmt.Errorf("decode app state: %w", err)
	}
	s.normalize()

	return s, nil
}
