// internal/domain/homework/validate.go
package homework

import "fmt"

// CheckResponse enforces the structural contract of one poll payload and
// returns the homework record sequence unchanged. Individual records are not
// inspected here; ParseStatus does that on demand.
//
// CheckResponse is a pure function of its input: no side effects, same
// result on every call.
func CheckResponse(payload any) ([]any, error) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, &MalformedResponseError{
			Kind:    KindNotAMapping,
			Message: fmt.Sprintf("Неверный тип данных ответа API. Ожидался объект, получен %T", payload),
		}
	}
	if len(m) == 0 {
		return nil, &MalformedResponseError{
			Kind:    KindEmptyMapping,
			Message: "Словарь ответа API пуст",
		}
	}
	raw, ok := m["homeworks"]
	if !ok {
		return nil, &MalformedResponseError{
			Kind:    KindMissingKey,
			Message: "Ключа homeworks нет в ответе API",
		}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &MalformedResponseError{
			Kind:    KindNotASequence,
			Message: fmt.Sprintf("homeworks не является списком, получен %T", raw),
		}
	}
	return list, nil
}

// CurrentDate extracts the server-supplied cursor value from a payload that
// already passed CheckResponse. The second return value is false when the
// field is absent or not a number; the caller leaves its cursor unchanged.
func CurrentDate(payload any) (int64, bool) {
	m, ok := payload.(map[string]any)
	if !ok {
		return 0, false
	}
	v, ok := m["current_date"].(float64)
	if !ok {
		return 0, false
	}
	return int64(v), true
}
