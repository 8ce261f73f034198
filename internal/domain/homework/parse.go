// internal/domain/homework/parse.go
package homework

import "fmt"

// ParseStatus turns one homework record into the notification text for the
// chat. The record's status must be present in the verdict catalog; anything
// else (including a record that is not an object at all) yields
// *UnknownStatusError so the caller can report the offending status code.
func ParseStatus(record any) (string, error) {
	rec, _ := record.(map[string]any)
	name, _ := rec["homework_name"].(string)
	status, _ := rec["status"].(string)

	verdict, ok := Verdict(status)
	if !ok {
		return "", &UnknownStatusError{Status: status}
	}

	message := fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict)
	if comment, ok := rec["reviewer_comment"].(string); ok && comment != "" {
		message += fmt.Sprintf(" Комментарий ревьюера: %s", comment)
	}
	return message, nil
}
