// internal/domain/homework/homework.go
package homework

// statusVerdicts maps every known homework review status to the
// human-readable verdict text sent to the chat.
var statusVerdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}

// KnownStatus reports whether status is present in the verdict catalog.
func KnownStatus(status string) bool {
	_, ok := statusVerdicts[status]
	return ok
}

// Verdict returns the display text for a known status. The second return
// value is false for statuses outside the catalog.
func Verdict(status string) (string, bool) {
	v, ok := statusVerdicts[status]
	return v, ok
}
