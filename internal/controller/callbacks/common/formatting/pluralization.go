package formatting

import "fmt"

// Pluralize возвращает "1 participant", "3 participants"
func Pluralize(count int, singular string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %ss", count, singular)
}
