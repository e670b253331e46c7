package buffer

import (
	"fmt"
	"strings"
)

// Format writes all elements of b using their default format, separated by sep
// and enclosed by begin and end.
func Format[T any](b Buffer[T], sep, begin, end string) string {
	var sb strings.Builder

	sb.WriteString(begin)
	for idx, value := range b.data {
		if idx > 0 {
			sb.WriteString(sep)
		}

		_, _ = fmt.Fprint(&sb, value)
	}
	sb.WriteString(end)

	return sb.String()
}
