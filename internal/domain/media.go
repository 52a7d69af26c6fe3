package domain

import (
	"fmt"
	"regexp"
)

// Category is a top-level media classification on the server.
type Category string

const (
	CategoryMovies        Category = "movies"
	CategorySeries        Category = "series"
	CategoryComedy        Category = "comedy"
	CategoryDocumentaries Category = "documentaries"
)

// Categories lists the selectable categories in display order.
func Categories() []string {
	return []string{
		string(CategoryMovies),
		string(CategorySeries),
		string(CategoryComedy),
		string(CategoryDocumentaries),
	}
}

var announceable = regexp.MustCompile(`/(movies|series)/`)

// IsAnnounceable reports whether a destination path is worth a channel
// announcement (movies and series only).
func IsAnnounceable(destination string) bool {
	return announceable.MatchString(destination)
}

// FormatSize renders a byte count in a human-readable unit with two decimals.
func FormatSize(bytes float64) string {
	sizes := []string{"B", "KB", "MB", "GB", "TB"}
	for _, size := range sizes {
		if bytes < 1024.0 {
			return fmt.Sprintf("%.2f %s", bytes, size)
		}
		bytes /= 1024.0
	}
	return fmt.Sprintf("%.2f %s", bytes, sizes[len(sizes)-1])
}
