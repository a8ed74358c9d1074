package store

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTag renders a task tag. Numbers are padded to three digits and
// simply grow wider past 999.
func FormatTag(prefix string, n int) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}

// allocateTag hands out the next tag and advances the counter. Numbers are
// never reused.
func (d *Document) allocateTag() string {
	tag := FormatTag(d.Project.Prefix, d.Project.NextTaskNumber)
	d.Project.NextTaskNumber++
	return tag
}

// tagNumber extracts the numeric suffix of a tag, if it has one.
func tagNumber(tag string) (int, bool) {
	i := strings.LastIndex(tag, "-")
	if i < 0 || i == len(tag)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(tag[i+1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
