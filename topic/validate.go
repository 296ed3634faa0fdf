package topic

import (
	"errors"
	"fmt"
	"strings"
)

// Validate は、トピック列がカタログとして成立するかを検査します。
// 見つかった違反はすべて errors.Join でまとめて返します。
func Validate(topics []*Topic) error {
	if len(topics) == 0 {
		return errors.New("catalog has no topics")
	}

	var errs []error
	seen := make(map[string]int, len(topics))
	for i, t := range topics {
		if t == nil {
			errs = append(errs, fmt.Errorf("topic #%d is nil", i))
			continue
		}
		title := strings.TrimSpace(t.Title)
		if title == "" {
			errs = append(errs, fmt.Errorf("topic #%d: title is empty", i))
		} else if prev, ok := seen[title]; ok {
			errs = append(errs, fmt.Errorf("topic #%d %q: title duplicates topic #%d", i, t.Title, prev))
		} else {
			seen[title] = i
		}

		if len(t.Differences) == 0 {
			errs = append(errs, fmt.Errorf("topic #%d %q: differences is empty", i, t.Title))
		}
		for j, d := range t.Differences {
			if strings.TrimSpace(d) == "" {
				errs = append(errs, fmt.Errorf("topic #%d %q: difference #%d is empty", i, t.Title, j))
			}
		}
	}
	return errors.Join(errs...)
}
