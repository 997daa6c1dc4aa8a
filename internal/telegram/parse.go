package telegram

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/ykvlv/medication-reminder/internal/domain"
)

var durationTokenRe = regexp.MustCompile(`^(\d{1,4})d$`)

var (
	errAddUsage     = errors.New("expected: HH:MM Name [YYYY-MM-DD] [Nd]")
	errTwoDurations = errors.New("duration given more than once")
	errZeroDuration = errors.New("duration must be at least 1 day, omit it for an ongoing course")
)

// parseAddArgs reads "HH:MM Name words [YYYY-MM-DD] [Nd]" into an Input.
// Date and duration tokens may appear anywhere after the time; everything
// else forms the name.
func parseAddArgs(text string) (domain.Input, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return domain.Input{}, errAddUsage
	}
	in := domain.Input{Time: fields[0], OriginalInput: strings.TrimSpace(text)}

	var name []string
	seenDuration := false
	for _, f := range fields[1:] {
		if sm := durationTokenRe.FindStringSubmatch(f); sm != nil {
			if seenDuration {
				return domain.Input{}, errTwoDurations
			}
			seenDuration = true
			in.DurationDays, _ = strconv.Atoi(sm[1])
			if in.DurationDays == 0 {
				return domain.Input{}, errZeroDuration
			}
			continue
		}
		if in.StartDate == "" {
			if _, err := domain.ParseDate(f); err == nil {
				in.StartDate = f
				continue
			}
		}
		name = append(name, f)
	}
	in.Name = strings.Join(name, " ")
	return in, nil
}
