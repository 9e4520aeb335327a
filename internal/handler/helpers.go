package handler

import (
	"strconv"
	"strings"

	appErrors "github.com/nadeen-odeh/dept-assistant-api/pkg/errors"
)

func errMissingParams(params ...string) error {
	return appErrors.Clone(appErrors.ErrValidation, "missing required parameters: "+strings.Join(params, ", "))
}

// semesterParam parses a 1-8 semester path or query value.
func semesterParam(raw string) (int, error) {
	semester, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || semester < 1 || semester > 8 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "semester must be a number between 1 and 8")
	}
	return semester, nil
}
