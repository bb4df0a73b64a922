package probe

import "errors"

var (
	// errTruncated signals the extractor's output exceeded maxPropertyBytes.
	errTruncated = errors.New("probe: module.prop exceeds size cap")
	// errEmptyOutput signals the extractor produced no output at all.
	errEmptyOutput = errors.New("probe: empty extractor output")
)
