package bins

import "errors"

var (
	// ErrInvalidDataset indicates the dataset violates a rule's
	// minimum-size precondition (empty for most rules, fewer than
	// three samples for Doane). The wrapped message names the rule.
	ErrInvalidDataset = errors.New("bins: invalid dataset")

	// ErrUnknownRule indicates a rule identifier outside the closed
	// rule set — or, for SuggestBinWidth, outside the narrower set of
	// width-producing rules. The wrapped message carries the identifier.
	ErrUnknownRule = errors.New("bins: unknown rule")
)
