package peglr

import "fmt"

// These are programmer errors -- grammar misuse -- distinguished from the
// single non-exceptional parse failure outcome every combinator can return.
// They panic rather than propagate through the Pattern interface, since a
// malformed grammar is not something a caller can backtrack out of.
var (
	errorNilMainPattern = errorf("the root pattern is nil")

	errorRuleUndefined = func(name string) error {
		return errorf("rule %q was referenced but never given a body", name)
	}

	errorRuleRedefined = func(name string) error {
		return errorf("rule %q body assigned more than once", name)
	}

	errorNilRuleBody = func(name string) error {
		return errorf("rule %q defined with a nil body", name)
	}

	errorIndirectLeftRecursion = func(name string) error {
		return errorf("rule %q appears to participate in indirect left recursion, which this engine does not resolve", name)
	}
)

type pegError struct {
	value string
}

func errorf(format string, v ...interface{}) error {
	return &pegError{fmt.Sprintf(format, v...)}
}

func (err *pegError) Error() string {
	return "peglr: " + err.value
}
