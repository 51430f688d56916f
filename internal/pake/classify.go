package pake

import "regexp"

// Outcome classifies a pake invocation. The non-zero-exit cases are a
// best-effort heuristic on stderr text: pake's output format is not a
// stable contract.
type Outcome int

const (
	// OutcomeSuccess: pake exited zero.
	OutcomeSuccess Outcome = iota

	// OutcomeBundleWarning: pake exited non-zero because a
	// platform-specific bundling step failed, but stderr names an app
	// bundle that was still produced.
	OutcomeBundleWarning

	// OutcomeUnknown: stderr carries the bundling-failure marker but no
	// discoverable bundle path, so success cannot be confirmed either
	// way.
	OutcomeUnknown

	// OutcomeFailed: non-zero exit with no recognized benign signature.
	OutcomeFailed
)

func (o Outcome) String() string {
	return [...]string{"success", "bundle warning", "unknown", "failed"}[o]
}

// Markers pake prints when the final bundling step fails after the app
// itself was built. Observed output, not a documented interface.
var bundleFailureRe = regexp.MustCompile(`(?i)failed to bundle project|error running bundle_dmg\.sh`)

var bundlePathRe = regexp.MustCompile(`(/[^\s"']+\.(?:app|dmg|deb|AppImage|msi))`)

// Classify maps a pake exit status and stderr text to an Outcome. For
// OutcomeBundleWarning the discovered bundle path is returned as well.
func Classify(exitOK bool, stderr string) (Outcome, string) {
	if exitOK {
		return OutcomeSuccess, ""
	}
	if !bundleFailureRe.MatchString(stderr) {
		return OutcomeFailed, ""
	}
	if m := bundlePathRe.FindStringSubmatch(stderr); m != nil {
		return OutcomeBundleWarning, m[1]
	}
	return OutcomeUnknown, ""
}
