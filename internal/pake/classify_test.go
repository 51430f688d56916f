package pake_test

import (
	"testing"

	"devkit/internal/pake"
)

func TestClassify_exitZeroIsSuccess(t *testing.T) {
	outcome, path := pake.Classify(true, "some noise that mentions failed to bundle project")
	if outcome != pake.OutcomeSuccess {
		t.Errorf("expected success, got %s", outcome)
	}
	if path != "" {
		t.Errorf("expected no bundle path on success, got %q", path)
	}
}

func TestClassify_bundleWarningWithPath(t *testing.T) {
	stderr := `Error: failed to bundle project
the app was generated at /home/dev/.pake/SemanticChat.AppImage before bundling failed`
	outcome, path := pake.Classify(false, stderr)
	if outcome != pake.OutcomeBundleWarning {
		t.Fatalf("expected bundle warning, got %s", outcome)
	}
	if path != "/home/dev/.pake/SemanticChat.AppImage" {
		t.Errorf("unexpected bundle path: %q", path)
	}
}

func TestClassify_macBundler(t *testing.T) {
	stderr := `Error running bundle_dmg.sh
app bundle at /Users/dev/pake/SemanticChat.app`
	outcome, path := pake.Classify(false, stderr)
	if outcome != pake.OutcomeBundleWarning {
		t.Fatalf("expected bundle warning, got %s", outcome)
	}
	if path != "/Users/dev/pake/SemanticChat.app" {
		t.Errorf("unexpected bundle path: %q", path)
	}
}

func TestClassify_markerWithoutPathIsUnknown(t *testing.T) {
	outcome, path := pake.Classify(false, "failed to bundle project, no artifacts mentioned")
	if outcome != pake.OutcomeUnknown {
		t.Errorf("expected unknown, got %s", outcome)
	}
	if path != "" {
		t.Errorf("expected no path, got %q", path)
	}
}

func TestClassify_plainFailure(t *testing.T) {
	outcome, _ := pake.Classify(false, "error: invalid url")
	if outcome != pake.OutcomeFailed {
		t.Errorf("expected failed, got %s", outcome)
	}
}
