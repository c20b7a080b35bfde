package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommandLeavesErrorPrintingToMain(t *testing.T) {
	if !rootCmd.SilenceErrors {
		t.Fatal("rootCmd should silence cobra's own error output")
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{
		"--strategy", "regex",
		"--output", filepath.Join(t.TempDir(), "out.xlsx"),
	})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an invalid configuration error")
	}
	if !strings.Contains(err.Error(), "EXTRACT_STRATEGY") {
		t.Errorf("error should name the bad setting, got %v", err)
	}
	if strings.Contains(errOut.String(), "Error:") {
		t.Errorf("cobra printed the error itself: %q", errOut.String())
	}
}
