package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension script requires a POSIX shell")
	}
	tempDir := t.TempDir()
	out := filepath.Join(tempDir, "out.txt")

	script := "#!/bin/sh\n" +
		"echo \"" + EnvData + "=$" + EnvData + "\" > " + out + "\n" +
		"echo \"" + EnvVerbose + "=$" + EnvVerbose + "\" >> " + out + "\n" +
		"echo \"args=$*\" >> " + out + "\n" +
		"exit 3\n"
	if err := os.WriteFile(filepath.Join(tempDir, "taxfolio-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	oldData := *datasetPath
	*datasetPath = "/tmp/dataset"
	defer func() { *datasetPath = oldData }()

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatal("RunExtension() did not find taxfolio-hello")
	}
	if code != 3 {
		t.Errorf("RunExtension() exit code = %d, want 3", code)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{EnvData + "=/tmp/dataset", EnvVerbose + "=false", "args=a b"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("extension output does not contain %q:\n%s", want, content)
		}
	}
}

func TestExtensionMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, _ := RunExtension("nothing-here", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}
