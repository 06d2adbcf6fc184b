package testenv

import (
	"os"
	"testing"

	"github.com/otiai10/copy"
)

// TempRoot copies a fixture directory, laid out like a filesystem root
// (proc/, sys/, etc/), into a new temp dir and returns its path.
func TempRoot(t testing.TB, fixtureDir string) string {
	t.Helper()
	if info, err := os.Stat(fixtureDir); err != nil {
		panic(err)
	} else if !info.IsDir() {
		panic(fixtureDir + " is not a directory")
	}
	tmpDir := TempDir(t, "root")
	die(copy.Copy(fixtureDir, tmpDir, copy.Options{
		OnDirExists: func(src, dest string) copy.DirExistsAction { return copy.Replace },
	}))
	return tmpDir
}

// LinuxCommands are canned outputs of the programs sysfetch runs, matching
// the testdata/linux fixture root.
func LinuxCommands() Commands {
	return Commands{
		"uname -r":            {Stdout: "6.5.0-test-generic\n"},
		"uname -m":            {Stdout: "x86_64\n"},
		"uptime -p":           {Stdout: "up 3 hours, 12 minutes\n"},
		"whoami":              {Stdout: "tester\n"},
		"hostname":            {Stdout: "testbox\n"},
		"cat /etc/os-release": {Stdout: osRelease},
		"lspci":               {Stdout: lspci},
	}
}

const osRelease = `NAME="Test Linux"
VERSION="5 (Example)"
ID=testlinux
PRETTY_NAME="Test Linux 5"
HOME_URL="https://example.com/"
`

const lspci = `00:00.0 Host bridge: Example Corp Host Bridge (rev 01)
00:1f.3 Audio device: Example Corp Audio Controller
01:00.0 VGA compatible controller: Example Corp [Widget GPU 2000] (rev a1)
01:00.1 Audio device: Example Corp [Widget HD Audio]
`
