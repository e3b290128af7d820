package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"
)

const (
	EnvData    = "TAXFOLIO_DATA"
	EnvConfig  = "TAXFOLIO_CONFIG"
	EnvVerbose = "TAXFOLIO_VERBOSE"
)

// RunExtension attempts to find and execute an external taxfolio-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "taxfolio-" + subcommand
	log := newLogger(zerolog.InfoLevel)

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Str("command", externalCmdName).Msg("external command not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv passes the global flags to extensions as environment variables.
func extensionEnv() []string {
	return []string{
		EnvData + "=" + *datasetPath,
		EnvConfig + "=" + *configFile,
		EnvVerbose + "=" + strconv.FormatBool(*verbose),
	}
}
