package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kitty-panics/proton-caller/cmd/proton-call/commands"
	"github.com/kitty-panics/proton-caller/internal/callerr"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "proton-call: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps failures to exit classes: 2 for configuration or
// environment problems, 3 for version or program resolution, 4 for launch
// machinery, the child's own code when it ran and failed, 1 otherwise.
func exitCode(err error) int {
	var ce *callerr.Error
	if !errors.As(err, &ce) {
		return 1
	}
	switch ce.Kind {
	case callerr.Environment, callerr.ConfigOpen, callerr.ConfigRead, callerr.ConfigParse:
		return 2
	case callerr.IndexReadDir, callerr.VersionParse, callerr.VersionNotFound,
		callerr.ProtonMissing, callerr.ProgramMissing:
		return 3
	case callerr.ProtonDir, callerr.ProtonSpawn, callerr.ProtonWait:
		return 4
	case callerr.ProtonExit:
		if ce.Code > 0 {
			return ce.Code
		}
		return 1
	}
	return 1
}
