package util

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RunEWrapperForLeafCommand wraps the RunE of every leaf command so that
// a returned WdeError is logged once and cobra does not print the usage
// text a second time.
func RunEWrapperForLeafCommand(cmd *cobra.Command) {
	for _, c := range cmd.Commands() {
		RunEWrapperForLeafCommand(c)
	}

	if cmd.RunE != nil {
		originalRunE := cmd.RunE
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			err := originalRunE(cmd, args)

			var wdeErr *WdeError
			if errors.As(err, &wdeErr) {
				if wdeErr.Message != "" {
					log.Error(wdeErr.Message)
				}
			} else if err != nil {
				log.Error(err.Error())
			}
			return err
		}
	}
}

// RunAndHandleExit executes the command and converts the returned error
// into the process exit code.
func RunAndHandleExit(cmd *cobra.Command) {
	err := cmd.Execute()
	if err == nil {
		os.Exit(ErrorSuccess)
	}

	var wdeErr *WdeError
	if errors.As(err, &wdeErr) {
		os.Exit(wdeErr.Code)
	}
	os.Exit(ErrorGeneric)
}
