/**
 * Copyright (c) 2024 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package wbatch

import (
	"WdeFrontEnd/internal/qsub"
	"WdeFrontEnd/internal/util"

	"github.com/spf13/cobra"
)

var (
	FlagConfigFilePath string
	FlagJson           bool
	FlagDryRun         bool
	FlagRepeat         uint32

	RootCmd = &cobra.Command{
		Use:   "wbatch [flags] dist wavelet num i0 id ja jb jc",
		Short: "Submit a wavelet density estimation job",
		Long: `Submit one wavelet density estimation run to the batch queue.

Positional arguments:
  dist      probability distribution code to sample
  wavelet   wavelet basis name
  num       number of samples to process in this run
  i0        index of the first sample
  id        increment between sample ids
  ja jb jc  resolution levels (J values) to try`,
		Version: util.Version(),
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config := util.ParseConfig(FlagConfigFilePath)
			util.ApplyLoggerConfig(config)
			util.DetectSchedulerBinaries(config)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "" || len(args) != 8 {
				_ = cmd.Help()
				return &util.WdeError{Code: util.ErrorCmdArg}
			}
			if FlagRepeat == 0 {
				return &util.WdeError{
					Code:    util.ErrorCmdArg,
					Message: "Invalid argument: --repeat must > 0.",
				}
			}

			params := &qsub.Params{
				DistCode: args[0],
				Wavelet:  args[1],
				Num:      args[2],
				I0:       args[3],
				Id:       args[4],
				Ja:       args[5],
				Jb:       args[6],
				Jc:       args[7],
			}

			config := util.ParseConfig(FlagConfigFilePath)
			client := qsub.NewClient(config)

			if FlagDryRun {
				return ShowPlan(client, config, params, FlagRepeat)
			}
			return SubmitJobs(client, config, params, FlagRepeat)
		},
	}
)

func ParseCmdArgs() {
	util.RunEWrapperForLeafCommand(RootCmd)
	util.RunAndHandleExit(RootCmd)
}

func init() {
	RootCmd.SetVersionTemplate(util.VersionTemplate())
	RootCmd.PersistentFlags().StringVarP(&FlagConfigFilePath, "config", "C",
		util.DefaultConfigPath, "Path to configuration file")
	RootCmd.Flags().BoolVar(&FlagJson, "json", false, "Output in JSON format")
	RootCmd.Flags().BoolVar(&FlagDryRun, "dry-run", false,
		"Print the job script and the qsub command line without submitting")
	RootCmd.Flags().Uint32Var(&FlagRepeat, "repeat", 1,
		"Submit the job multiple times, advancing the first sample index by num*id per job")
}
