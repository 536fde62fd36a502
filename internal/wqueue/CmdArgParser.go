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

package wqueue

import (
	"WdeFrontEnd/internal/qsub"
	"WdeFrontEnd/internal/util"

	"github.com/spf13/cobra"
)

var (
	FlagConfigFilePath string
	FlagJson           bool
	FlagNoHeader       bool
	FlagHistory        bool
	FlagFilter         string

	RootCmd = &cobra.Command{
		Use:     "wqueue [flags]",
		Short:   "Show estimation jobs in the batch queue",
		Version: util.Version(),
		Args:    cobra.ExactArgs(0),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config := util.ParseConfig(FlagConfigFilePath)
			util.ApplyLoggerConfig(config)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config := util.ParseConfig(FlagConfigFilePath)
			if FlagHistory {
				return ShowHistory(config)
			}
			client := qsub.NewClient(config)
			return QueryQueue(client, FlagFilter)
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
	RootCmd.Flags().BoolVarP(&FlagNoHeader, "noheader", "N", false,
		"Do not print header line in the output")
	RootCmd.Flags().BoolVar(&FlagHistory, "history", false,
		"Show locally recorded submissions instead of querying the scheduler")
	RootCmd.Flags().StringVar(&FlagFilter, "filter", "",
		"Filter expression, e.g. 'state=R queue=batch name=wde'")
}
