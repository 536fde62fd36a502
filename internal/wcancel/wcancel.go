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

package wcancel

import (
	"context"
	"fmt"
	"strings"

	"WdeFrontEnd/internal/qsub"
	"WdeFrontEnd/internal/util"
)

// ValidateJobId accepts the scheduler's job id forms: a sequence number
// or sequence.server.
func ValidateJobId(jobId string) error {
	seq, _, _ := strings.Cut(jobId, ".")
	if seq == "" {
		return util.NewWdeErr(util.ErrorCmdArg, fmt.Sprintf("Invalid job id '%s'.", jobId))
	}
	for _, c := range seq {
		if c < '0' || c > '9' {
			return util.NewWdeErr(util.ErrorCmdArg, fmt.Sprintf("Invalid job id '%s'.", jobId))
		}
	}
	return nil
}

func CancelJobs(client *qsub.Client, jobIds []string) error {
	for _, jobId := range jobIds {
		if err := ValidateJobId(jobId); err != nil {
			return err
		}
	}

	for _, jobId := range jobIds {
		if err := client.Cancel(context.Background(), jobId); err != nil {
			return err
		}
		fmt.Printf("Job #%s is terminating...\n", jobId)
	}
	return nil
}
