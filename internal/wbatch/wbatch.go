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
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"WdeFrontEnd/internal/qsub"
	"WdeFrontEnd/internal/util"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/sjson"
	"github.com/xlab/treeprint"
)

// advanceParams returns the parameters of the index-th job of a
// multi-job submission: the first sample index moves by num*id per job
// so successive jobs cover disjoint sample windows. Index 0 returns the
// parameters untouched, keeping single submissions verbatim.
func advanceParams(base *qsub.Params, index int) (*qsub.Params, error) {
	if index == 0 {
		return base, nil
	}

	i0, err := strconv.ParseInt(base.I0, 10, 64)
	if err != nil {
		return nil, util.NewWdeErr(util.ErrorCmdArg,
			fmt.Sprintf("Invalid argument: --repeat requires an integer i0, got '%s'.", base.I0))
	}
	num, err := strconv.ParseInt(base.Num, 10, 64)
	if err != nil {
		return nil, util.NewWdeErr(util.ErrorCmdArg,
			fmt.Sprintf("Invalid argument: --repeat requires an integer num, got '%s'.", base.Num))
	}
	id, err := strconv.ParseInt(base.Id, 10, 64)
	if err != nil {
		return nil, util.NewWdeErr(util.ErrorCmdArg,
			fmt.Sprintf("Invalid argument: --repeat requires an integer id, got '%s'.", base.Id))
	}

	next := *base
	next.I0 = strconv.FormatInt(i0+int64(index)*num*id, 10)
	return &next, nil
}

// SubmitJobs renders the job script once and submits count independent
// jobs. Each job is one qsub invocation; a failed submission stops the
// batch and is not retried.
func SubmitJobs(client *qsub.Client, config *util.Config, params *qsub.Params, count uint32) error {
	scriptPath, err := qsub.WriteScript(config)
	if err != nil {
		return util.WrapWdeErr(util.ErrorGeneric, "Failed to write the job script", err)
	}

	storage, err := util.NewPersistentStorage(config.HistoryFile)
	if err != nil {
		log.Warnf("Submission history is unavailable: %s.", err.Error())
		storage = nil
	}

	for i := 0; i < int(count); i++ {
		p, err := advanceParams(params, i)
		if err != nil {
			return err
		}

		jobId, err := client.Submit(context.Background(), p, scriptPath)
		if err != nil {
			return err
		}

		record := util.SubmissionRecord{
			JobId:      jobId,
			DistCode:   p.DistCode,
			Wavelet:    p.Wavelet,
			Num:        p.Num,
			I0:         p.I0,
			Id:         p.Id,
			Ja:         p.Ja,
			Jb:         p.Jb,
			Jc:         p.Jc,
			SubmitTime: time.Now().Format(time.RFC3339),
		}
		if storage != nil {
			if err := storage.Append(record); err != nil {
				log.Warnf("Failed to record submission %s: %s.", jobId, err.Error())
			}
		}

		if FlagJson {
			fmt.Println(recordJson(record))
		} else {
			fmt.Printf("Job id allocated: %s.\n", jobId)
		}
	}
	return nil
}

// ShowPlan prints what a submission would do: the rendered job script
// and the qsub command line of every planned job. Nothing is submitted.
func ShowPlan(client *qsub.Client, config *util.Config, params *qsub.Params, count uint32) error {
	script, err := qsub.RenderScript(config)
	if err != nil {
		return util.WrapWdeErr(util.ErrorGeneric, "Failed to render the job script", err)
	}
	fmt.Print(script)
	fmt.Println()

	scriptPath := qsub.ScriptPath(config)
	if count == 1 {
		fmt.Println(strings.Join(client.SubmitArgv(params, scriptPath), " "))
		return nil
	}

	tree := treeprint.NewWithRoot(
		fmt.Sprintf("%s %s: %d jobs", params.DistCode, params.Wavelet, count))
	for i := 0; i < int(count); i++ {
		p, err := advanceParams(params, i)
		if err != nil {
			return err
		}
		tree.AddNode(p.VarList())
	}
	fmt.Print(tree.String())
	return nil
}

func recordJson(record util.SubmissionRecord) string {
	out := "{}"
	out, _ = sjson.Set(out, "job_id", record.JobId)
	out, _ = sjson.Set(out, "dist_code", record.DistCode)
	out, _ = sjson.Set(out, "wavelet", record.Wavelet)
	out, _ = sjson.Set(out, "num", record.Num)
	out, _ = sjson.Set(out, "i0", record.I0)
	out, _ = sjson.Set(out, "id", record.Id)
	out, _ = sjson.Set(out, "ja", record.Ja)
	out, _ = sjson.Set(out, "jb", record.Jb)
	out, _ = sjson.Set(out, "jc", record.Jc)
	out, _ = sjson.Set(out, "submit_time", record.SubmitTime)
	return out
}
