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
	"context"
	"fmt"
	"os"
	"strings"

	"WdeFrontEnd/internal/parser"
	"WdeFrontEnd/internal/qsub"
	"WdeFrontEnd/internal/util"

	"github.com/olekukonko/tablewriter"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

type JobRow struct {
	JobId    string
	Name     string
	State    string
	Queue    string
	Walltime string
	Mem      string
}

// ParseQstatReply extracts the job rows from a `qstat -f -F json`
// document.
func ParseQstatReply(data []byte) ([]JobRow, error) {
	if !gjson.ValidBytes(data) {
		return nil, util.NewWdeErr(util.ErrorBackend, "Invalid JSON reply from qstat.")
	}

	rows := make([]JobRow, 0)
	gjson.GetBytes(data, "Jobs").ForEach(func(key, value gjson.Result) bool {
		rows = append(rows, JobRow{
			JobId:    key.String(),
			Name:     value.Get("Job_Name").String(),
			State:    value.Get("job_state").String(),
			Queue:    value.Get("queue").String(),
			Walltime: normalizeWalltime(value.Get("resources_used.walltime").String()),
			Mem:      normalizeMem(value.Get("Resource_List.mem").String()),
		})
		return true
	})
	return rows, nil
}

func normalizeWalltime(walltime string) string {
	if walltime == "" {
		return ""
	}
	seconds, err := util.ParseDurationStrToSeconds(walltime)
	if err != nil {
		return walltime
	}
	return util.SecondTimeFormat(seconds)
}

func normalizeMem(mem string) string {
	if mem == "" {
		return ""
	}
	bytes, err := util.ParseMemStringAsByte(mem)
	if err != nil {
		return mem
	}
	return util.MemBytesToString(bytes)
}

// ApplyFilter keeps the rows matching every term of the filter
// expression. Supported keys: state, queue, name.
func ApplyFilter(rows []JobRow, expression string) ([]JobRow, error) {
	expr, err := parser.Parse(expression)
	if err != nil {
		return nil, util.WrapWdeErr(util.ErrorCmdArg, "Invalid filter expression", err)
	}

	filtered := make([]JobRow, 0, len(rows))
	for _, row := range rows {
		keep := true
		for _, filter := range expr.Filters {
			switch filter.Key {
			case "state":
				keep = keep && strings.EqualFold(row.State, filter.Value)
			case "queue":
				keep = keep && row.Queue == filter.Value
			case "name":
				keep = keep && row.Name == filter.Value
			default:
				return nil, util.NewWdeErr(util.ErrorCmdArg,
					fmt.Sprintf("Invalid filter key '%s', supported keys: state, queue, name.", filter.Key))
			}
		}
		if keep {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

// BuildJson renders the reduced JSON document of the --json output.
func BuildJson(rows []JobRow) string {
	out := "[]"
	for i, row := range rows {
		prefix := fmt.Sprintf("%d.", i)
		out, _ = sjson.Set(out, prefix+"job_id", row.JobId)
		out, _ = sjson.Set(out, prefix+"name", row.Name)
		out, _ = sjson.Set(out, prefix+"state", row.State)
		out, _ = sjson.Set(out, prefix+"queue", row.Queue)
		out, _ = sjson.Set(out, prefix+"walltime", row.Walltime)
		out, _ = sjson.Set(out, prefix+"mem", row.Mem)
	}
	return out
}

func QueryQueue(client *qsub.Client, filterExpression string) error {
	reply, err := client.QueryQueue(context.Background())
	if err != nil {
		return err
	}

	rows, err := ParseQstatReply(reply)
	if err != nil {
		return err
	}
	if filterExpression != "" {
		rows, err = ApplyFilter(rows, filterExpression)
		if err != nil {
			return err
		}
	}

	if FlagJson {
		fmt.Println(BuildJson(rows))
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	util.SetBorderlessTable(table)
	if !FlagNoHeader {
		table.SetHeader([]string{"JobId", "Name", "State", "Queue", "Walltime", "Mem"})
	}
	tableData := make([][]string, 0, len(rows))
	for _, row := range rows {
		tableData = append(tableData,
			[]string{row.JobId, row.Name, row.State, row.Queue, row.Walltime, row.Mem})
	}
	util.TrimTable(&tableData)
	table.AppendBulk(tableData)
	table.Render()
	return nil
}

func ShowHistory(config *util.Config) error {
	storage, err := util.NewPersistentStorage(config.HistoryFile)
	if err != nil {
		return util.WrapWdeErr(util.ErrorGeneric, "Failed to open the submission history", err)
	}
	if err := storage.LoadData(); err != nil {
		return util.WrapWdeErr(util.ErrorGeneric, "Failed to load the submission history", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	util.SetBorderTable(table)
	if !FlagNoHeader {
		table.SetHeader([]string{"JobId", "Dist", "Wavelet", "Num", "I0", "ID", "JA", "JB", "JC", "SubmitTime"})
	}
	for _, record := range storage.Records() {
		table.Append([]string{
			record.JobId, record.DistCode, record.Wavelet, record.Num,
			record.I0, record.Id, record.Ja, record.Jb, record.Jc, record.SubmitTime,
		})
	}
	table.Render()
	return nil
}
