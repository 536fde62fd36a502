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

package wlog

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"WdeFrontEnd/internal/qsub"
	"WdeFrontEnd/internal/util"

	"github.com/nxadm/tail"
)

// LogPath locates the scheduler's combined output log of a job. The
// scheduler names it <job-name>.o<sequence-number> in the directory the
// job ran in.
func LogPath(config *util.Config, jobId string) (string, error) {
	dir, err := qsub.LocalResultsDir(config)
	if err != nil {
		return "", util.WrapWdeErr(util.ErrorGeneric, "Failed to resolve the results directory", err)
	}

	seq, _, _ := strings.Cut(jobId, ".")
	return filepath.Join(dir, fmt.Sprintf("%s.o%s", qsub.JobName, seq)), nil
}

func ShowLog(config *util.Config, jobId string, follow bool) error {
	path, err := LogPath(config, jobId)
	if err != nil {
		return err
	}

	if !follow {
		file, err := os.Open(path)
		if err != nil {
			return util.WrapWdeErr(util.ErrorBackend,
				fmt.Sprintf("No log for job #%s", jobId), err)
		}
		defer file.Close()
		_, err = io.Copy(os.Stdout, file)
		return err
	}

	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return util.WrapWdeErr(util.ErrorBackend,
			fmt.Sprintf("No log for job #%s", jobId), err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		_ = t.Stop()
	}()

	for line := range t.Lines {
		if line.Err != nil {
			return util.WrapWdeErr(util.ErrorBackend, "Failed to read the log", line.Err)
		}
		fmt.Println(line.Text)
	}
	return nil
}
