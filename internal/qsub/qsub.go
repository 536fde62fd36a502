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

package qsub

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"WdeFrontEnd/internal/util"
)

// RunCmdFunc executes one scheduler client command and returns its
// stdout. Tests replace it to avoid spawning processes.
type RunCmdFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Client talks to the batch scheduler through its command line
// interface. One Submit call is one qsub process; there are no retries
// and no idempotence guarantee.
type Client struct {
	config *util.Config
	Runner RunCmdFunc
}

func NewClient(config *util.Config) *Client {
	return &Client{
		config: config,
		Runner: runCmd,
	}
}

func runCmd(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return out, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return out, err
	}
	return out, nil
}

// SubmitArgv is the exact argument vector Submit hands to the qsub
// binary. Kept separate so a dry run can show it.
func (c *Client) SubmitArgv(params *Params, scriptPath string) []string {
	return []string{c.config.QsubPath, "-v", params.VarList(), scriptPath}
}

// Submit sends one job to the scheduler and returns the allocated job
// id from qsub's stdout.
func (c *Client) Submit(ctx context.Context, params *Params, scriptPath string) (string, error) {
	argv := c.SubmitArgv(params, scriptPath)
	out, err := c.Runner(ctx, argv[0], argv[1:]...)
	if err != nil {
		return "", util.WrapWdeErr(util.ErrorScheduler, "Failed to submit the job", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// QueryQueue fetches the scheduler queue state as a JSON document.
func (c *Client) QueryQueue(ctx context.Context) ([]byte, error) {
	out, err := c.Runner(ctx, c.config.QstatPath, "-f", "-F", "json")
	if err != nil {
		return nil, util.WrapWdeErr(util.ErrorScheduler, "Failed to query the queue", err)
	}
	return out, nil
}

// Cancel asks the scheduler to delete one job.
func (c *Client) Cancel(ctx context.Context, jobId string) error {
	if _, err := c.Runner(ctx, c.config.QdelPath, jobId); err != nil {
		return util.WrapWdeErr(util.ErrorScheduler,
			fmt.Sprintf("Failed to cancel job #%s", jobId), err)
	}
	return nil
}
