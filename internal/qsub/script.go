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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"WdeFrontEnd/internal/util"
)

// Job resources are fixed: one node, one processor, 4 GiB, 40 minutes.
// They never vary with the estimation parameters.
const (
	JobName       = "wde"
	NodeCount     = 1
	ProcsPerNode  = 1
	MemoryLimit   = "4gb"
	WalltimeLimit = "00:40:00"
	MailPolicy    = "ae"
	Locale        = "en_AU.UTF-8"

	scriptFileName = "wde.pbs"
)

// Params are the eight estimation parameters, forwarded verbatim. The
// analysis program is the only component that interprets them.
type Params struct {
	DistCode string
	Wavelet  string
	Num      string
	I0       string
	Id       string
	Ja       string
	Jb       string
	Jc       string
}

// VarList renders the qsub -v argument. Key order is part of the
// submission contract and must not change.
func (p *Params) VarList() string {
	pairs := []string{
		"DIST_CODE=" + p.DistCode,
		"WAVELET=" + p.Wavelet,
		"NUM=" + p.Num,
		"I0=" + p.I0,
		"ID=" + p.Id,
		"JA=" + p.Ja,
		"JB=" + p.Jb,
		"JC=" + p.Jc,
	}
	return strings.Join(pairs, ",")
}

// Positional returns the parameters in the order runit.py expects them.
func (p *Params) Positional() []string {
	return []string{p.DistCode, p.Wavelet, p.Num, p.I0, p.Id, p.Ja, p.Jb, p.Jc}
}

var scriptTmpl = template.Must(template.New("pbs").Parse(`#!/bin/bash
#PBS -N {{.JobName}}
#PBS -l nodes={{.NodeCount}}:ppn={{.ProcsPerNode}}
#PBS -l mem={{.Memory}}
#PBS -l walltime={{.Walltime}}
#PBS -m {{.MailPolicy}}
#PBS -j oe

module purge
module load {{.PythonModule}}

mkdir -p {{.ResultsDir}}/pngs
cd {{.ResultsDir}}

source {{.VenvPath}}/bin/activate

export PYTHONPATH={{.RunitDir}}
export LANG={{.Locale}}
export LC_ALL={{.Locale}}

python {{.RunitDir}}/runit.py run-with $DIST_CODE $WAVELET $NUM $I0 $ID $JA $JB $JC
`))

type scriptEnv struct {
	JobName      string
	NodeCount    int
	ProcsPerNode int
	Memory       string
	Walltime     string
	MailPolicy   string
	Locale       string

	PythonModule string
	VenvPath     string
	RunitDir     string
	ResultsDir   string
}

// RenderScript produces the job script. The parameters travel only
// through the qsub -v variable list, so the rendered bytes are the same
// for every submission under one config.
func RenderScript(config *util.Config) (string, error) {
	env := scriptEnv{
		JobName:      JobName,
		NodeCount:    NodeCount,
		ProcsPerNode: ProcsPerNode,
		Memory:       MemoryLimit,
		Walltime:     WalltimeLimit,
		MailPolicy:   MailPolicy,
		Locale:       Locale,

		PythonModule: config.PythonModule,
		VenvPath:     config.VenvPath,
		RunitDir:     config.RunitDir,
		ResultsDir:   config.ResultsDir,
	}

	var sb strings.Builder
	if err := scriptTmpl.Execute(&sb, env); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ScriptPath is where the rendered job script lives in the spool
// directory.
func ScriptPath(config *util.Config) string {
	return filepath.Join(config.SpoolDir, scriptFileName)
}

// WriteScript renders the job script into the spool directory and
// returns its path. Rewriting an existing script is harmless since the
// content is deterministic.
func WriteScript(config *util.Config) (string, error) {
	script, err := RenderScript(config)
	if err != nil {
		return "", err
	}

	if err := util.EnsureDirExists(config.SpoolDir); err != nil {
		return "", fmt.Errorf("failed to create spool dir %s: %w", config.SpoolDir, err)
	}

	path := ScriptPath(config)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		return "", err
	}
	return path, nil
}

// LocalResultsDir resolves the configured results directory on the
// submitting host, where $PBS_O_HOME is the caller's home directory.
func LocalResultsDir(config *util.Config) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := strings.ReplaceAll(config.ResultsDir, "${PBS_O_HOME}", home)
	dir = strings.ReplaceAll(dir, "$PBS_O_HOME", home)
	return dir, nil
}
