/**
 * Copyright (c) 2023 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * WdeFrontEnd is licensed under Mulan PSL v2.
 * You can use this software according to the terms and conditions of
 * the Mulan PSL v2.
 * You may obtain a copy of Mulan PSL v2 at:
 *          http://license.coscl.org.cn/MulanPSL2
 * THIS SOFTWARE IS PROVIDED ON AN "AS IS" BASIS,
 * WITHOUT WARRANTIES OF ANY KIND,
 * EITHER EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO NON-INFRINGEMENT,
 * MERCHANTABILITY OR FIT FOR A PARTICULAR PURPOSE.
 * See the Mulan PSL v2 for more details.
 */

package util

import (
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// DetectSchedulerBinaries warns when the configured PBS client commands
// are not resolvable. Submission still proceeds; the scheduler command
// itself reports the authoritative error.
func DetectSchedulerBinaries(config *Config) {
	for _, bin := range []string{config.QsubPath, config.QstatPath, config.QdelPath} {
		if _, err := exec.LookPath(bin); err != nil {
			log.Warnf("Scheduler command %s is not in PATH.", bin)
		}
	}
}
