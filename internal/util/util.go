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

package util

import (
	"io"
	"os"

	nested "github.com/antonfisher/nested-logrus-formatter"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	QsubPath  string `yaml:"QsubPath"`
	QstatPath string `yaml:"QstatPath"`
	QdelPath  string `yaml:"QdelPath"`

	PythonModule string `yaml:"PythonModule"`
	VenvPath     string `yaml:"VenvPath"`
	RunitDir     string `yaml:"RunitDir"`
	ResultsDir   string `yaml:"ResultsDir"`

	SpoolDir    string `yaml:"SpoolDir"`
	HistoryFile string `yaml:"HistoryFile"`

	LogLevel string `yaml:"LogLevel"`
	LogFile  string `yaml:"LogFile"`
}

var (
	DefaultConfigPath  string
	DefaultSpoolDir    string
	DefaultHistoryFile string
)

func init() {
	DefaultConfigPath = "/etc/wde/config.yaml"
	DefaultSpoolDir = "/tmp/wde/spool"
	DefaultHistoryFile = "/tmp/wde/history.json"
}

// DefaultConfig mirrors the cluster deployment the tools were written
// for, so a missing config file is still a working setup.
func DefaultConfig() *Config {
	return &Config{
		QsubPath:  "qsub",
		QstatPath: "qstat",
		QdelPath:  "qdel",

		PythonModule: "python/3.6.1",
		VenvPath:     "$PBS_O_HOME/.venvs/wde",
		RunitDir:     "$PBS_O_HOME/pywde",
		ResultsDir:   "$PBS_O_HOME/RESP",

		SpoolDir:    DefaultSpoolDir,
		HistoryFile: DefaultHistoryFile,

		LogLevel: "info",
	}
}

func ParseConfig(configFilePath string) *Config {
	config := DefaultConfig()

	confFile, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Config file %s does not exist, using defaults.", configFilePath)
			return config
		}
		log.Fatalf("Failed to read config file %s: %s", configFilePath, err.Error())
	}

	if err = yaml.Unmarshal(confFile, config); err != nil {
		log.Fatalf("Failed to parse config file %s: %s", configFilePath, err.Error())
	}
	return config
}

func InitLogger() {
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"component"},
	})
}

// ApplyLoggerConfig adjusts the logger according to the parsed config:
// log level and, when LogFile is set, a rotating file sink in addition
// to stderr.
func ApplyLoggerConfig(config *Config) {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.Warnf("Invalid log level '%s' in config, keeping '%s'.", config.LogLevel, log.GetLevel())
	} else {
		log.SetLevel(level)
	}

	if config.LogFile != "" {
		log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    10, // MiB
			MaxBackups: 3,
			MaxAge:     28, // days
		}))
	}
}
