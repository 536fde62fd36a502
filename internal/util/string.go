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
	"fmt"
	"regexp"
	"strconv"
)

func ParseMemStringAsByte(mem string) (uint64, error) {
	re := regexp.MustCompile(`^([0-9]+(\.?[0-9]*))([MmGgKkB]?)[Bb]?$`)
	result := re.FindAllStringSubmatch(mem, -1)
	if result == nil || len(result) != 1 {
		return 0, fmt.Errorf("invalid memory format")
	}
	sz, err := strconv.ParseFloat(result[0][1], 64)
	if err != nil {
		return 0, err
	}
	switch result[0][3] {
	case "M", "m":
		return uint64(1024 * 1024 * sz), nil
	case "G", "g":
		return uint64(1024 * 1024 * 1024 * sz), nil
	case "K", "k":
		return uint64(1024 * sz), nil
	case "B":
		return uint64(sz), nil
	}
	// default unit is MB
	return uint64(1024 * 1024 * sz), nil
}

func MemBytesToString(bytes uint64) string {
	const gb = 1024 * 1024 * 1024
	const mb = 1024 * 1024
	if bytes >= gb && bytes%gb == 0 {
		return fmt.Sprintf("%dgb", bytes/gb)
	}
	if bytes >= mb && bytes%mb == 0 {
		return fmt.Sprintf("%dmb", bytes/mb)
	}
	return fmt.Sprintf("%db", bytes)
}

// ParseDurationStrToSeconds parses "[days-]hours:minutes:seconds".
func ParseDurationStrToSeconds(time string) (int64, error) {
	re := regexp.MustCompile(`^((\d+)-)?(\d+):(\d+):(\d+)$`)
	result := re.FindAllStringSubmatch(time, -1)
	if result == nil || len(result) != 1 {
		return 0, fmt.Errorf("invalid duration format")
	}
	var dd uint64 = 0
	if result[0][1] != "" {
		day, err := strconv.ParseUint(result[0][2], 10, 32)
		if err != nil {
			return 0, err
		}
		dd = day
	}
	hh, err := strconv.ParseUint(result[0][3], 10, 32)
	if err != nil {
		return 0, err
	}
	mm, err := strconv.ParseUint(result[0][4], 10, 32)
	if err != nil {
		return 0, err
	}
	ss, err := strconv.ParseUint(result[0][5], 10, 32)
	if err != nil {
		return 0, err
	}

	return int64(24*60*60*dd + 60*60*hh + 60*mm + ss), nil
}

func SecondTimeFormat(second int64) string {
	timeFormat := ""
	dd := second / 24 / 3600
	second %= 24 * 3600
	hh := second / 3600
	second %= 3600
	mm := second / 60
	ss := second % 60
	if dd > 0 {
		timeFormat = fmt.Sprintf("%d-%02d:%02d:%02d", dd, hh, mm, ss)
	} else {
		timeFormat = fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss)
	}
	return timeFormat
}
