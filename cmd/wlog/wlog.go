package main

import (
	"WdeFrontEnd/internal/util"
	"WdeFrontEnd/internal/wlog"
)

func main() {
	util.InitLogger()
	wlog.ParseCmdArgs()
}
