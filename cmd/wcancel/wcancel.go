package main

import (
	"WdeFrontEnd/internal/util"
	"WdeFrontEnd/internal/wcancel"
)

func main() {
	util.InitLogger()
	wcancel.ParseCmdArgs()
}
