package main

import (
	"WdeFrontEnd/internal/util"
	"WdeFrontEnd/internal/wbatch"
)

func main() {
	util.InitLogger()
	wbatch.ParseCmdArgs()
}
