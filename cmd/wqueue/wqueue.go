package main

import (
	"WdeFrontEnd/internal/util"
	"WdeFrontEnd/internal/wqueue"
)

func main() {
	util.InitLogger()
	wqueue.ParseCmdArgs()
}
