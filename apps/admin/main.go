package main

import (
	"log"
	"os"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/records"
	logsvc "github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/jsonfile"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	conf := core.NewConfig()

	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = logsvc.NewStdLogger(std)
	}

	store, err := records.NewStore(
		conf,
		logger,
		records.DefaultSeeds(),
		jsonfile.NewCredentialsRepository(conf.CredentialsPath()),
		jsonfile.NewCourseRepository(conf.CoursesPath()),
		jsonfile.NewLedgerRepository(conf.StudentDataPath()),
	)
	if err != nil {
		logger.Fatal(err.Error())
	}

	cli := commandLine{store: store}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", errmsg(err))
		}
		os.Exit(1)
	}
}
