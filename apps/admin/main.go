package main

import (
	"log"
	"os"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/fund"
	"github.com/Sazzad-Saju/circle-funds-flow/core/user"
	inmemdb "github.com/Sazzad-Saju/circle-funds-flow/storage/database/inmem"
)

func main() {
	logger := log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	conf.Simulate = core.SimulateConfig{} // no artificial latency on the command line

	// set up DB
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(err)
	}

	// start CLI
	cli := commandLine{
		conf:    conf,
		fundSvc: fund.NewServiceFromConfig(inmemdb.NewFundRepository(db), conf),
		usrSvc:  user.NewServiceFromConfig(inmemdb.NewUserRepository(db), inmemdb.NewSessionRepository(db), conf),
		out:     os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
