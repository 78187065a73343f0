package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"

	fcmsend "github.com/kayac/fcmsend"
	"github.com/kayac/fcmsend/config"
	"github.com/sirupsen/logrus"
)

var version string

const usage = `Invalid command. Please use one of the following commands:
fcmsend -message=common-message
fcmsend -message=override-message`

func main() {
	var (
		message     string
		target      string
		legacyKey   string
		confPath    string
		logFormat   string
		logLevel    string
		showVersion bool
	)

	flag.StringVar(&message, "message", "", "message type to send (common-message or override-message).")
	flag.StringVar(&target, "token", "", "FCM registration token or /topics/... identifier to target.")
	flag.StringVar(&legacyKey, "legacy-key", "", "legacy API server key. if set, sends via the legacy HTTP API.")
	flag.StringVar(&confPath, "config", "", "specify config file.")
	flag.StringVar(&confPath, "c", "", "specify config file.")
	flag.StringVar(&logFormat, "log-format", "", "specifies the log format: ltsv or json.")
	flag.StringVar(&logLevel, "log-level", "info", "set the log level (debug, warn, info)")
	flag.BoolVar(&showVersion, "v", false, "show version number.")
	flag.BoolVar(&showVersion, "version", false, "show version number.")
	flag.Parse()

	if showVersion {
		if version == "" {
			version = fcmsend.Version
		}
		fmt.Printf("Compiler: %s %s\n", runtime.Compiler, runtime.Version())
		fmt.Printf("fcmsend version: %s\n", version)
		return
	}

	initLogrus(logFormat, logLevel)

	useV1 := legacyKey == ""

	var msg fcmsend.Message
	switch message {
	case "common-message":
		msg = fcmsend.BuildCommonMessage(target, useV1)
		fmt.Println("FCM request body for message using common notification object:")
	case "override-message":
		if !useV1 {
			fmt.Println("override-message is only defined for the v1 API. do not set -legacy-key.")
			return
		}
		msg = fcmsend.BuildOverrideMessage(target)
		fmt.Println("FCM request body for override message:")
	default:
		fmt.Println(usage)
		return
	}

	body, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
	fmt.Println(string(body))

	conf, err := config.Resolve(confPath, legacyKey)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}

	sender, err := fcmsend.NewSender(conf)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}

	res, err := sender.Send(msg)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}

	if res.Sent() {
		fmt.Println("Message sent to Firebase for delivery, response:")
	} else {
		fmt.Println("Unable to send message to Firebase:")
		fmt.Printf("status: %d\n", res.Status())
	}
	fmt.Println(res.Body())
}

func initLogrus(format string, logLevel string) {
	switch format {
	case "ltsv":
		logrus.SetFormatter(&fcmsend.LtsvFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	logrus.SetLevel(lvl)
}
