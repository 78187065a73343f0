package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/kayac/fcmsend/mock"
)

func main() {
	var (
		port      int
		projectID string
		apiKey    string
		verbose   bool
	)

	flag.IntVar(&port, "port", 8888, "fcm mock server port")
	flag.StringVar(&projectID, "project-id", "test", "fcm v1 mock project id")
	flag.StringVar(&apiKey, "api-key", "test", "legacy fcm mock api key")
	flag.BoolVar(&verbose, "verbose", false, "verbose flag")
	flag.Parse()

	mux := http.NewServeMux()
	mock.FCMv1MockServer(mux, projectID, verbose)
	mock.FCMMockServer(mux, apiKey, verbose)

	log.Println("start fcmmock server port:", port, "project_id:", projectID)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		log.Fatal(err)
	}
}
