// Command gppserver exposes GPP string decoding over HTTP.
package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/golang/glog"
	"github.com/julienschmidt/httprouter"
)

var port = flag.Int("port", 8000, "port to listen on")

func main() {
	flag.Parse()

	router := httprouter.New()
	router.GET("/decode", handleDecode)

	addr := fmt.Sprintf(":%d", *port)
	glog.Infof("gppserver listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		glog.Exitf("gppserver failed: %v", err)
	}
}
