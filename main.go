package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/siga-greffe/greffe-api/api/handlers"
	"github.com/siga-greffe/greffe-api/api/scheduler"
	"github.com/siga-greffe/greffe-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	sched := scheduler.NewScheduler(a.Store, a.Config.RefreshSpec)
	sched.Start()
	defer sched.Stop()

	zap.S().Infow("greffe-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseUrl,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
