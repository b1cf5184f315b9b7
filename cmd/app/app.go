package main

import (
	"os"
	"strings"

	"github.com/DRSN-tech/retail-core/internal/app"
	config "github.com/DRSN-tech/retail-core/internal/cfg"
	"github.com/DRSN-tech/retail-core/pkg/logger"
)

func main() {
	os.Exit(run(logger.NewSlogLogger()))
}

// run возвращает код выхода процесса.
func run(log logger.Logger) int {
	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		return 1
	}
	logStartup(log, cfg)

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		return 1
	}

	if err := application.Run(); err != nil {
		return 1
	}
	return 0
}

func logStartup(log logger.Logger, cfg *config.Config) {
	log.Infof("storage driver: %s, state key: %s", cfg.Storage.Driver, cfg.Storage.Key)
	log.Infof("tax rate: %s", cfg.Sales.TaxRate.String())

	if cfg.Kafka == nil {
		log.Infof("sale events disabled: KAFKA_BROKERS is not set")
		return
	}
	log.Infof("sale events: topic %s, brokers %s", cfg.Kafka.Topic, strings.Join(cfg.Kafka.Brokers, ","))
}
