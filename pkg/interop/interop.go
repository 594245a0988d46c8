package interop

import (
	"fmt"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/nrlogrus"
	"github.com/newrelic/go-agent/v3/newrelic"
	nrclient "github.com/newrelic/newrelic-client-go/newrelic"
	"github.com/sanity-tools/contentful-to-sanity/pkg/contentful"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Interop struct {
	App        *newrelic.Application
	Logger     *log.Logger
	Contentful *contentful.Client
	NrClient   *nrclient.NewRelic
}

func NewInteroperability() (*Interop, error) {
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("Contentful To Sanity Migration"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
	)
	if err != nil {
		return nil, err
	}

	logger := log.New()

	logger.SetLevel(log.WarnLevel)
	logger.SetFormatter(nrlogrus.NewFormatter(app, &log.TextFormatter{}))

	viper.SetConfigName("config")
	viper.AddConfigPath("configs")
	viper.AddConfigPath(".")

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	setupLogging(logger)

	contentfulClient, err := contentful.New(viper.Sub("contentful"), logger)
	if err != nil {
		return nil, err
	}

	i := &Interop{
		App:        app,
		Logger:     logger,
		Contentful: contentfulClient,
	}

	if viper.GetBool("events.enabled") {
		apiKey := viper.GetString("apiKey")
		if apiKey == "" {
			apiKey = os.Getenv("NEW_RELIC_API_KEY")
			if apiKey == "" {
				return nil, fmt.Errorf("missing New Relic API key")
			}
		}

		client, err := nrclient.New(nrclient.ConfigPersonalAPIKey(apiKey))
		if err != nil {
			return nil, err
		}

		i.NrClient = client
	}

	return i, nil
}

func (i *Interop) Shutdown() {
	i.App.Shutdown(time.Second * 3)
}

func setupLogging(logger *log.Logger) {
	logLevel := viper.GetString("log.level")
	if logLevel != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			log.Infof("failed to parse log level, default will be used: %s", err)
		} else {
			logger.SetLevel(level)
		}
	}

	if viper.IsSet("log.fileName") {
		file, err := os.OpenFile(
			viper.GetString("log.fileName"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0666,
		)
		if err != nil {
			log.Infof("failed to log to file, using default stderr: %s", err)
		} else {
			logger.Out = file
		}
	}
}
