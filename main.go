// ledcube drives an 8x8x8 LED cube from a playlist of procedural animations.
//
// Usage:
//
//	ledcube run              - Drive the configured backends forever
//	ledcube preview          - Show the cube in the terminal with an inspector
//	ledcube gamma            - Print the gamma correction table
//
// Global flags:
//
//	--config <path>      - YAML config file (default: built-in config)
//	--seed <value>       - RNG seed (0 = config seed, else time based)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/ledcube/gpio"
	"github.com/matt-g-everett/ledcube/stream"
)

var (
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	// logOutput receives every logger built by newApp.
	logOutput io.Writer = os.Stderr
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "ledcube",
	Short:        "Drive an 8x8x8 LED cube",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, else time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(gammaCmd)
}

type app struct {
	Config  stream.Config
	Client  mqtt.Client
	logger  *log.Logger
	closers []func() error
}

func newApp() (*app, error) {
	a := new(app)

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	a.logger = log.NewWithOptions(logOutput, log.Options{
		ReportTimestamp: true,
		Prefix:          "ledcube",
		Level:           level,
	})
	log.SetDefault(a.logger)
	stream.SetLogger(a.logger.WithPrefix("stream"))
	gpio.SetLogger(a.logger.WithPrefix("gpio"))
	mqtt.ERROR = a.logger.WithPrefix("mqtt").StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel})

	if err := a.readConfig(flagConfig); err != nil {
		return nil, err
	}
	if flagSeed != 0 {
		a.Config.Seed = flagSeed
	}
	if a.Config.Seed == 0 {
		a.Config.Seed = time.Now().UTC().UnixNano()
	}
	a.logger.Debug("config", "config", fmt.Sprintf("%+v", a.Config))

	return a, nil
}

// readConfig loads configPath over the defaults. An empty path keeps the
// defaults.
func (a *app) readConfig(configPath string) error {
	a.Config = stream.DefaultConfig()
	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&a.Config); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", configPath, err)
		}
	}

	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (a *app) animation() (stream.Animation, error) {
	return stream.BuildPlaylist(a.Config.Playlist, a.Config.Seed)
}

// backend opens every configured backend. Hardware that cannot be opened is
// an error; there is no degraded mode.
func (a *app) backend() (stream.Backend, error) {
	var out stream.Fanout
	for _, name := range a.Config.Backends {
		switch name {
		case stream.BackendNull:
			out = append(out, stream.NullBackend{})

		case stream.BackendGPIO:
			b, err := gpio.Open(a.Config.GPIO)
			if err != nil {
				return nil, fmt.Errorf("gpio backend: %w", err)
			}
			a.closers = append(a.closers, b.Close)
			out = append(out, b)

		case stream.BackendMQTT:
			if err := a.connect(); err != nil {
				return nil, fmt.Errorf("mqtt backend: %w", err)
			}
			out = append(out, stream.NewStreamer(a.Config.Mqtt, a.Client))
		}
	}

	if len(out) == 1 {
		return out[0], nil
	}
	return out, nil
}

func (a *app) connect() error {
	cfg := a.Config.Mqtt
	options := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(mqtt.Client) {
			a.logger.Info("connected", "broker", cfg.URL)
		})
	a.Client = mqtt.NewClient(options)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	a.closers = append(a.closers, func() error {
		a.Client.Disconnect(250)
		return nil
	})
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", "err", err)
		}
	}
}
