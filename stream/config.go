package stream

import (
	"fmt"
	"math"
	"time"
)

// Backend names accepted in Config.Backends.
const (
	BackendNull = "null"
	BackendGPIO = "gpio"
	BackendMQTT = "mqtt"
)

// Dither modes accepted in GPIOConfig.Dither.
const (
	DitherDiffusion = "diffusion"
	DitherPattern   = "pattern"
)

// Config is the YAML configuration of a cube.
type Config struct {
	Seed     int64      `yaml:"seed"`
	Backends []string   `yaml:"backends"`
	GPIO     GPIOConfig `yaml:"gpio"`
	Mqtt     MqttConfig `yaml:"mqtt"`
	Playlist []Step     `yaml:"playlist"`
}

// GPIOConfig describes the shift register wiring and the dithering applied
// on it.
type GPIOConfig struct {
	Chip      string  `yaml:"chip"`
	Serial    int     `yaml:"serial"`
	Latch     int     `yaml:"latch"`
	Shift     int     `yaml:"shift"`
	Passes    int     `yaml:"passes"`
	Gamma     float64 `yaml:"gamma"`
	Dither    string  `yaml:"dither"`
	NoiseSeed uint16  `yaml:"noiseSeed"`

	// ReverseSelect sends the top layer's select bit as bit 0.
	ReverseSelect bool `yaml:"reverseSelect"`
}

// MqttConfig describes where frames are published.
type MqttConfig struct {
	URL      string  `yaml:"url"`
	Username string  `yaml:"username"`
	Password string  `yaml:"password"`
	ClientID string  `yaml:"clientId"`
	Topic    string  `yaml:"topic"`
	QoS      byte    `yaml:"qos"`
	MaxFPS   float64 `yaml:"maxFps"`
}

// Step is one entry of the playlist. Zero values disable the corresponding
// wrapper.
type Step struct {
	Animation string        `yaml:"animation"`
	FPS       float64       `yaml:"fps"`
	Duration  time.Duration `yaml:"duration"`
	Repeat    int           `yaml:"repeat"`
}

// DefaultConfig returns a configuration that runs headless with the stock
// playlist.
func DefaultConfig() Config {
	return Config{
		Backends: []string{BackendNull},
		GPIO: GPIOConfig{
			Chip:      "gpiochip0",
			Serial:    25,
			Latch:     24,
			Shift:     23,
			Passes:    8,
			Gamma:     2.8,
			Dither:    DitherDiffusion,
			NoiseSeed: 1,
		},
		Mqtt: MqttConfig{
			ClientID: "ledcube",
			Topic:    "home/ledcube/stream",
			MaxFPS:   30,
		},
		Playlist: []Step{
			{Animation: "streak", FPS: 60, Duration: time.Minute, Repeat: 30},
			{Animation: "multitwinkle", FPS: 30, Duration: 30 * time.Minute},
			{Animation: "gradienttrail", FPS: 30, Duration: 30 * time.Minute},
			{Animation: "infinitystripe", FPS: 60, Duration: 30 * time.Minute},
		},
	}
}

// Uses reports whether backend name is enabled.
func (c Config) Uses(name string) bool {
	for _, b := range c.Backends {
		if b == name {
			return true
		}
	}
	return false
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	if len(c.Backends) == 0 {
		return fmt.Errorf("no backends configured")
	}
	for _, b := range c.Backends {
		switch b {
		case BackendNull, BackendGPIO, BackendMQTT:
		default:
			return fmt.Errorf("unknown backend %q", b)
		}
	}

	if c.Uses(BackendGPIO) {
		if err := c.GPIO.validate(); err != nil {
			return fmt.Errorf("gpio: %w", err)
		}
	}
	if c.Uses(BackendMQTT) {
		if err := c.Mqtt.validate(); err != nil {
			return fmt.Errorf("mqtt: %w", err)
		}
	}

	if len(c.Playlist) == 0 {
		return fmt.Errorf("playlist is empty")
	}
	for i, s := range c.Playlist {
		if err := s.validate(); err != nil {
			return fmt.Errorf("playlist step %d: %w", i, err)
		}
	}
	return nil
}

func (g GPIOConfig) validate() error {
	if g.Chip == "" {
		return fmt.Errorf("chip is required")
	}
	pins := map[int]string{}
	for name, pin := range map[string]int{"serial": g.Serial, "latch": g.Latch, "shift": g.Shift} {
		if pin < 0 {
			return fmt.Errorf("%s pin %d is negative", name, pin)
		}
		if other, ok := pins[pin]; ok {
			return fmt.Errorf("%s and %s share pin %d", other, name, pin)
		}
		pins[pin] = name
	}
	if g.Passes <= 0 {
		return fmt.Errorf("passes must be positive, got %d", g.Passes)
	}
	if g.Gamma <= 0 || math.IsNaN(g.Gamma) || math.IsInf(g.Gamma, 0) {
		return fmt.Errorf("gamma must be a positive number, got %v", g.Gamma)
	}
	switch g.Dither {
	case DitherDiffusion, DitherPattern:
	default:
		return fmt.Errorf("unknown dither mode %q", g.Dither)
	}
	return nil
}

func (m MqttConfig) validate() error {
	if m.URL == "" {
		return fmt.Errorf("url is required")
	}
	if m.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if m.QoS > 2 {
		return fmt.Errorf("qos must be 0, 1 or 2, got %d", m.QoS)
	}
	return nil
}

func (s Step) validate() error {
	if _, ok := catalog[s.Animation]; !ok {
		return fmt.Errorf("unknown animation %q", s.Animation)
	}
	if s.FPS < 0 {
		return fmt.Errorf("fps must not be negative")
	}
	if s.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	if s.Repeat < 0 {
		return fmt.Errorf("repeat must not be negative")
	}
	return nil
}
