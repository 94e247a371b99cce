package stream

import (
	"github.com/eclipse/paho.mqtt.golang"
	"golang.org/x/time/rate"
)

// Publisher is the part of an MQTT client the Streamer needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer is a Backend that publishes frames as binary over MQTT.
//
// Frames arriving faster than MaxFPS are dropped. Publishing never blocks the
// render loop; failures are logged when the broker answers.
type Streamer struct {
	client  Publisher
	topic   string
	qos     byte
	clock   Clock
	limiter *rate.Limiter
	sent    uint64
	dropped uint64
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(cfg MqttConfig, client Publisher, opts ...Option) *Streamer {
	o := buildOptions(opts)

	limit := rate.Inf
	if cfg.MaxFPS > 0 {
		limit = rate.Limit(cfg.MaxFPS)
	}

	s := new(Streamer)
	s.client = client
	s.topic = cfg.Topic
	s.qos = cfg.QoS
	s.clock = o.clock
	s.limiter = rate.NewLimiter(limit, 1)

	return s
}

// DisplayFrame sends a frame as binary over MQTT.
func (s *Streamer) DisplayFrame(f *Frame) {
	if !s.limiter.AllowN(s.clock.Now(), 1) {
		s.dropped++
		return
	}

	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.topic, s.qos, false, b)
	s.sent++
	go func() {
		if token.Wait() && token.Error() != nil {
			log.Warn("publish failed", "topic", s.topic, "err", token.Error())
		}
	}()
}

// Stats returns how many frames were published and how many were dropped by
// the rate limit.
func (s *Streamer) Stats() (sent, dropped uint64) {
	return s.sent, s.dropped
}
