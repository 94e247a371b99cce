package stream

import (
	"sync"
	"testing"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

type doneToken struct {
	mqtt.Token
}

func (doneToken) Wait() bool   { return true }
func (doneToken) Error() error { return nil }

type publication struct {
	topic   string
	qos     byte
	payload []byte
}

type fakePublisher struct {
	mu   sync.Mutex
	pubs []publication
}

func (p *fakePublisher) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pubs = append(p.pubs, publication{topic, qos, payload.([]byte)})
	return doneToken{}
}

func TestStreamerPublishesFrames(t *testing.T) {
	pub := &fakePublisher{}
	s := NewStreamer(MqttConfig{Topic: "cube/frames", QoS: 1}, pub)

	f := NewFrame()
	f.Set(0, 0, 1, 200)
	s.DisplayFrame(f)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	if len(pub.pubs) != 1 {
		t.Fatalf("expected 1 publication, got %d", len(pub.pubs))
	}
	p := pub.pubs[0]
	if p.topic != "cube/frames" || p.qos != 1 {
		t.Errorf("published to %s qos %d", p.topic, p.qos)
	}
	if len(p.payload) != numVoxels+2 || p.payload[3] != 200 {
		t.Errorf("unexpected payload of %d bytes", len(p.payload))
	}
}

func TestStreamerDropsFramesOverMaxFPS(t *testing.T) {
	clock := newFakeClock()
	pub := &fakePublisher{}
	s := NewStreamer(MqttConfig{Topic: "t", MaxFPS: 10}, pub, WithClock(clock))
	f := NewFrame()

	s.DisplayFrame(f)
	s.DisplayFrame(f)
	clock.Advance(150 * time.Millisecond)
	s.DisplayFrame(f)

	sent, dropped := s.Stats()
	if sent != 2 || dropped != 1 {
		t.Errorf("sent=%d dropped=%d, expected 2 and 1", sent, dropped)
	}
}
