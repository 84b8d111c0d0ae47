package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
)

// fakeChannel captures publishings instead of talking to a broker
type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisherPublish(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch, exchange: ExchangeName}
	event := NewDirectoryLoadedEvent(30)

	if err := p.Publish(context.Background(), EventDirectoryLoaded, event); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if ch.exchange != ExchangeName || ch.key != EventDirectoryLoaded {
		t.Errorf("Expected %s/%s, got %s/%s", ExchangeName, EventDirectoryLoaded, ch.exchange, ch.key)
	}
	if ch.msg.MessageId != event.EventID {
		t.Errorf("Expected message id %s, got %s", event.EventID, ch.msg.MessageId)
	}
	if ch.msg.AppId != ServiceName || ch.msg.Type != EventDirectoryLoaded {
		t.Errorf("Unexpected message metadata: app=%s type=%s", ch.msg.AppId, ch.msg.Type)
	}
	if ch.msg.DeliveryMode != amqp.Persistent {
		t.Errorf("Expected persistent delivery, got %d", ch.msg.DeliveryMode)
	}

	var decoded DirectoryLoadedEvent
	if err := json.Unmarshal(ch.msg.Body, &decoded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if decoded.Data.RecordCount != 30 {
		t.Errorf("Expected record count 30, got %d", decoded.Data.RecordCount)
	}
}

func TestPublisherPublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &Publisher{channel: ch, exchange: ExchangeName}

	err := p.Publish(context.Background(), EventDirectoryLoadFailed, NewDirectoryLoadFailedEvent("load_failure", "timeout"))
	if err == nil {
		t.Fatal("expected publish error")
	}
	if !errors.Is(err, ch.err) {
		t.Errorf("Expected wrapped channel error, got %v", err)
	}
}

func TestNewPublishingWithoutEventID(t *testing.T) {
	msg, err := newPublishing("directory.custom", map[string]int{"n": 1})
	if err != nil {
		t.Fatalf("new publishing: %v", err)
	}
	if msg.MessageId == "" {
		t.Error("Expected a generated message id")
	}
	if string(msg.Body) != `{"n":1}` {
		t.Errorf("Unexpected body %s", msg.Body)
	}
}

func TestNewPublishingEncodeError(t *testing.T) {
	if _, err := newPublishing("directory.custom", make(chan int)); err == nil {
		t.Fatal("expected encode error")
	}
}

func TestPublisherCloseReleasesChannel(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch}

	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !ch.closed {
		t.Error("Expected channel to be closed")
	}
}
