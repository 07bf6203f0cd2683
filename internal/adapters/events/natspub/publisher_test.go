package natspub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"

	"petcare-registry/internal/ports/events"
)

func startTestNATS(t *testing.T) string {
	t.Helper()
	opts := &natsserver.Options{Host: "127.0.0.1", Port: -1}
	srv, err := natsserver.NewServer(opts)
	if err != nil {
		t.Fatalf("starting embedded NATS: %v", err)
	}
	srv.Start()
	t.Cleanup(srv.Shutdown)
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("embedded NATS not ready")
	}
	return srv.ClientURL()
}

func TestPublisher_Publish(t *testing.T) {
	url := startTestNATS(t)

	pub, err := New(url)
	if err != nil {
		t.Fatalf("creating publisher: %v", err)
	}
	defer pub.Close()

	nc, err := nats.Connect(url)
	if err != nil {
		t.Fatalf("connecting subscriber: %v", err)
	}
	defer nc.Close()

	ch := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe(events.SubjectPetSaved, ch)
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}
	defer sub.Unsubscribe() //nolint:errcheck
	if err := nc.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	change := events.Change{Device: "dev-1", RecordID: "pet-1", Count: 1}
	if err := pub.Publish(context.Background(), events.SubjectPetSaved, change); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if err := pub.conn.Flush(); err != nil {
		t.Fatalf("flush publisher: %v", err)
	}

	select {
	case msg := <-ch:
		var got events.Change
		if err := json.Unmarshal(msg.Data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got != change {
			t.Errorf("got %+v, want %+v", got, change)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published message")
	}
}

func TestPublisher_PublishHonorsCanceledContext(t *testing.T) {
	url := startTestNATS(t)

	pub, err := New(url)
	if err != nil {
		t.Fatalf("creating publisher: %v", err)
	}
	defer pub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := pub.Publish(ctx, events.SubjectPetRemoved, events.Change{}); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestNew_BadURL(t *testing.T) {
	if _, err := New("nats://127.0.0.1:1", nats.MaxReconnects(0), nats.Timeout(200*time.Millisecond)); err == nil {
		t.Fatal("expected connection error")
	}
}
