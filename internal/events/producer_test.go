package events

import (
	"bytes"
	"context"
	"sync"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("producer", Ordered, func() {
	Context("write", func() {
		It("writes successfully", func() {
			w := newTestWriter()
			ep := NewEventProducer(w)

			// add the first message
			msg := []byte("msg1")
			err := ep.Write(context.TODO(), CalculationMessageKind, bytes.NewReader(msg))
			Expect(err).To(BeNil())

			msg = []byte("msg2")
			err = ep.Write(context.TODO(), CalculationMessageKind, bytes.NewReader(msg))
			Expect(err).To(BeNil())

			Eventually(w.Len, "5s", "10ms").Should(Equal(2))

			events := w.Events()
			Expect(events[0].Context.GetType()).To(Equal(CalculationMessageKind))
			Expect(events[0].Context.GetSource()).To(Equal(defaultSource))
			Expect(events[0].Data()).To(Equal([]byte("msg1")))
			Expect(events[1].Data()).To(Equal([]byte("msg2")))

			ep.Close()
		})

		It("honors the configured topic and source", func() {
			w := newTestWriter()
			ep := NewEventProducer(w, WithOutputTopic("custom.topic"), WithSource("custom.source"))

			err := ep.Write(context.TODO(), CalculationMessageKind, bytes.NewReader([]byte("msg")))
			Expect(err).To(BeNil())

			Eventually(w.Len, "5s", "10ms").Should(Equal(1))

			Expect(w.Topics()).To(Equal([]string{"custom.topic"}))
			Expect(w.Events()[0].Context.GetSource()).To(Equal("custom.source"))

			ep.Close()
		})
	})

	Context("close", func() {
		It("closes the underlying writer", func() {
			w := newTestWriter()
			ep := NewEventProducer(w)

			Expect(ep.Close()).To(BeNil())
			Expect(w.Closed()).To(BeTrue())
		})
	})
})

type testwriter struct {
	lock     sync.Mutex
	messages []cloudevents.Event
	topics   []string
	closed   bool
}

func newTestWriter() *testwriter {
	return &testwriter{messages: []cloudevents.Event{}}
}

func (t *testwriter) Write(ctx context.Context, topic string, e cloudevents.Event) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.messages = append(t.messages, e)
	t.topics = append(t.topics, topic)
	return nil
}

func (t *testwriter) Close(_ context.Context) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.closed = true
	return nil
}

func (t *testwriter) Len() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return len(t.messages)
}

func (t *testwriter) Events() []cloudevents.Event {
	t.lock.Lock()
	defer t.lock.Unlock()
	return append([]cloudevents.Event{}, t.messages...)
}

func (t *testwriter) Topics() []string {
	t.lock.Lock()
	defer t.lock.Unlock()
	return append([]string{}, t.topics...)
}

func (t *testwriter) Closed() bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.closed
}
