package event

import (
	"github.com/leandro-lugaresi/hub"
	"github.com/sirupsen/logrus"
)

// Log is the shared logger. Other packages import it as their package-level
// log var so that all output goes through the same sinks.
var Log = logrus.StandardLogger()

var sharedHub = hub.New()

type Data map[string]interface{}

type Message = hub.Message

type Subscription = hub.Subscription

// SharedHub returns the shared message hub.
func SharedHub() *hub.Hub {
	return sharedHub
}

// Publish sends a named message with attached data to all subscribers.
func Publish(event string, data Data) {
	SharedHub().Publish(Message{
		Name:   event,
		Fields: hub.Fields(data),
	})
}

// Subscribe returns a subscription for the given topics.
func Subscribe(topics ...string) Subscription {
	return SharedHub().NonBlockingSubscribe(1024, topics...)
}

// Unsubscribe closes the subscription.
func Unsubscribe(s Subscription) {
	SharedHub().Unsubscribe(s)
}
