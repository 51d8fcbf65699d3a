package quadrature

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObserverFunc receives the result of every successful Calculate call.
type ObserverFunc func(result float64)

// Subscription is the handle returned by Subscribe and accepted by
// Unsubscribe. Every registration gets its own handle, so the same callback
// can be subscribed several times and removed individually. The zero value
// matches no registration.
type Subscription struct {
	id uuid.UUID
}

type subscriber struct {
	id Subscription
	fn ObserverFunc
}

// Calculator applies an integration rule to a function and broadcasts each
// result to its observers.
//
// A Calculator is created without a rule and Calculate reports ErrRuleNotSet
// until SetRule installs one. All methods are safe for concurrent use.
type Calculator struct {
	mu        sync.Mutex
	rule      Rule
	observers []subscriber
}

// NewCalculator creates a Calculator with no rule installed and no observers.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// SetRule installs r as the rule used by subsequent Calculate calls,
// replacing any previously installed rule.
func (c *Calculator) SetRule(r Rule) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rule = r
}

// Subscribe registers fn to be notified with the result of every successful
// Calculate. Observers are notified in subscription order and subscribing the
// same callback again registers it again.
func (c *Calculator) Subscribe(fn ObserverFunc) Subscription {
	s := Subscription{id: uuid.New()}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, subscriber{id: s, fn: fn})
	return s
}

// Unsubscribe removes the registration identified by s. Handles that were
// never subscribed, or were already removed, are ignored.
func (c *Calculator) Unsubscribe(s Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, sub := range c.observers {
		if sub.id == s {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

// Calculate evaluates the definite integral of f over [lower, upper] using
// the installed rule, hands the result to every observer in subscription
// order and then returns it. Without a rule it returns ErrRuleNotSet.
//
// Notification iterates over a snapshot of the observer list, so observers
// subscribed or removed concurrently do not affect an in-flight call. An
// observer that panics is recovered and logged and the remaining observers
// are still notified.
func (c *Calculator) Calculate(f Function, lower, upper float64) (float64, error) {
	c.mu.Lock()
	rule := c.rule
	observers := make([]subscriber, len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	if rule == nil {
		return 0, ErrRuleNotSet
	}

	result := rule.Integrate(f, lower, upper)
	for _, sub := range observers {
		notify(sub, result)
	}

	return result, nil
}

func notify(sub subscriber, result float64) {
	defer func() {
		if r := recover(); r != nil {
			zap.S().Named("quadrature").Errorw("observer panicked", "subscription", sub.id.id, "panic", r)
		}
	}()
	sub.fn(result)
}
