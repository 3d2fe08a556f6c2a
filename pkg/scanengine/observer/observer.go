// Package observer holds the ordered, append-only list of report
// callbacks fanned out to by a scan driver.
package observer

import (
	"fmt"
	"sync"

	"github.com/arvoscan/arvo/pkg/logging"
	"github.com/arvoscan/arvo/pkg/report"
)

// Func is a single observer callback. It must not retain the Report
// beyond the call.
type Func func(*report.Report)

// List is an ordered, append-only collection of observers. Registration
// is expected to happen before a scan starts; List itself only guards
// against concurrent registration/notification races defensively (the
// contract is still "register before Start").
type List struct {
	mu        sync.Mutex
	observers []Func
	logger    *logging.Logger
}

// NewList creates an empty observer list. logger may be nil.
func NewList(logger *logging.Logger) *List {
	return &List{logger: logger}
}

// Add appends an observer to the list.
func (l *List) Add(observer Func) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, observer)
}

// Notify invokes every registered observer, in registration order, with
// r. A panicking observer is recovered and logged rather than propagated
// or allowed to abort the fan-out to later observers.
func (l *List) Notify(r *report.Report) {
	l.mu.Lock()
	observers := l.observers
	l.mu.Unlock()

	for _, o := range observers {
		l.invoke(o, r)
	}
}

func (l *List) invoke(o Func, r *report.Report) {
	defer func() {
		if recovered := recover(); recovered != nil {
			l.logger.Error(fmt.Errorf("observer panic: %v", recovered))
		}
	}()
	o(r)
}
