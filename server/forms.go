package server

import (
	"sync"

	"github.com/Zachkp/wildsme/contact"
)

// maxForms bounds how many visitor forms are kept between requests.
const maxForms = 1024

// formRegistry keeps each visitor's contact form across requests, so field
// errors survive until edited and a second submit sees the first in flight.
type formRegistry struct {
	mu        sync.Mutex
	forms     map[string]*contact.Form
	submitter contact.Submitter
}

func newFormRegistry(s contact.Submitter) *formRegistry {
	return &formRegistry{forms: make(map[string]*contact.Form), submitter: s}
}

// get returns the visitor's form, registering a new one when absent.
func (r *formRegistry) get(visitor string) *contact.Form {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.forms[visitor]; ok {
		return f
	}
	if len(r.forms) >= maxForms {
		r.evictIdle()
	}
	f := contact.NewForm(r.submitter)
	r.forms[visitor] = f
	return f
}

// peek returns the visitor's form, or an unregistered empty one.
func (r *formRegistry) peek(visitor string) *contact.Form {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.forms[visitor]; ok {
		return f
	}
	return contact.NewForm(r.submitter)
}

// forget drops the visitor's form once it is idle again.
func (r *formRegistry) forget(visitor string, f *contact.Form) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forms[visitor] == f && !f.Submitting() {
		delete(r.forms, visitor)
	}
}

// evictIdle drops one form that is not submitting. Caller holds mu.
func (r *formRegistry) evictIdle() {
	for visitor, f := range r.forms {
		if !f.Submitting() {
			delete(r.forms, visitor)
			return
		}
	}
}
