package layout

import (
	"net/url"
	"sync"
)

// ProjectIDParam is the route parameter naming the project a page is scoped to
const ProjectIDParam = "project_id"

// RouteParams are the path parameters of the route being navigated to
type RouteParams map[string]string

func (p RouteParams) ProjectID() string {
	return p[ProjectIDParam]
}

// NavigationSucceeded is dispatched once the page and its child view resolved
type NavigationSucceeded struct {
	Params RouteParams
	Query  url.Values
}

// NavigationFailed is dispatched when resolving the page or its child view failed
type NavigationFailed struct {
	Err error
}

type SuccessListener func(NavigationSucceeded)

// FailureListener reacts to a failed navigation. A non-nil return propagates
// the failure to whoever dispatched it.
type FailureListener func(NavigationFailed) error

// Navigator changes the current location
type Navigator interface {
	Navigate(path string, query url.Values)
}

var _ Navigator = &Router{}

// Router dispatches the navigation events of one page request and records
// any navigation requested while handling it.
type Router struct {
	mu        sync.Mutex
	nextID    int
	onSuccess map[int]SuccessListener
	onFailure map[int]FailureListener
	order     []int
	redirect  *url.URL
}

func NewRouter() *Router {
	return &Router{
		onSuccess: make(map[int]SuccessListener),
		onFailure: make(map[int]FailureListener),
	}
}

// OnSuccess subscribes fn to NavigationSucceeded events and returns a func
// that unsubscribes it.
func (r *Router) OnSuccess(fn SuccessListener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.register()
	r.onSuccess[id] = fn
	return func() { r.unsubscribe(id) }
}

// OnFailure subscribes fn to NavigationFailed events and returns a func
// that unsubscribes it.
func (r *Router) OnFailure(fn FailureListener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.register()
	r.onFailure[id] = fn
	return func() { r.unsubscribe(id) }
}

// Succeed notifies success listeners in subscription order
func (r *Router) Succeed(ev NavigationSucceeded) {
	for _, fn := range r.successListeners() {
		fn(ev)
	}
}

// Fail notifies failure listeners in subscription order and returns the
// first error a listener propagates. With no listener subscribed the
// failure is unhandled and ev.Err is returned as is.
func (r *Router) Fail(ev NavigationFailed) error {
	listeners := r.failureListeners()
	if len(listeners) == 0 {
		return ev.Err
	}
	var propagated error
	for _, fn := range listeners {
		if err := fn(ev); err != nil && propagated == nil {
			propagated = err
		}
	}
	return propagated
}

// Navigate records a redirect to path with the given query
func (r *Router) Navigate(path string, query url.Values) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redirect = &url.URL{Path: path, RawQuery: query.Encode()}
}

// Redirect returns the location requested through Navigate, if any
func (r *Router) Redirect() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.redirect == nil {
		return "", false
	}
	return r.redirect.String(), true
}

func (r *Router) register() int {
	r.nextID++
	r.order = append(r.order, r.nextID)
	return r.nextID
}

func (r *Router) unsubscribe(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.onSuccess, id)
	delete(r.onFailure, id)
}

func (r *Router) successListeners() []SuccessListener {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []SuccessListener
	for _, id := range r.order {
		if fn, ok := r.onSuccess[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func (r *Router) failureListeners() []FailureListener {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []FailureListener
	for _, id := range r.order {
		if fn, ok := r.onFailure[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
