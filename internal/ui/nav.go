package ui

import "sync"

// NavMenu models the mobile navigation panel and its hamburger control; both
// share one active state.
type NavMenu struct {
	mutex  sync.Mutex
	active bool
}

func NewNavMenu() *NavMenu {
	return &NavMenu{}
}

// Toggle flips the panel open or closed.
func (n *NavMenu) Toggle() {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.active = !n.active
}

// LinkClicked collapses the panel; following any navigation link always
// closes the menu.
func (n *NavMenu) LinkClicked() {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.active = false
}

func (n *NavMenu) Active() bool {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return n.active
}
