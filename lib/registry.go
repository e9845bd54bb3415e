// Copyright (c) 2017 Darren Whitlen <darren@kiwiirc.com>
// released under the MIT license

package ircname

import (
	"errors"
	"time"
)

var (
	ErrNameReserved    = errors.New("Name is already reserved")
	ErrNameNotReserved = errors.New("Name is not reserved")
)

// Reservation records who holds a nickname.
type Reservation struct {
	Name     Nickname  `json:"name"`
	Owner    string    `json:"owner"`
	Reserved time.Time `json:"reserved"`
}

// Registry stores nickname reservations. Names that compare equal share one
// reservation.
type Registry interface {
	Setup() error
	Reserve(name Nickname, owner string) (*Reservation, error)
	Release(name Nickname) error
	Lookup(name Nickname) (*Reservation, error)
	All() ([]*Reservation, error)
	Close() error
}
