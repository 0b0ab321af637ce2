package core

import (
	"io"

	"github.com/google/uuid"
)

// UUIDValue yields a fresh version 4 UUID per advance. Without a reader it
// draws from the platform entropy source; with one (a seeded stream) runs
// are reproducible.
type UUIDValue struct {
	rand io.Reader

	val    string
	primed bool
}

func NewUUID(rand io.Reader) *UUIDValue {
	return &UUIDValue{rand: rand}
}

func (u *UUIDValue) Current() any {
	if !u.primed {
		_ = u.Next()
	}
	return u.val
}

func (u *UUIDValue) Next() error {
	u.primed = true
	var (
		id  uuid.UUID
		err error
	)
	if u.rand != nil {
		id, err = uuid.NewRandomFromReader(u.rand)
	} else {
		id, err = uuid.NewRandom()
	}
	if err != nil {
		return err
	}
	u.val = id.String()
	return nil
}

func (u *UUIDValue) Reset() {
	u.primed = false
	if r, ok := u.rand.(interface{ Reset() }); ok {
		r.Reset()
	}
}
