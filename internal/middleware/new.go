package middleware

import (
	"appsearch-srv/pkg/log"
)

type Middleware struct {
	l           log.Logger
	internalKey string
}

// New - internalKey guards the administrative routes. Empty rejects every call.
func New(l log.Logger, internalKey string) Middleware {
	return Middleware{
		l:           l,
		internalKey: internalKey,
	}
}
