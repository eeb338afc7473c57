package gateway

import "errors"

var (
	ErrAuthFailed  = errors.New("gateway: authentication failed")
	ErrCircuitOpen = errors.New("gateway: circuit open")
)

func IsAuthFailed(err error) bool  { return errors.Is(err, ErrAuthFailed) }
func IsCircuitOpen(err error) bool { return errors.Is(err, ErrCircuitOpen) }
