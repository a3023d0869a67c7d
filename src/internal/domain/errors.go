package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error kind raised by Account. Every
// reason below wraps it.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrNegativeInitialBalance = fmt.Errorf("%w: initial balance cannot be negative", ErrInvalidArgument)
	ErrNonPositiveAmount      = fmt.Errorf("%w: deposit amount must be positive", ErrInvalidArgument)
	ErrInvalidWithdrawal      = fmt.Errorf("%w: invalid withdrawal amount", ErrInvalidArgument)
	ErrInvalidTransfer        = fmt.Errorf("%w: invalid transfer amount", ErrInvalidArgument)
	ErrNilTargetAccount       = fmt.Errorf("%w: target account cannot be nil", ErrInvalidArgument)
	ErrSameAccount            = fmt.Errorf("%w: cannot transfer to the same account", ErrInvalidArgument)
)
