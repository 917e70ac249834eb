package store

import "errors"

// Store error taxonomy. Handlers translate these to HTTP statuses; nothing in
// this package touches the transport layer.
var (
	// ErrNotFound means the referenced id is absent.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateIdentity means the username or email is already taken.
	ErrDuplicateIdentity = errors.New("username or email already registered")

	// ErrInvalidCredential covers both unknown username and wrong password,
	// deliberately indistinguishable from outside.
	ErrInvalidCredential = errors.New("invalid credentials")

	// ErrAlreadyAssigned means an accept was attempted on a non-pending donation.
	ErrAlreadyAssigned = errors.New("donation already assigned")

	// ErrNotOwner means a collect or deliver was attempted by a volunteer who is
	// not the assigned one.
	ErrNotOwner = errors.New("not the assigned volunteer")

	// ErrInvalidStatus means the assigned volunteer attempted a transition out
	// of order (e.g. delivering before collecting).
	ErrInvalidStatus = errors.New("donation is not in the required status")
)
