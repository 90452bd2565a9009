package domain

import "errors"

var (
	ErrStringerNotFound   = errors.New("stringer not found")
	ErrNameRequired       = errors.New("name required")
	ErrPlayerNameRequired = errors.New("player name required")
	ErrInvalidRate        = errors.New("invalid rate")
	ErrInvalidCapacity    = errors.New("invalid capacity")
	ErrInvalidID          = errors.New("invalid id")
)
