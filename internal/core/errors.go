package core

import "errors"

var (
	// ErrServerFull is returned by Register when every slot is occupied. The
	// caller must close the connection without any other side effect.
	ErrServerFull = errors.New("server full")

	// ErrNameTaken is returned by Rename when another registered client
	// already holds the candidate name, compared case-insensitively.
	ErrNameTaken = errors.New("name already exists")
)
