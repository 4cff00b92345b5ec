package fzpool

import "errors"

const Namespace = "fzpool"

var (
	ErrNilTaskFunc   = errors.New(Namespace + ": task function is nil")
	ErrPoolStopped   = errors.New(Namespace + ": pool is stopped")
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
)
