package newt

import (
	internal "github.com/jerbob92/wazero-newt/internal"
)

type Host = internal.Host

type ReadonlyBinder = internal.ReadonlyBinder

type Kind = internal.Kind

type NativeFunc = internal.NativeFunc

type Constant = internal.IConstant

type BindingError = internal.BindingError

// Logger and SetLogger give access to the logger engines use when their
// config has none.
var (
	Logger    = internal.Logger
	SetLogger = internal.SetLogger
)

// Sentinels for errors.Is on dispatch errors.
var (
	ErrMissingArgument     = internal.ErrMissingArgument
	ErrUnparseableArgument = internal.ErrUnparseableArgument
	ErrUnknownCommand      = internal.ErrUnknownCommand
	ErrNativeFailure       = internal.ErrNativeFailure
	ErrInvalidHandle       = internal.ErrInvalidHandle
	ErrNotInitialized      = internal.ErrNotInitialized
	ErrHostFailure         = internal.ErrHostFailure
)

// Names bound into host code while a callback runs.
const (
	VarEntry     = internal.VarEntry
	VarChar      = internal.VarChar
	VarCursor    = internal.VarCursor
	VarComponent = internal.VarComponent
	VarData      = internal.VarData
)

func NewConfig() internal.IEngineConfig {
	return internal.NewConfig()
}
